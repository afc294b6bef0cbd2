package pagescrape

import (
	"bytes"
	"strings"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/valyala/fastjson"
	"golang.org/x/net/html"
)

// id script тегов с состоянием страницы, в порядке приоритета
var scriptIDs = []string{
	"__UNIVERSAL_DATA_FOR_REHYDRATION__",
	"SIGI_STATE",
}

var itemStructPath = []string{"__DEFAULT_SCOPE__", "webapp.video-detail", "itemInfo", "itemStruct"}

// findStateScript ищет текст первого script тега из scriptIDs
func findStateScript(page []byte) (string, bool) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return "", false
	}

	found := make(map[string]string, len(scriptIDs))

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			if id := attr(n, "id"); id != "" {
				if _, ok := found[id]; !ok {
					found[id] = scriptText(n)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	for _, id := range scriptIDs {
		if text, ok := found[id]; ok && strings.TrimSpace(text) != "" {
			return text, true
		}
	}

	return "", false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

func scriptText(n *html.Node) string {
	var b strings.Builder

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}

	return b.String()
}

// extractMetadata разбирает JSON состояния страницы и достаёт поля ролика
func extractMetadata(state string) (*resolvers.VideoMetadata, error) {
	var p fastjson.Parser

	root, err := p.Parse(state)
	if err != nil {
		return nil, resolvers.NewError(resolvers.ErrMalformedData, "parse page state", err)
	}

	item := resolvers.LookupObject(root, itemStructPath...)
	if item == nil {
		return nil, resolvers.NewError(resolvers.ErrMalformedData, "locate itemStruct", nil)
	}

	meta := &resolvers.VideoMetadata{
		VideoID:           resolvers.LookupString(item, "id"),
		AuthorUniqueID:    resolvers.LookupString(item, "author", "uniqueId"),
		AuthorDisplayName: resolvers.LookupString(item, "author", "nickname"),
		CoverImageURL: resolvers.FirstString(item,
			[]string{"music", "coverLarge"},
			[]string{"video", "cover"},
		),
		AudioTitle:   resolvers.LookupString(item, "music", "title"),
		AudioAuthor:  resolvers.LookupString(item, "music", "authorName"),
		AudioPlayURL: resolvers.LookupString(item, "music", "playUrl"),
		Source:       resolvers.SourcePageScrape,
	}
	meta.SetText(resolvers.LookupString(item, "desc"))
	meta.AuthorProfileURL = resolvers.ProfileURL(meta.AuthorUniqueID)

	return meta, nil
}
