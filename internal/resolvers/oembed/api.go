//go:generate easyjson api.go
package oembed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	netUrl "net/url"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
	easyjson "github.com/mailru/easyjson"
	"golang.org/x/net/html"
)

const (
	BaseUrl = "https://www.tiktok.com/oembed"

	maxBodySize = 1 << 20
)

var videoIDInPath = regexp.MustCompile(`/video/(\d+)`)

func (r *resolver) fetchOEmbed(ctx context.Context, postUrl string) (ApiResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s?url=%s", r.endpoint, netUrl.QueryEscape(postUrl))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrInvalidInput, "build oembed request", err)
	}

	r.headers.Apply(req, upstream.AcceptJSON)

	resp, err := r.client.Do(req)
	if err != nil {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "call oembed", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "call oembed", fmt.Errorf("status %d", resp.StatusCode))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "read oembed", err)
	}

	if len(strings.TrimSpace(string(b))) == 0 {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrNoDataFound, "decode oembed", fmt.Errorf("empty body"))
	}

	var data ApiResponse

	if err = easyjson.Unmarshal(b, &data); err != nil {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrMalformedData, "decode oembed", err)
	}

	return data, nil
}

// easyjson:json
type ApiResponse struct {
	Version        string `json:"version,omitempty"`
	Type           string `json:"type,omitempty"`
	Title          string `json:"title,omitempty"`
	AuthorURL      string `json:"author_url,omitempty"`
	AuthorName     string `json:"author_name,omitempty"`
	AuthorUniqueID string `json:"author_unique_id,omitempty"`
	HTML           string `json:"html,omitempty"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"`
	ProviderURL    string `json:"provider_url,omitempty"`
	ProviderName   string `json:"provider_name,omitempty"`
	EmbedProductID string `json:"embed_product_id,omitempty"`
	EmbedType      string `json:"embed_type,omitempty"`
}

// VideoID - embed_product_id, иначе data-video-id из html вставки, иначе id из ссылки
func (a ApiResponse) VideoID(postUrl string) string {
	if a.EmbedProductID != "" {
		return a.EmbedProductID
	}

	if id := videoIDFromEmbed(a.HTML); id != "" {
		return id
	}

	if m := videoIDInPath.FindStringSubmatch(postUrl); m != nil {
		return m[1]
	}

	return ""
}

// videoIDFromEmbed ищет data-video-id в <blockquote class="tiktok-embed" ...>
func videoIDFromEmbed(fragment string) string {
	if fragment == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(fragment))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			for {
				key, val, more := z.TagAttr()
				if string(key) == "data-video-id" && len(val) > 0 {
					return string(val)
				}

				if !more {
					break
				}
			}
		}
	}
}
