package oembed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/stretchr/testify/require"
)

const postURL = "https://www.tiktok.com/@scout2015/video/6718335390845095173"

const oembedBody = `{
	"version": "1.0",
	"type": "video",
	"title": "Scramble up ur name & I’ll try to guess it😍❤️ #foryoupage",
	"author_url": "https://www.tiktok.com/@scout2015",
	"author_name": "Scout, Suki & Stella",
	"width": "100%",
	"height": "100%",
	"html": "<blockquote class=\"tiktok-embed\" cite=\"https://www.tiktok.com/@scout2015/video/6718335390845095173\" data-video-id=\"6718335390845095173\"><section></section></blockquote>",
	"thumbnail_width": 720,
	"thumbnail_height": 1280,
	"thumbnail_url": "https://p16-sign.tiktokcdn-us.com/cover.jpeg",
	"provider_url": "https://www.tiktok.com",
	"provider_name": "TikTok",
	"author_unique_id": "scout2015",
	"embed_product_id": "6718335390845095173",
	"embed_type": "video"
}`

func newTestResolver(t *testing.T, handler http.HandlerFunc) (*resolver, *int) {
	t.Helper()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	r, ok := New(srv.Client(), upstream.NewHeaders("", ""), time.Second).(*resolver)
	require.True(t, ok)

	r.endpoint = srv.URL + "/oembed"

	return r, &calls
}

func TestResolve(t *testing.T) {
	var gotURL, gotAccept string

	r, _ := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		gotURL = req.URL.Query().Get("url")
		gotAccept = req.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(oembedBody))
	})

	meta, err := r.Resolve(context.Background(), postURL)
	require.NoError(t, err)

	require.Equal(t, postURL, gotURL)
	require.Equal(t, upstream.AcceptJSON, gotAccept)

	require.Equal(t, "6718335390845095173", *meta.VideoID)
	require.Equal(t, "Scramble up ur name & I’ll try to guess it😍❤️ #foryoupage", *meta.Title)
	require.Equal(t, *meta.Title, *meta.Description)
	require.Equal(t, "Scout, Suki & Stella", *meta.AuthorDisplayName)
	require.Equal(t, "scout2015", *meta.AuthorUniqueID)
	require.Equal(t, "https://www.tiktok.com/@scout2015", *meta.AuthorProfileURL)
	require.Equal(t, "https://p16-sign.tiktokcdn-us.com/cover.jpeg", *meta.CoverImageURL)
	require.Equal(t, "TikTok", *meta.ProviderName)
	require.Nil(t, meta.AudioPlayURL)
	require.Equal(t, resolvers.SourceOEmbed, meta.Source)
}

func TestResolveRejectsForeignURLWithoutNetwork(t *testing.T) {
	r, calls := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.ErrorIs(t, err, resolvers.ErrInvalidInput)
	require.Zero(t, *calls)
}

func TestResolveNon200(t *testing.T) {
	r, _ := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := r.Resolve(context.Background(), postURL)
	require.ErrorIs(t, err, resolvers.ErrUpstreamUnreachable)
}

func TestResolveEmptyBody(t *testing.T) {
	r, _ := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := r.Resolve(context.Background(), postURL)
	require.ErrorIs(t, err, resolvers.ErrNoDataFound)
}

func TestResolveNotJSON(t *testing.T) {
	r, _ := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>captcha</html>"))
	})

	_, err := r.Resolve(context.Background(), postURL)
	require.ErrorIs(t, err, resolvers.ErrMalformedData)
}

func TestVideoIDFallbacks(t *testing.T) {
	fromHTML := ApiResponse{HTML: `<blockquote class="tiktok-embed" data-video-id="111"></blockquote>`}
	require.Equal(t, "111", fromHTML.VideoID(postURL))

	fromURL := ApiResponse{HTML: `<blockquote class="tiktok-embed"></blockquote>`}
	require.Equal(t, "6718335390845095173", fromURL.VideoID(postURL))

	require.Empty(t, ApiResponse{}.VideoID("https://vm.tiktok.com/ZMabc/"))
}
