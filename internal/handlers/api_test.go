package handlers

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/StounhandJ/tiktok_audio/internal/proxy"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const (
	baseURL  = "http://tiktok-audio.test"
	videoURL = "https://www.tiktok.com/@user/video/7234567890123456789"
)

type stubResolver struct {
	meta *resolvers.VideoMetadata
	err  error
	got  string
}

func (r *stubResolver) Resolve(_ context.Context, url string) (*resolvers.VideoMetadata, error) {
	r.got = url

	return r.meta, r.err
}

func (r *stubResolver) Valid(url string) bool { return resolvers.IsTikTokURL(url) }

func (r *stubResolver) Source() resolvers.Source { return resolvers.SourcePageScrape }

func newTestClient(t *testing.T, h handler) *http.Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: h.Router()}

	go func() { _ = srv.Serve(ln) }()

	client := &http.Client{Transport: &http.Transport{
		DialContext: func(context.Context, string, string) (net.Conn, error) {
			return ln.Dial()
		},
	}}

	t.Cleanup(func() {
		client.CloseIdleConnections()
		_ = ln.Close()
	})

	return client
}

func newTestHandler(r resolvers.IResolver, origins ...string) handler {
	streamer := proxy.NewStreamer(&http.Client{}, upstream.NewHeaders("", ""), 0)

	return NewHandler(r, streamer, "", origins)
}

func get(t *testing.T, client *http.Client, path string) (*http.Response, string) {
	t.Helper()

	resp, err := client.Get(baseURL + path)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestIndexAndHealthz(t *testing.T) {
	client := newTestClient(t, newTestHandler(&stubResolver{}))

	resp, body := get(t, client, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, contentTypeJSON, resp.Header.Get("Content-Type"))
	require.Contains(t, body, `"status":"ok"`)

	_, err := uuid.Parse(resp.Header.Get(headerRequestID))
	require.NoError(t, err)

	resp, _ = get(t, client, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestIDPassthrough(t *testing.T) {
	client := newTestClient(t, newTestHandler(&stubResolver{}))
	id := uuid.NewString()

	req, err := http.NewRequest(http.MethodGet, baseURL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(headerRequestID, id)

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, id, resp.Header.Get(headerRequestID))
}

func TestInfo(t *testing.T) {
	r := &stubResolver{meta: &resolvers.VideoMetadata{
		VideoID:      utils.StringPtr("7234567890123456789"),
		AudioPlayURL: utils.StringPtr("https://cdn.example/a.mp3"),
		Source:       resolvers.SourcePageScrape,
	}}
	h := newTestHandler(r)
	client := newTestClient(t, h)

	resp, body := get(t, client, "/api/info?url="+url.QueryEscape(videoURL))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, videoURL, r.got)
	require.Contains(t, body, `"video_id":"7234567890123456789"`)
	require.Contains(t, body, `"audio_play_url":"https://cdn.example/a.mp3"`)
	require.Contains(t, body, `"title":null`)
	require.Contains(t, body, `"source":"page-scrape"`)
	require.Equal(t, int64(1), h.counter.Load())
}

func TestInfoErrors(t *testing.T) {
	cases := []struct {
		kind   error
		status int
	}{
		{resolvers.ErrInvalidInput, http.StatusBadRequest},
		{resolvers.ErrUpstreamUnreachable, http.StatusBadRequest},
		{resolvers.ErrNoDataFound, http.StatusNotFound},
		{resolvers.ErrMalformedData, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.kind.Error(), func(t *testing.T) {
			r := &stubResolver{err: resolvers.NewError(tc.kind, "fetch page", nil)}
			client := newTestClient(t, newTestHandler(r))

			resp, body := get(t, client, "/api/info?url="+url.QueryEscape(videoURL))
			require.Equal(t, tc.status, resp.StatusCode)
			require.JSONEq(t, `{"detail":"fetch page: `+tc.kind.Error()+`"}`, body)
		})
	}
}

func TestInfoMissingURL(t *testing.T) {
	r := &stubResolver{}
	client := newTestClient(t, newTestHandler(r))

	resp, body := get(t, client, "/api/info")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, `"detail"`)
	require.Empty(t, r.got)
}

func TestDownloadMP3(t *testing.T) {
	payload := strings.Repeat("mp3-frame", 10000)

	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, payload)
	}))
	defer cdn.Close()

	client := newTestClient(t, newTestHandler(&stubResolver{}))

	q := url.Values{}
	q.Set("url", cdn.URL+"/a.mp3")
	q.Set("filename", "Песня.mp3")

	resp, body := get(t, client, "/api/download_mp3?"+q.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, proxy.ContentType, resp.Header.Get("Content-Type"))
	require.Equal(t, proxy.ContentDisposition("Песня.mp3"), resp.Header.Get("Content-Disposition"))
	require.Equal(t, payload, body)
}

func TestDownloadMP3DefaultFilename(t *testing.T) {
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "x")
	}))
	defer cdn.Close()

	client := newTestClient(t, newTestHandler(&stubResolver{}))

	resp, _ := get(t, client, "/api/download_mp3?url="+url.QueryEscape(cdn.URL))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Disposition"), `filename="`+proxy.DefaultFileName+`"`)
}

func TestDownloadMP3UpstreamFailure(t *testing.T) {
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer cdn.Close()

	client := newTestClient(t, newTestHandler(&stubResolver{}))

	resp, body := get(t, client, "/api/download_mp3?url="+url.QueryEscape(cdn.URL))
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.Equal(t, contentTypeJSON, resp.Header.Get("Content-Type"))
	require.Contains(t, body, "410")
	require.Empty(t, resp.Header.Get("Content-Disposition"))
}

func TestDownloadMP3BadInput(t *testing.T) {
	client := newTestClient(t, newTestHandler(&stubResolver{}))

	resp, _ := get(t, client, "/api/download_mp3")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, client, "/api/download_mp3?url="+url.QueryEscape("file:///etc/passwd"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouting(t *testing.T) {
	client := newTestClient(t, newTestHandler(&stubResolver{}))

	resp, body := get(t, client, "/nope")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"detail":"Not Found"}`, body)

	resp, err := client.Post(baseURL+"/api/info", "text/plain", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	client := newTestClient(t, newTestHandler(&stubResolver{}))

	req, err := http.NewRequest(http.MethodOptions, baseURL+"/api/info", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://site.example")

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	client := newTestClient(t, newTestHandler(&stubResolver{}, "https://allowed.example"))

	for origin, expected := range map[string]string{
		"https://allowed.example": "https://allowed.example",
		"https://other.example":   "",
	} {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/healthz", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)

		resp, err := client.Do(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, expected, resp.Header.Get("Access-Control-Allow-Origin"), origin)
	}
}
