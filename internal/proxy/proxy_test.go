package proxy

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/StounhandJ/tiktok_audio/internal/upstream"
)

func newTestStreamer(timeout time.Duration) *Streamer {
	return NewStreamer(&http.Client{}, upstream.NewHeaders("", ""), timeout)
}

func TestOpenRelaysExactBytes(t *testing.T) {
	payload := bytes.Repeat([]byte("ID3audio"), 64*1024)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, upstream.DefaultUserAgent, r.Header.Get("User-Agent"))
		require.Equal(t, upstream.DefaultReferer, r.Header.Get("Referer"))

		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	stream, err := newTestStreamer(0).Open(context.Background(), srv.URL+"/track.mp3", "song.mp3")
	require.NoError(t, err)

	defer stream.Body.Close()

	require.Equal(t, ContentType, stream.ContentType)
	require.Equal(t, `attachment; filename="song.mp3"; filename*=UTF-8''song.mp3`, stream.ContentDisposition)

	got, err := io.ReadAll(stream.Body)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestOpenRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("denied"))
	}))
	defer srv.Close()

	stream, err := newTestStreamer(0).Open(context.Background(), srv.URL, "")
	require.ErrorIs(t, err, ErrUpstreamStatus)
	require.Contains(t, err.Error(), "403")
	require.Nil(t, stream)
}

func TestOpenRejectsBadURL(t *testing.T) {
	s := newTestStreamer(0)

	for _, raw := range []string{"", "not a url", "ftp://example.com/a.mp3", "/relative.mp3"} {
		_, err := s.Open(context.Background(), raw, "")
		require.ErrorIs(t, err, ErrInvalidURL, raw)
	}
}

func TestOpenHeaderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	start := time.Now()
	_, err := newTestStreamer(100*time.Millisecond).Open(context.Background(), srv.URL, "")
	require.ErrorIs(t, err, ErrUpstreamTimeout)
	require.Less(t, time.Since(start), 3*time.Second)
}

func TestBodyIdleTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("head"))
		w.(http.Flusher).Flush()

		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	stream, err := newTestStreamer(100*time.Millisecond).Open(context.Background(), srv.URL, "")
	require.NoError(t, err)

	defer stream.Body.Close()

	start := time.Now()
	_, err = io.ReadAll(stream.Body)
	require.Error(t, err)
	require.Less(t, time.Since(start), 3*time.Second)
}

func TestSlowButSteadyBodyIsNotCut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 6; i++ {
			_, _ = w.Write([]byte("chunk"))
			w.(http.Flusher).Flush()
			time.Sleep(50 * time.Millisecond)
		}
	}))
	defer srv.Close()

	// вся загрузка дольше таймаута, но паузы короче
	stream, err := newTestStreamer(200*time.Millisecond).Open(context.Background(), srv.URL, "")
	require.NoError(t, err)

	defer stream.Body.Close()

	got, err := io.ReadAll(stream.Body)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("chunk", 6), string(got))
}

func TestCloseCancelsUpstream(t *testing.T) {
	released := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(released)

		_, _ = w.Write([]byte("partial"))
		w.(http.Flusher).Flush()

		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	stream, err := newTestStreamer(0).Open(context.Background(), srv.URL, "")
	require.NoError(t, err)

	buf := make([]byte, 7)
	_, err = io.ReadFull(stream.Body, buf)
	require.NoError(t, err)
	require.NoError(t, stream.Body.Close())
	require.NoError(t, stream.Body.Close())

	select {
	case <-released:
	case <-time.After(3 * time.Second):
		t.Fatal("upstream request was not released")
	}
}

func TestContentDisposition(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		fallback string
	}{
		{"plain", "track.mp3", "track.mp3"},
		{"diacritics", "Café Déjà vu.mp3", "Cafe Deja vu.mp3"},
		{"cyrillic", "Песня дня.mp3", "_____ ___.mp3"},
		{"cjk only", "音乐", DefaultFileName},
		{"quotes", `say "hi".mp3`, "say _hi_.mp3"},
		{"empty", "", DefaultFileName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header := ContentDisposition(tc.filename)

			require.True(t, strings.HasPrefix(header, `attachment; filename="`+tc.fallback+`"; `), header)

			_, ext, ok := strings.Cut(header, "filename*=UTF-8''")
			require.True(t, ok)
			require.NotContains(t, ext, " ")

			decoded, err := url.PathUnescape(ext)
			require.NoError(t, err)

			expected := tc.filename
			if expected == "" {
				expected = DefaultFileName
			}

			require.Equal(t, expected, decoded)
		})
	}
}

func TestEncodeExtValue(t *testing.T) {
	require.Equal(t, "a%20b%2Fc%25", encodeExtValue("a b/c%"))
	require.Equal(t, "%D0%AF", encodeExtValue("Я"))
	require.Equal(t, "keep.-_~!", encodeExtValue("keep.-_~!"))
}
