package pagescrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers/shortlink"
	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const (
	DefaultTimeout = 20 * time.Second

	// страницы TikTok весят ~1-2 МБ, больше не читаем
	maxPageSize = 16 << 20
)

type resolver struct {
	client     *http.Client
	headers    upstream.Headers
	normalizer *shortlink.Normalizer
	timeout    time.Duration
}

// New - стратегия "скрейп страницы": HTML ролика -> JSON в script теге -> itemStruct
func New(client *http.Client, headers upstream.Headers, normalizer *shortlink.Normalizer, timeout time.Duration) resolvers.IResolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &resolver{
		client:     client,
		headers:    headers,
		normalizer: normalizer,
		timeout:    timeout,
	}
}

func (r *resolver) Resolve(ctx context.Context, url string) (*resolvers.VideoMetadata, error) {
	if r.normalizer != nil {
		url = r.normalizer.Normalize(ctx, url)
	}

	page, err := r.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	state, ok := findStateScript(page)
	if !ok {
		return nil, resolvers.NewError(resolvers.ErrNoDataFound, "locate page state", fmt.Errorf("no state script in %d bytes", len(page)))
	}

	return extractMetadata(state)
}

func (r *resolver) fetchPage(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, resolvers.NewError(resolvers.ErrInvalidInput, "build page request", err)
	}

	r.headers.Apply(req, upstream.AcceptHTML)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "fetch page", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "fetch page", fmt.Errorf("status %d", resp.StatusCode))
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "read page", err)
	}

	return page, nil
}

func (resolver) Valid(url string) bool {
	return resolvers.IsTikTokURL(url)
}

func (resolver) Source() resolvers.Source {
	return resolvers.SourcePageScrape
}
