package oembed

import (
	"context"
	"net/http"
	"time"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const DefaultTimeout = 15 * time.Second

type resolver struct {
	client   *http.Client
	headers  upstream.Headers
	timeout  time.Duration
	endpoint string
}

// New - стратегия через публичный oEmbed TikTok
func New(client *http.Client, headers upstream.Headers, timeout time.Duration) resolvers.IResolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &resolver{
		client:   client,
		headers:  headers,
		timeout:  timeout,
		endpoint: BaseUrl,
	}
}

func (r *resolver) Resolve(ctx context.Context, url string) (*resolvers.VideoMetadata, error) {
	// проверка до любого сетевого запроса
	if !r.Valid(url) {
		return nil, resolvers.NewError(resolvers.ErrInvalidInput, "validate url", nil)
	}

	data, err := r.fetchOEmbed(ctx, url)
	if err != nil {
		return nil, err
	}

	meta := &resolvers.VideoMetadata{
		VideoID:           utils.StringPtr(data.VideoID(url)),
		AuthorUniqueID:    utils.StringPtr(data.AuthorUniqueID),
		AuthorDisplayName: utils.StringPtr(data.AuthorName),
		AuthorProfileURL:  utils.StringPtr(data.AuthorURL),
		CoverImageURL:     utils.StringPtr(data.ThumbnailURL),
		ProviderName:      utils.StringPtr(data.ProviderName),
		Source:            resolvers.SourceOEmbed,
	}
	meta.SetText(utils.StringPtr(data.Title))

	return meta, nil
}

func (resolver) Valid(url string) bool {
	return resolvers.IsTikTokURL(url)
}

func (resolver) Source() resolvers.Source {
	return resolvers.SourceOEmbed
}
