package tikwm

import (
	"context"
	"net/http"
	"time"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const DefaultTimeout = 20 * time.Second

type resolver struct {
	client   *http.Client
	headers  upstream.Headers
	timeout  time.Duration
	endpoint string
}

// New - стратегия через публичное API tikwm.com, отдаёт ссылку на звук напрямую
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
	if !r.Valid(url) {
		return nil, resolvers.NewError(resolvers.ErrInvalidInput, "validate url", nil)
	}

	metadata, err := r.fetchMetadata(ctx, url)
	if err != nil {
		return nil, err
	}

	data := metadata.Data

	meta := &resolvers.VideoMetadata{
		VideoID:           utils.StringPtr(data.ID),
		AuthorUniqueID:    utils.StringPtr(data.Author.UniqueID),
		AuthorDisplayName: utils.StringPtr(data.Author.Nickname),
		CoverImageURL:     utils.StringPtr(utils.StringNotEmptyCoalesce(data.OriginCover, data.Cover, data.MusicInfo.Cover)),
		AudioTitle:        utils.StringPtr(data.MusicInfo.Title),
		AudioAuthor:       utils.StringPtr(data.MusicInfo.Author),
		AudioPlayURL:      utils.StringPtr(utils.StringNotEmptyCoalesce(data.MusicInfo.Play, data.Music)),
		Source:            resolvers.SourceTikwm,
	}
	meta.SetText(utils.StringPtr(data.Title))
	meta.AuthorProfileURL = resolvers.ProfileURL(meta.AuthorUniqueID)

	return meta, nil
}

func (resolver) Valid(url string) bool {
	return resolvers.IsTikTokURL(url)
}

func (resolver) Source() resolvers.Source {
	return resolvers.SourceTikwm
}
