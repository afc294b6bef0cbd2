//go:generate easyjson api.go
package tikwm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	netUrl "net/url"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
	easyjson "github.com/mailru/easyjson"
)

const (
	BaseUrl = "https://tikwm.com/api/"

	maxBodySize = 4 << 20
)

var (
	ErrRateLimit = errors.New("rate limit exceeded")
	ErrParse     = errors.New("parse error")
	ErrUnknown   = errors.New("unknown error")
)

func (r *resolver) fetchMetadata(ctx context.Context, postUrl string) (ApiResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s?url=%s", r.endpoint, netUrl.QueryEscape(postUrl))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrInvalidInput, "build tikwm request", err)
	}

	r.headers.Apply(req, upstream.AcceptJSON)

	resp, err := r.client.Do(req)
	if err != nil {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "call tikwm", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "call tikwm", fmt.Errorf("status %d", resp.StatusCode))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "read tikwm", err)
	}

	var data ApiResponse

	if err = easyjson.Unmarshal(b, &data); err != nil {
		return ApiResponse{}, resolvers.NewError(resolvers.ErrMalformedData, "decode tikwm", err)
	}

	if data.Code != 0 {
		switch {
		case strings.HasPrefix(data.Msg, "Free Api Limit"):
			return data, resolvers.NewError(resolvers.ErrUpstreamUnreachable, "call tikwm", ErrRateLimit)
		case strings.HasPrefix(data.Msg, "Url parsing is failed"):
			return data, resolvers.NewError(resolvers.ErrNoDataFound, "call tikwm", ErrParse)
		default:
			return data, resolvers.NewError(resolvers.ErrMalformedData, "call tikwm", fmt.Errorf("%w: %s", ErrUnknown, data.Msg))
		}
	}

	return data, nil
}

// easyjson:json
type ApiResponse struct {
	Code          int     `json:"code,omitempty"`
	Msg           string  `json:"msg"`
	ProcessedTime float64 `json:"processed_time,omitempty"`
	Data          ApiData `json:"data,omitempty"`
}

type ApiData struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Cover       string    `json:"cover,omitempty"`
	OriginCover string    `json:"origin_cover,omitempty"`
	Music       string    `json:"music,omitempty"`
	MusicInfo   MusicInfo `json:"music_info,omitempty"`
	Author      Author    `json:"author,omitempty"`
}

type MusicInfo struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Play   string `json:"play,omitempty"`
	Cover  string `json:"cover,omitempty"`
	Author string `json:"author,omitempty"`
}

type Author struct {
	ID       string `json:"id,omitempty"`
	UniqueID string `json:"unique_id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
