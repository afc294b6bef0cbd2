package shortlink

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
	"github.com/sirupsen/logrus"
)

const DefaultTimeout = 10 * time.Second

// хосты коротких ссылок "Поделиться"
var shortHosts = []string{"vm.tiktok.com", "vt.tiktok.com"}

type Normalizer struct {
	client  *http.Client
	headers upstream.Headers
	timeout time.Duration
}

func New(client *http.Client, headers upstream.Headers, timeout time.Duration) *Normalizer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Normalizer{
		client:  client,
		headers: headers,
		timeout: timeout,
	}
}

// IsShort проверяет, что ссылка короткая и её нужно раскрыть
func IsShort(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, h := range shortHosts {
		if host == h {
			return true
		}
	}

	// https://www.tiktok.com/t/ZTxxxx/
	return strings.HasSuffix(host, "tiktok.com") && strings.HasPrefix(u.Path, "/t/")
}

// Normalize раскрывает короткую ссылку через редиректы.
// Никогда не падает: при любой ошибке возвращается исходная строка.
func (n *Normalizer) Normalize(ctx context.Context, raw string) string {
	if !IsShort(raw) {
		return raw
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSpace(raw), nil)
	if err != nil {
		return raw
	}

	n.headers.Apply(req, upstream.AcceptHTML)

	resp, err := n.client.Do(req)
	if err != nil {
		utils.Log.WithError(err).WithField("url", raw).Warn("короткая ссылка не раскрыта")

		return raw
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.Request == nil || resp.Request.URL == nil {
		return raw
	}

	final := resp.Request.URL.String()

	utils.Log.WithFields(logrus.Fields{"from": raw, "to": final}).Debug("короткая ссылка раскрыта")

	return final
}
