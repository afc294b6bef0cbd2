package upstream

import "net/http"

const (
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 YaBrowser/25.10.0.0 Safari/537.36"
	DefaultReferer   = "https://www.tiktok.com/"

	AcceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7"
	AcceptJSON = "application/json"
	AcceptAny  = "*/*"
)

// Headers - неизменяемый набор заголовков "как у браузера".
// Создаётся один раз при старте и передаётся по значению во все исходящие запросы.
type Headers struct {
	userAgent string
	referer   string
}

func NewHeaders(userAgent, referer string) Headers {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	if referer == "" {
		referer = DefaultReferer
	}

	return Headers{
		userAgent: userAgent,
		referer:   referer,
	}
}

func (h Headers) UserAgent() string { return h.userAgent }

func (h Headers) Referer() string { return h.referer }

// Apply проставляет User-Agent/Referer и Accept в исходящий запрос
func (h Headers) Apply(req *http.Request, accept string) {
	h = NewHeaders(h.userAgent, h.referer)

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Referer", h.referer)

	if accept != "" {
		req.Header.Set("Accept", accept)
	}
}
