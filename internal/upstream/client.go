package upstream

import (
	"fmt"
	"net/http"
	"net/url"
)

// NewClient собирает общий HTTP клиент для запросов в TikTok и CDN.
// Таймауты задаются каждым компонентом через context, поэтому у клиента их нет.
func NewClient(proxyURL string) (*http.Client, error) {
	client := &http.Client{}

	if proxyURL == "" {
		return client, nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url %q: %w", proxyURL, err)
	}

	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("unexpected default transport %T", http.DefaultTransport)
	}

	transport = transport.Clone()
	transport.Proxy = http.ProxyURL(u) // прокси

	client.Transport = transport

	return client, nil
}
