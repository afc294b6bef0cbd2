package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const (
	DefaultTimeout  = 45 * time.Second
	ContentType     = "audio/mpeg"
	DefaultFileName = "tiktok_audio.mp3"
)

var (
	ErrInvalidURL      = errors.New("invalid asset url")
	ErrUpstreamStatus  = errors.New("upstream responded with non-200 status")
	ErrUpstreamTimeout = errors.New("upstream timed out")
)

// Stream - открытый поток звука и заголовки ответа для клиента
type Stream struct {
	Body               io.ReadCloser
	ContentType        string
	ContentDisposition string
	// -1, если размер неизвестен
	ContentLength int64
}

type Streamer struct {
	client  *http.Client
	headers upstream.Headers
	timeout time.Duration
}

func NewStreamer(client *http.Client, headers upstream.Headers, timeout time.Duration) *Streamer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Streamer{
		client:  client,
		headers: headers,
		timeout: timeout,
	}
}

// Open запрашивает файл по assetURL и возвращает поток для пересылки клиенту.
// Ответ не 200 - ошибка до того, как клиенту отправлен хоть один байт.
// Таймаут ограничивает ожидание заголовков и каждую паузу между чтениями тела,
// но не длительность всей загрузки. Body обязательно закрыть: это освобождает соединение.
func (s *Streamer) Open(ctx context.Context, assetURL, filename string) (*Stream, error) {
	u, err := url.Parse(assetURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, assetURL)
	}

	ctx, cancel := context.WithCancelCause(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		cancel(err)

		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	s.headers.Apply(req, upstream.AcceptAny)

	timer := time.AfterFunc(s.timeout, func() { cancel(ErrUpstreamTimeout) })

	resp, err := s.client.Do(req)
	if err != nil {
		timer.Stop()
		cancel(err)

		if errors.Is(context.Cause(ctx), ErrUpstreamTimeout) {
			return nil, fmt.Errorf("fetch asset: %w", ErrUpstreamTimeout)
		}

		return nil, fmt.Errorf("fetch asset: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		timer.Stop()
		utils.CloseWithLog(resp.Body)
		cancel(ErrUpstreamStatus)

		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	return &Stream{
		Body: &idleTimeoutBody{
			body:    resp.Body,
			timer:   timer,
			timeout: s.timeout,
			cancel:  cancel,
		},
		ContentType:        ContentType,
		ContentDisposition: ContentDisposition(filename),
		ContentLength:      resp.ContentLength,
	}, nil
}

// idleTimeoutBody перезапускает таймер на каждом чтении и отменяет запрос при закрытии
type idleTimeoutBody struct {
	body    io.ReadCloser
	timer   *time.Timer
	timeout time.Duration
	cancel  context.CancelCauseFunc

	closeOnce sync.Once
	closeErr  error
}

func (b *idleTimeoutBody) Read(p []byte) (int, error) {
	n, err := b.body.Read(p)
	b.timer.Reset(b.timeout)

	return n, err
}

func (b *idleTimeoutBody) Close() error {
	b.closeOnce.Do(func() {
		b.timer.Stop()
		b.closeErr = b.body.Close()
		b.cancel(context.Canceled)
	})

	return b.closeErr
}
