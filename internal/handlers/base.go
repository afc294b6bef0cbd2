package handlers

import (
	"sync/atomic"

	th "github.com/mymmrac/telego/telegohandler"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/tiktok_audio/internal/proxy"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

type handler struct {
	resolver  resolvers.IResolver
	streamer  *proxy.Streamer
	publicURL string
	origins   []string
	// количество успешно разрешённых ссылок
	counter *atomic.Int64
}

func NewHandler(resolver resolvers.IResolver, streamer *proxy.Streamer, publicURL string, allowOrigins []string) handler {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return handler{
		resolver:  resolver,
		streamer:  streamer,
		publicURL: publicURL,
		origins:   allowOrigins,
		counter:   &atomic.Int64{},
	}
}

// Router - HTTP часть сервиса
func (h handler) Router() fasthttp.RequestHandler {
	routes := map[string]fasthttp.RequestHandler{
		"/":                 h.Index,
		"/healthz":          h.Healthz,
		"/api/info":         h.Info,
		"/api/download_mp3": h.DownloadMP3,
	}

	return h.withRequestID(h.withCORS(func(ctx *fasthttp.RequestCtx) {
		route, ok := routes[string(ctx.Path())]
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, "Not Found")

			return
		}

		if !ctx.IsGet() && !ctx.IsHead() {
			ctx.Response.Header.Set(fasthttp.HeaderAllow, "GET, HEAD, OPTIONS")
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method Not Allowed")

			return
		}

		route(ctx)
	}))
}

// SetupRoutes - телеграм часть сервиса
func (h handler) SetupRoutes(bh *th.BotHandler) {
	// Базовые действия
	bh.Handle(h.StartCommand, th.CommandEqual("start"))

	bh.HandleInlineQuery(h.InlineAudio)
}

func (h handler) countResolved() {
	if n := h.counter.Add(1); n%10 == 0 {
		utils.Log.Infof("Количество разрешённых ссылок %d", n)
	}
}
