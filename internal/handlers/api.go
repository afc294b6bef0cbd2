package handlers

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/tiktok_audio/internal/proxy"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
)

func (h handler) Index(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "TikTok audio: /api/info?url=... и /api/download_mp3?url=...&filename=...",
	})
}

func (h handler) Healthz(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
}

// Info отдаёт метаданные ролика
func (h handler) Info(ctx *fasthttp.RequestCtx) {
	log := requestLog(ctx)

	url := strings.TrimSpace(string(ctx.QueryArgs().Peek("url")))
	if url == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "missing url query")

		return
	}

	meta, err := h.resolver.Resolve(ctx, url)
	if err != nil {
		status := resolvers.StatusCode(err)
		log.WithFields(logrus.Fields{"url": url, "kind": resolvers.Kind(err)}).Warnf("Не удалось получить метаданные: %v", err)
		writeError(ctx, status, err.Error())

		return
	}

	h.countResolved()
	writeJSON(ctx, fasthttp.StatusOK, meta)
}

// DownloadMP3 проксирует звук. Статус upstream проверяется до первого байта ответа.
func (h handler) DownloadMP3(ctx *fasthttp.RequestCtx) {
	log := requestLog(ctx)

	src := strings.TrimSpace(string(ctx.QueryArgs().Peek("url")))
	if src == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "missing url query")

		return
	}

	filename := string(ctx.QueryArgs().Peek("filename"))

	stream, err := h.streamer.Open(ctx, src, filename)
	if err != nil {
		if errors.Is(err, proxy.ErrInvalidURL) {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())

			return
		}

		log.WithField("url", src).Errorf("Ошибка получения звука: %v", err)
		writeError(ctx, fasthttp.StatusBadGateway, err.Error())

		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(stream.ContentType)
	ctx.Response.Header.Set(fasthttp.HeaderContentDisposition, stream.ContentDisposition)

	// fasthttp сам закроет Body после отправки или обрыва клиента
	ctx.SetBodyStream(stream.Body, int(stream.ContentLength))
}
