package handlers

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const (
	headerRequestID = "X-Request-ID"
	userValueLog    = "log"
)

// withRequestID присваивает запросу id и пишет его в заголовок ответа и в лог
func (h handler) withRequestID(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := string(ctx.Request.Header.Peek(headerRequestID))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		log := utils.Log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     string(ctx.Method()),
			"path":       string(ctx.Path()),
		})

		ctx.SetUserValue(userValueLog, log)
		ctx.Response.Header.Set(headerRequestID, id)

		start := time.Now()

		next(ctx)

		log.WithFields(logrus.Fields{
			"status":   ctx.Response.StatusCode(),
			"duration": time.Since(start),
		}).Info("Запрос обработан")
	}
}

func (h handler) withCORS(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		origin := string(ctx.Request.Header.Peek(fasthttp.HeaderOrigin))

		switch {
		case slices.Contains(h.origins, "*"):
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowOrigin, "*")
		case origin != "" && slices.Contains(h.origins, origin):
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowOrigin, origin)
			ctx.Response.Header.Add(fasthttp.HeaderVary, fasthttp.HeaderOrigin)
		}

		ctx.Response.Header.Set(fasthttp.HeaderAccessControlExposeHeaders, "Content-Disposition, "+headerRequestID)

		if ctx.IsOptions() {
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowMethods, "GET, HEAD, OPTIONS")
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowHeaders, "*")
			ctx.SetStatusCode(fasthttp.StatusNoContent)

			return
		}

		next(ctx)
	}
}

func requestLog(ctx *fasthttp.RequestCtx) *logrus.Entry {
	if log, ok := ctx.UserValue(userValueLog).(*logrus.Entry); ok {
		return log
	}

	return logrus.NewEntry(utils.Log)
}
