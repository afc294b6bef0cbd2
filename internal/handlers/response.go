//go:generate easyjson response.go
package handlers

import (
	"github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const contentTypeJSON = "application/json"

// easyjson:json
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// easyjson:json
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v easyjson.Marshaler) {
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)

	if _, err := easyjson.MarshalToWriter(v, ctx); err != nil {
		utils.Log.Error(err)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, detail string) {
	writeJSON(ctx, status, ErrorResponse{Detail: detail})
}
