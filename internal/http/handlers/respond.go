package handlers

import (
	"errors"
	"log/slog"

	"github.com/geocoder89/alumnihub/internal/apperr"
	"github.com/geocoder89/alumnihub/internal/http/middlewares"
	"github.com/geocoder89/alumnihub/internal/repo"
	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every API response. Data is left out when nil.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	if id := ctx.GetString(middlewares.CtxRequestID); id != "" {
		return id
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondSuccess(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func RespondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, Envelope{Success: false, Message: message})
}

// RespondErr renders err through the apperr taxonomy. Anything that is not
// an *apperr.Error is logged and shown as a generic server error.
func RespondErr(ctx *gin.Context, err error) {
	ae := apperr.From(err)

	if ae.Kind == apperr.KindServer {
		slog.Default().ErrorContext(ctx.Request.Context(), "request_failed",
			"err", err,
			"route", ctx.FullPath(),
			"request_id", requestIDFrom(ctx),
		)
	}

	RespondError(ctx, ae.Kind.Status(), ae.Message)
}

// storeErr translates repository sentinels for a record kind such as "Job".
func storeErr(err error, notFound string) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return apperr.NotFound(notFound)
	case errors.Is(err, repo.ErrDuplicate):
		return apperr.Conflict("User already exists with this email")
	default:
		return apperr.Server(err)
	}
}
