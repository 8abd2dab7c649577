package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

// create a new instance of the health handler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Alumni System API is running",
	})
}

// Readyz reports whether the store answers within a second.
func (h *HealthHandler) Readyz(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), time.Second)
	defer cancel()

	if err := h.store.Ping(cctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
