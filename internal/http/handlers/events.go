package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/geocoder89/alumnihub/internal/apperr"
	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/geocoder89/alumnihub/internal/domain/event"
	"github.com/gin-gonic/gin"
)

type EventsRepo interface {
	List(ctx context.Context) ([]event.Event, error)
	GetByID(ctx context.Context, id string) (event.Event, error)
	Create(ctx context.Context, e event.Event) (event.Event, error)
	Save(ctx context.Context, e event.Event) (event.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventsHandler struct {
	repo EventsRepo
}

func NewEventsHandler(repo EventsRepo) *EventsHandler {
	return &EventsHandler{repo: repo}
}

const eventNotFound = "Event not found"

func eventErr(err error) error {
	switch {
	case errors.Is(err, event.ErrMissingFields):
		return apperr.Validation("Please provide title, date, and location")
	case errors.Is(err, event.ErrInvalidDate):
		return apperr.Validation("Invalid date format")
	default:
		return apperr.Server(err)
	}
}

func (h *EventsHandler) List(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 5*time.Second)
	defer cancel()

	events, err := h.repo.List(cctx)
	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Events fetched successfully", events)
}

func (h *EventsHandler) Create(ctx *gin.Context) {
	var req event.CreateRequest

	if !Bind(ctx, &req) {
		return
	}

	creator, ok := actor(ctx)
	if !ok {
		return
	}

	e, err := event.New(req, creator.ID, time.Now().UTC())
	if err != nil {
		RespondErr(ctx, eventErr(err))
		return
	}

	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	created, err := h.repo.Create(cctx, e)
	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	RespondSuccess(ctx, http.StatusCreated, "Event created successfully", created)
}

func (h *EventsHandler) Update(ctx *gin.Context) {
	var patch event.Patch

	if !Bind(ctx, &patch) {
		return
	}

	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	current, err := h.repo.GetByID(cctx, ctx.Param("id"))
	if err != nil {
		RespondErr(ctx, storeErr(err, eventNotFound))
		return
	}

	next, err := patch.Apply(current, time.Now().UTC())
	if err != nil {
		RespondErr(ctx, eventErr(err))
		return
	}

	saved, err := h.repo.Save(cctx, next)
	if err != nil {
		RespondErr(ctx, storeErr(err, eventNotFound))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Event updated successfully", saved)
}

func (h *EventsHandler) Delete(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Delete(cctx, ctx.Param("id")); err != nil {
		RespondErr(ctx, storeErr(err, eventNotFound))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Event deleted successfully", nil)
}
