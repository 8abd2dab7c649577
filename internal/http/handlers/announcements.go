package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/geocoder89/alumnihub/internal/apperr"
	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/geocoder89/alumnihub/internal/domain/announcement"
	"github.com/gin-gonic/gin"
)

type AnnouncementsRepo interface {
	List(ctx context.Context) ([]announcement.Announcement, error)
	GetByID(ctx context.Context, id string) (announcement.Announcement, error)
	Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error)
	Save(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type AnnouncementsHandler struct {
	repo AnnouncementsRepo
}

func NewAnnouncementsHandler(repo AnnouncementsRepo) *AnnouncementsHandler {
	return &AnnouncementsHandler{repo: repo}
}

const announcementNotFound = "Announcement not found"

func (h *AnnouncementsHandler) List(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.List(cctx)
	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Announcements fetched successfully", items)
}

func (h *AnnouncementsHandler) Create(ctx *gin.Context) {
	var req announcement.CreateRequest

	if !Bind(ctx, &req) {
		return
	}

	creator, ok := actor(ctx)
	if !ok {
		return
	}

	a, err := announcement.New(req, creator.ID, time.Now().UTC())
	if errors.Is(err, announcement.ErrMissingFields) {
		RespondErr(ctx, apperr.Validation("Please provide title and content"))
		return
	} else if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	created, err := h.repo.Create(cctx, a)
	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	RespondSuccess(ctx, http.StatusCreated, "Announcement created successfully", created)
}

func (h *AnnouncementsHandler) Update(ctx *gin.Context) {
	var patch announcement.Patch

	if !Bind(ctx, &patch) {
		return
	}

	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	current, err := h.repo.GetByID(cctx, ctx.Param("id"))
	if err != nil {
		RespondErr(ctx, storeErr(err, announcementNotFound))
		return
	}

	saved, err := h.repo.Save(cctx, patch.Apply(current, time.Now().UTC()))
	if err != nil {
		RespondErr(ctx, storeErr(err, announcementNotFound))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Announcement updated successfully", saved)
}

func (h *AnnouncementsHandler) Delete(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Delete(cctx, ctx.Param("id")); err != nil {
		RespondErr(ctx, storeErr(err, announcementNotFound))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Announcement deleted successfully", nil)
}
