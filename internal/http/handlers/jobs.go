package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/geocoder89/alumnihub/internal/apperr"
	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/geocoder89/alumnihub/internal/domain/job"
	"github.com/gin-gonic/gin"
)

type JobsRepo interface {
	List(ctx context.Context) ([]job.Job, error)
	GetByID(ctx context.Context, id string) (job.Job, error)
	Create(ctx context.Context, j job.Job) (job.Job, error)
	Save(ctx context.Context, j job.Job) (job.Job, error)
	Delete(ctx context.Context, id string) error
}

type JobsHandler struct {
	repo JobsRepo
}

func NewJobsHandler(repo JobsRepo) *JobsHandler {
	return &JobsHandler{repo: repo}
}

const jobNotFound = "Job not found"

func (h *JobsHandler) List(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 5*time.Second)
	defer cancel()

	jobs, err := h.repo.List(cctx)
	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Jobs fetched successfully", jobs)
}

func (h *JobsHandler) Create(ctx *gin.Context) {
	var req job.CreateRequest

	if !Bind(ctx, &req) {
		return
	}

	creator, ok := actor(ctx)
	if !ok {
		return
	}

	j, err := job.New(req, creator.ID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, job.ErrMissingFields) {
			RespondErr(ctx, apperr.Validation("Please provide title, company, and location"))
			return
		}
		RespondErr(ctx, apperr.Server(err))
		return
	}

	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	created, err := h.repo.Create(cctx, j)
	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	RespondSuccess(ctx, http.StatusCreated, "Job created successfully", created)
}

func (h *JobsHandler) Update(ctx *gin.Context) {
	var patch job.Patch

	if !Bind(ctx, &patch) {
		return
	}

	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	current, err := h.repo.GetByID(cctx, ctx.Param("id"))
	if err != nil {
		RespondErr(ctx, storeErr(err, jobNotFound))
		return
	}

	saved, err := h.repo.Save(cctx, patch.Apply(current, time.Now().UTC()))
	if err != nil {
		RespondErr(ctx, storeErr(err, jobNotFound))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Job updated successfully", saved)
}

func (h *JobsHandler) Delete(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Delete(cctx, ctx.Param("id")); err != nil {
		RespondErr(ctx, storeErr(err, jobNotFound))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Job deleted successfully", nil)
}
