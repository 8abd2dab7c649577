package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/geocoder89/alumnihub/internal/apperr"
	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/geocoder89/alumnihub/internal/domain/user"
	"github.com/geocoder89/alumnihub/internal/security"
	"github.com/gin-gonic/gin"
)

// UsersRepo is everything the alumni routes need from the user store.
type UsersRepo interface {
	GetByID(ctx context.Context, id string) (user.User, error)
	Save(ctx context.Context, u user.User) (user.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter user.ListFilter) ([]user.User, error)
	Stats(ctx context.Context) (user.Stats, error)
}

type AlumniHandler struct {
	users UsersRepo
	hash  security.Hasher
}

func NewAlumniHandler(users UsersRepo) *AlumniHandler {
	return &AlumniHandler{users: users, hash: security.HashPassword}
}

const userNotFound = "User not found"

func (h *AlumniHandler) List(ctx *gin.Context) {
	h.list(ctx, user.StatusApproved, user.SortByName, "Alumni fetched successfully")
}

func (h *AlumniHandler) Pending(ctx *gin.Context) {
	h.list(ctx, user.StatusPending, user.SortByNewest, "Pending alumni fetched successfully")
}

func (h *AlumniHandler) list(ctx *gin.Context, status user.Status, sort user.SortOrder, message string) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 5*time.Second)
	defer cancel()

	alumni, err := h.users.List(cctx, user.ListFilter{
		Role:   user.RoleAlumni,
		Status: status,
		Sort:   sort,
	})

	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	RespondSuccess(ctx, http.StatusOK, message, alumni)
}

func (h *AlumniHandler) Stats(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.users.Stats(cctx)

	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Stats fetched successfully", stats)
}

func (h *AlumniHandler) Approve(ctx *gin.Context) {
	updated, ok := h.transition(ctx, user.StatusApproved)
	if !ok {
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Alumni approved successfully", updated)
}

func (h *AlumniHandler) Reject(ctx *gin.Context) {
	if _, ok := h.transition(ctx, user.StatusRejected); !ok {
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Alumni rejected successfully", nil)
}

func (h *AlumniHandler) transition(ctx *gin.Context, to user.Status) (user.User, bool) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	current, err := h.users.GetByID(cctx, ctx.Param("id"))
	if err != nil {
		RespondErr(ctx, storeErr(err, userNotFound))
		return user.User{}, false
	}

	next, err := current.Transition(to, time.Now().UTC())
	if err != nil {
		RespondErr(ctx, alumniErr(err))
		return user.User{}, false
	}

	saved, err := h.save(cctx, current, next)
	if err != nil {
		RespondErr(ctx, storeErr(err, userNotFound))
		return user.User{}, false
	}

	return saved, true
}

func (h *AlumniHandler) Update(ctx *gin.Context) {
	var patch user.Patch

	if !Bind(ctx, &patch) {
		return
	}

	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	current, err := h.users.GetByID(cctx, ctx.Param("id"))
	if err != nil {
		RespondErr(ctx, storeErr(err, userNotFound))
		return
	}

	saved, err := h.save(cctx, current, patch.Apply(current, time.Now().UTC()))
	if err != nil {
		RespondErr(ctx, storeErr(err, userNotFound))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Alumni updated successfully", saved)
}

func (h *AlumniHandler) Delete(ctx *gin.Context) {
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	current, err := h.users.GetByID(cctx, ctx.Param("id"))
	if err != nil {
		RespondErr(ctx, storeErr(err, userNotFound))
		return
	}

	if current.Role != user.RoleAlumni {
		RespondErr(ctx, alumniErr(user.ErrNotAlumni))
		return
	}

	if err := h.users.Delete(cctx, current.ID); err != nil {
		RespondErr(ctx, storeErr(err, userNotFound))
		return
	}

	RespondSuccess(ctx, http.StatusOK, "Alumni deleted successfully", nil)
}

// save persists next, hashing the password only if it differs from prev.
func (h *AlumniHandler) save(ctx context.Context, prev, next user.User) (user.User, error) {
	next, err := security.HashIfChanged(&prev, next, h.hash)
	if err != nil {
		return user.User{}, err
	}

	return h.users.Save(ctx, next)
}

func alumniErr(err error) error {
	if errors.Is(err, user.ErrNotAlumni) {
		return apperr.Validation("User is not an alumni")
	}
	return apperr.Server(err)
}
