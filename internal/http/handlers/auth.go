package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/geocoder89/alumnihub/internal/apperr"
	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/geocoder89/alumnihub/internal/domain/user"
	"github.com/geocoder89/alumnihub/internal/repo"
	"github.com/geocoder89/alumnihub/internal/security"
	"github.com/gin-gonic/gin"
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type UserCreator interface {
	Create(ctx context.Context, u user.User) (user.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}

type LoginObserver interface {
	ObserveLogin(result string)
}

type AuthHandler struct {
	users    UserReader
	creator  UserCreator
	tokens   TokenIssuer
	hash     security.Hasher
	observer LoginObserver
}

func NewAuthHandler(users UserReader, creator UserCreator, tokens TokenIssuer, observer LoginObserver) *AuthHandler {
	return &AuthHandler{
		users:    users,
		creator:  creator,
		tokens:   tokens,
		hash:     security.HashPassword,
		observer: observer,
	}
}

type SignUpRequest struct {
	Name           string     `json:"name" form:"name" binding:"max=120"`
	Email          string     `json:"email" form:"email" binding:"max=254"`
	Password       string     `json:"password" form:"password" binding:"omitempty,min=6,max=72"`
	Role           string     `json:"role" form:"role"`
	GraduationYear *user.Year `json:"graduation_year" form:"graduation_year" binding:"omitempty,gte=0,lte=3000"`
	Company        string     `json:"company" form:"company" binding:"max=200"`
	Location       string     `json:"location" form:"location" binding:"max=200"`
}

const passwordTooLong = "Invalid request body: password must be at most 72 bytes"

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *AuthHandler) SignUp(ctx *gin.Context) {
	var req SignUpRequest

	if !Bind(ctx, &req) {
		return
	}

	in := user.SignupInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		GraduationYear: req.GraduationYear.IntPtr(),
		Company:        req.Company,
		Location:       req.Location,
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		RespondErr(ctx, apperr.Validation("Please provide name, email and password"))
		return
	}

	// validator counts runes; bcrypt refuses more than 72 bytes
	if len(in.Password) > security.MaxPasswordBytes {
		RespondErr(ctx, apperr.Validation(passwordTooLong))
		return
	}

	if user.ResolveRole(in.Role) == user.RoleAlumni && (in.GraduationYear == nil || *in.GraduationYear == 0) {
		RespondErr(ctx, apperr.Validation("Please provide graduation_year for alumni"))
		return
	}

	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 3*time.Second)

	defer cancel()

	_, err := h.users.GetByEmail(cctx, in.Email)

	if err == nil {
		RespondErr(ctx, apperr.Conflict("User already exists with this email"))
		return
	}

	if !errors.Is(err, repo.ErrNotFound) {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	u, err := security.HashIfChanged(nil, user.NewFromSignup(in, time.Now().UTC()), h.hash)

	if errors.Is(err, security.ErrPasswordTooLong) {
		RespondErr(ctx, apperr.Validation(passwordTooLong))
		return
	} else if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	// the unique index still decides when two signups race
	u, err = h.creator.Create(cctx, u)

	if err != nil {
		RespondErr(ctx, storeErr(err, "User not found"))
		return
	}

	message := "Registration successful. Your account is pending approval."
	if u.Role == user.RoleStudent {
		message = "Registration successful. Your student account is active."
	}

	RespondSuccess(ctx, http.StatusCreated, message, u.Summary())
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !Bind(ctx, &req) {
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		RespondErr(ctx, apperr.Validation("Please provide email and password"))
		return
	}

	// short timeout for DB lookup
	cctx, cancel := config.WithParentTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	foundUser, err := h.users.GetByEmail(cctx, req.Email)

	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			h.observe("invalid")
			RespondErr(ctx, apperr.Auth("Invalid email or password"))
			return
		}
		RespondErr(ctx, apperr.Server(err))
		return
	}

	if security.CheckPassword(foundUser.Password, req.Password) != nil {
		h.observe("invalid")
		RespondErr(ctx, apperr.Auth("Invalid email or password"))
		return
	}

	if !foundUser.CanLogin() {
		h.observe("pending")
		RespondErr(ctx, apperr.Forbidden("Your account is pending approval. Please wait for admin approval."))
		return
	}

	token, err := h.tokens.GenerateToken(foundUser.ID)

	if err != nil {
		RespondErr(ctx, apperr.Server(err))
		return
	}

	h.observe("ok")
	RespondSuccess(ctx, http.StatusOK, "Login successful", foundUser.Session(token))
}

func (h *AuthHandler) observe(result string) {
	if h.observer != nil {
		h.observer.ObserveLogin(result)
	}
}
