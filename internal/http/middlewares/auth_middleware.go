package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/geocoder89/alumnihub/internal/actorctx"
	"github.com/geocoder89/alumnihub/internal/auth"
	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/geocoder89/alumnihub/internal/domain/user"
	"github.com/geocoder89/alumnihub/internal/repo"
	"github.com/gin-gonic/gin"
)

// Keep these interfaces small so tests can fake them easily.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

type UserFinder interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}

type AuthMiddleware struct {
	jwt   TokenVerifier
	users UserFinder
}

func NewAuthMiddleware(jwt TokenVerifier, users UserFinder) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, users: users}
}

// RequireAuth resolves the bearer token to a stored user. The user is
// looked up on every request, so deleted accounts lose access at once.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer") {
			abort(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if raw == "" {
			abort(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		claims, err := m.jwt.VerifyToken(raw)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		ctx, cancel := config.WithParentTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := m.users.GetByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				abort(c, http.StatusNotFound, "User not found")
				return
			}

			slog.Default().ErrorContext(c.Request.Context(), "auth_user_lookup_failed",
				"err", err,
				"request_id", c.GetString(CtxRequestID),
			)
			abort(c, http.StatusInternalServerError, "Authentication error")
			return
		}

		// Stash the user on both contexts
		c.Set(CtxUser, u)
		c.Request = c.Request.WithContext(actorctx.WithUser(c.Request.Context(), u))

		c.Next()
	}
}

// UserFromContext returns the user stored by RequireAuth.
func UserFromContext(c *gin.Context) (user.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return user.User{}, false
	}
	u, ok := v.(user.User)
	return u, ok
}
