package handlers

import (
	"github.com/geocoder89/alumnihub/internal/actorctx"
	"github.com/geocoder89/alumnihub/internal/apperr"
	"github.com/geocoder89/alumnihub/internal/domain/user"
	"github.com/gin-gonic/gin"
)

// actor returns the session user placed on the request by RequireAuth.
func actor(ctx *gin.Context) (user.User, bool) {
	u, ok := actorctx.UserFrom(ctx.Request.Context())
	if !ok {
		RespondErr(ctx, apperr.Auth("Not authorized, no token"))
		return user.User{}, false
	}
	return u, true
}
