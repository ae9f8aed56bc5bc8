package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"contala_backend/internal/auth"
	"contala_backend/internal/logger"
	"contala_backend/pkg/apperrors"
)

// AuthMiddleware validates the bearer token and stores the actor in the
// gin context under "actor" (and "userID" for convenience).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		actor := auth.Actor{ID: claims.UserID, Role: claims.Role}
		c.Set("userID", actor.ID)
		c.Set("actor", actor)

		ctx := logger.WithUserID(c.Request.Context(), actor.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
