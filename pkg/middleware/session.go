package middleware

import (
	"errors"
	"net/http"

	"whosmudassir/shop-api/internal/session"
	"whosmudassir/shop-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewSessionMiddleware guards the JSON API. It refreshes the sliding
// session on every authenticated request and stores the user in the
// context as user, with its id as userID.
func NewSessionMiddleware(s *session.Manager, users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		claims := s.Refresh(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Please log in to use the service",
				"requestID": requestID,
			})
			return
		}

		// A still-valid token may outlive its account. Reject those.
		user, err := users.FindByID(claims.User.ID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				s.Revoke(c)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Please log in to use the service",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}
