package auth

import (
	"net/http"

	"whosmudassir/shop-api/internal"

	"github.com/gin-gonic/gin"
)

// Session lets clients check whether their cookie still holds a valid
// session without triggering a refresh.
func Session(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	claims := d.Sessions.Read(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "No active session",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      claims.User,
		"expiresAt": claims.ExpiresAt.Time,
		"requestID": requestID,
	})
}
