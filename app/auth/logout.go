package auth

import (
	"net/http"

	"whosmudassir/shop-api/internal"

	"github.com/gin-gonic/gin"
)

// Logout overwrites the session cookie with an empty, already-expired
// value. Idempotent, an anonymous logout is still a success.
func Logout(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	d.Sessions.Revoke(c)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Logout successful",
		"requestID": requestID,
	})
}
