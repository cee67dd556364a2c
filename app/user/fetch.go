// Package user contains handlers for the current user's own data.
package user

import (
	"net/http"

	"whosmudassir/shop-api/internal"
	"whosmudassir/shop-api/internal/model"

	"github.com/gin-gonic/gin"
)

// Me returns the authenticated user. The session middleware already
// refreshed the cookie and loaded the row.
func Me(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	u := c.MustGet("user").(*model.User)

	c.JSON(http.StatusOK, gin.H{
		"user":      u.Public(),
		"requestID": requestID,
	})
}
