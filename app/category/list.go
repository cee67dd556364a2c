// Package category serves the paginated category listing.
package category

import (
	"net/http"
	"strconv"

	"whosmudassir/shop-api/internal"
	"whosmudassir/shop-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// List returns one page of categories. Defaults: page 1, six per page.
func List(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid page parameter",
			"requestID": requestID,
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultPageSize)))
	if err != nil || limit < 1 || limit > store.MaxPageSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid limit parameter",
			"requestID": requestID,
		})
		return
	}

	result, err := d.Categories.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list categories", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, result)
}
