package user

import (
	"net/http"

	"whosmudassir/shop-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type interestsBody struct {
	CategoryIDs []int `json:"categoryIds"`
}

// SaveInterests replaces the user's saved category interests.
func SaveInterests(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data interestsBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.Categories.SaveInterests(userID, data.CategoryIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save interests", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categoryIds": data.CategoryIDs,
		"requestID":   requestID,
	})
}

// Interests returns the ids of the categories the user saved.
func Interests(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	ids, err := d.Categories.Interests(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch interests", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categoryIds": ids,
		"requestID":   requestID,
	})
}
