// Package root contains the handlers that don't belong to a resource:
// the pages the route guard fronts and the heartbeat.
package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}
