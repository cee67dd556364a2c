package middleware

import (
	"net/http"
	"slices"

	"whosmudassir/shop-api/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath   = "/login"
	LandingPath = "/home"
)

var (
	publicRoutes    = []string{"/signup", LoginPath}
	protectedRoutes = []string{LandingPath}
)

// NewRouteGuard classifies every request path against the fixed
// public/protected tables and redirects based on session presence.
// It only reads the session, refreshing is left to the page handlers,
// so a redirect never mutates cookies.
func NewRouteGuard(s *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		isProtected := slices.Contains(protectedRoutes, path)
		isPublic := slices.Contains(publicRoutes, path)

		if !isProtected && !isPublic {
			c.Next()
			return
		}

		authenticated := s.Read(c) != nil

		if isProtected && !authenticated {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		if isPublic && authenticated {
			c.Redirect(http.StatusFound, LandingPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
