package root

import (
	"net/http"

	"whosmudassir/shop-api/internal"

	"github.com/gin-gonic/gin"
)

// Home is the authenticated landing page. Reading it refreshes the
// sliding session, so every visit extends the cookie by an hour. The
// route guard has already redirected anonymous visitors to /login.
func Home(c *gin.Context, d *internal.Deps) {
	claims := d.Sessions.Refresh(c)
	if claims == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page": "home",
		"user": claims.User,
	})
}

// Login and Signup only exist so the route guard has real public
// pages to classify. The markup itself is rendered by the frontend.
func Login(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

func Signup(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "signup"})
}
