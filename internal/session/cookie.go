package session

import (
	"time"

	"whosmudassir/shop-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session"

// Manager moves session tokens in and out of the session cookie.
// Invalid cookies are treated as anonymous rather than surfaced, so a
// tampered or expired token behaves exactly like no token at all.
type Manager struct {
	codec  *Codec
	secure bool
}

func NewManager(codec *Codec, secure bool) *Manager {
	return &Manager{codec: codec, secure: secure}
}

// Read returns the session carried by the request, or nil for
// anonymous requests. It never writes cookies.
func (m *Manager) Read(c *gin.Context) *Claims {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}

	claims, err := m.codec.Verify(raw)
	if err != nil {
		// Tampered or expired cookies count as anonymous. Log at
		// debug only, the client gets no hint about what failed.
		zap.L().Debug("Discarding invalid session cookie", zap.Error(err))
		return nil
	}

	return claims
}

// Refresh reads the session and, if valid, re-issues it with a fresh
// expiry so every authenticated page load extends the session.
func (m *Manager) Refresh(c *gin.Context) *Claims {
	claims := m.Read(c)
	if claims == nil {
		return nil
	}

	if err := m.Establish(c, claims.User); err != nil {
		// The old cookie is still valid, so keep the session alive.
		zap.L().Error("Failed to refresh session cookie", zap.Error(err))
	}

	return claims
}

// Establish signs a new session for the user and writes it as an
// httpOnly cookie expiring in one hour.
func (m *Manager) Establish(c *gin.Context, user model.PublicUser) error {
	token, err := m.codec.Sign(user, time.Now().Add(TTL))
	if err != nil {
		return err
	}

	c.SetCookie(CookieName, token, int(TTL.Seconds()), "/", "", m.secure, true)
	return nil
}

// Revoke overwrites the cookie with an empty value and an expiry in
// the past so the client drops it immediately.
func (m *Manager) Revoke(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}
