package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"whosmudassir/shop-api/internal/model"
	"whosmudassir/shop-api/internal/session"

	"github.com/gin-gonic/gin"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *session.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := session.NewCodec("guard-secret")
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	r := gin.New()
	r.Use(NewRouteGuard(session.NewManager(codec, false)))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/home", ok)
	r.GET("/login", ok)
	r.GET("/signup", ok)
	r.GET("/about", ok)

	return r, codec
}

func validCookie(t *testing.T, codec *session.Codec) *http.Cookie {
	t.Helper()

	token, err := codec.Sign(model.PublicUser{ID: "u1", Email: "u@x.com"}, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	return &http.Cookie{Name: session.CookieName, Value: token}
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardRedirectsAnonymousFromProtected(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := get(r, "/home", nil)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q, want /login", loc)
	}
}

func TestGuardRedirectsAuthenticatedFromPublic(t *testing.T) {
	r, codec := newGuardedRouter(t)

	for _, path := range []string{"/login", "/signup"} {
		w := get(r, path, validCookie(t, codec))

		if w.Code != http.StatusFound {
			t.Fatalf("%s: status = %d, want %d", path, w.Code, http.StatusFound)
		}
		if loc := w.Header().Get("Location"); loc != "/home" {
			t.Fatalf("%s: Location = %q, want /home", path, loc)
		}
	}
}

func TestGuardPassesAuthenticatedToProtected(t *testing.T) {
	r, codec := newGuardedRouter(t)

	if w := get(r, "/home", validCookie(t, codec)); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestGuardPassesAnonymousToPublic(t *testing.T) {
	r, _ := newGuardedRouter(t)

	for _, path := range []string{"/login", "/signup"} {
		if w := get(r, path, nil); w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}

func TestGuardIgnoresUnlistedPaths(t *testing.T) {
	r, codec := newGuardedRouter(t)

	if w := get(r, "/about", nil); w.Code != http.StatusOK {
		t.Fatalf("anonymous: status = %d, want %d", w.Code, http.StatusOK)
	}
	if w := get(r, "/about", validCookie(t, codec)); w.Code != http.StatusOK {
		t.Fatalf("authenticated: status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestGuardTreatsTamperedCookieAsAnonymous(t *testing.T) {
	r, codec := newGuardedRouter(t)

	ck := validCookie(t, codec)
	ck.Value += "tampered"

	w := get(r, "/home", ck)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}

	// The guard never mutates the session
	if cookies := w.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("guard wrote cookies: %v", cookies)
	}
}
