// Package app wires the stores, session plumbing and handlers into
// the gin engine.
package app

import (
	"fmt"
	"strings"
	"time"

	"whosmudassir/shop-api/app/auth"
	"whosmudassir/shop-api/app/category"
	"whosmudassir/shop-api/app/game"
	"whosmudassir/shop-api/app/root"
	"whosmudassir/shop-api/app/user"
	"whosmudassir/shop-api/db"
	"whosmudassir/shop-api/internal"
	"whosmudassir/shop-api/internal/service"
	"whosmudassir/shop-api/internal/session"
	"whosmudassir/shop-api/internal/store"
	"whosmudassir/shop-api/pkg/middleware"
	"whosmudassir/shop-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	codec, err := session.NewCodec(viper.GetString("jwt.secret"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session codec, %w", err)
	}

	d := &internal.Deps{
		DB:         database,
		Argon:      security.New(),
		Sessions:   session.NewManager(codec, viper.GetBool("host.ssl.enabled")),
		Users:      store.NewUsers(database),
		Codes:      store.NewCodes(database),
		Categories: store.NewCategories(database),
		Mailer:     service.NewSMTPMailer(),
	}

	router := gin.New()

	origins := strings.Split(viper.GetString("host.cors"), ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
		middleware.NewRouteGuard(d.Sessions),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	rateLimit := viper.GetInt("security.rate_limit")
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
		CleanupInterval:   time.Second,
	})

	requireSession := middleware.NewSessionMiddleware(d.Sessions, d.Users)

	// Pages. The route guard in front decides who gets to see them.
	router.GET("/home", func(c *gin.Context) { root.Home(c, d) })
	router.GET("/login", root.Login)
	router.GET("/signup", root.Signup)

	m := router.Group("/api", rateLimiter)
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)
	}

	a := m.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/auth/signup	-> Issues and mails a verification code
		a.POST("/signup", func(c *gin.Context) { auth.Signup(c, d) })

		// POST /api/auth/verify	-> Redeems a code, creates the account
		a.POST("/verify", func(c *gin.Context) { auth.Verify(c, d) })

		// POST /api/auth/login 	-> Logs in a user and sets the session cookie
		a.POST("/login", func(c *gin.Context) { auth.Login(c, d) })

		// POST /api/auth/logout	-> Clears the session cookie
		a.POST("/logout", func(c *gin.Context) { auth.Logout(c, d) })

		// GET /api/auth/session	-> Returns the current session payload
		a.GET("/session", func(c *gin.Context) { auth.Session(c, d) })
	}

	u := m.Group("/users", requireSession)
	{
		// GET /api/users/me		-> Returns the current user
		u.GET("/me", func(c *gin.Context) { user.Me(c, d) })

		// GET /api/users/me/interests	-> Returns the saved category ids
		u.GET("/me/interests", func(c *gin.Context) { user.Interests(c, d) })

		// PUT /api/users/me/interests	-> Replaces the saved category ids
		u.PUT("/me/interests", func(c *gin.Context) { user.SaveInterests(c, d) })
	}

	// GET /api/categories		-> Paginated category listing
	m.GET("/categories", cacheFor(15), func(c *gin.Context) { category.List(c, d) })

	// GET /api/game		-> Runs the cellular automaton demo
	m.GET("/game", func(c *gin.Context) { game.State(c, d) })

	// Expired codes also get rejected at redeem time, the sweep just
	// keeps the table small
	service.CodeCleanup(time.Hour, database)

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
