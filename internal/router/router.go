package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/student-form/internal/config"
	"github.com/stemsi/student-form/internal/handler"
	"github.com/stemsi/student-form/internal/middleware"
	"github.com/stemsi/student-form/internal/response"
	"github.com/stemsi/student-form/internal/view"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student *handler.StudentHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// submitLimiter guards every form submission endpoint.
func SetupRouter(
	handlers *Handlers,
	submitLimiter *middleware.RateLimiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Str("request_id", response.RequestID(c)).
			Msg("Recovered from panic")
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.Brotli())

	router.SetHTMLTemplate(view.Templates())

	staticGroup := router.Group("/static")
	staticGroup.Use(middleware.CacheControl(86400))
	{
		staticGroup.StaticFS("/", view.Static())
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/student/showForm")
	})

	// ─── 1. Student Form Pages ─────────────────────────────────────────
	studentPages := router.Group("/student")
	studentPages.Use(middleware.NoStore())
	{
		studentPages.GET("/showForm", handlers.Student.ShowForm)
		studentPages.POST("/processForm", submitLimiter.Middleware(), handlers.Student.ProcessForm)
	}

	// ─── 2. Student JSON API ───────────────────────────────────────────
	studentAPI := router.Group("/api/v1/students")
	{
		studentAPI.GET("/form", handlers.Student.GetForm)
		studentAPI.POST("/validate", submitLimiter.Middleware(), handlers.Student.Validate)
	}

	return router
}
