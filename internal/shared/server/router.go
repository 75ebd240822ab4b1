package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resumebuilder-backend/internal/auth"
	"resumebuilder-backend/internal/assets"
	"resumebuilder-backend/internal/preview"
	"resumebuilder-backend/internal/resumes"
	"resumebuilder-backend/internal/services/health"
	"resumebuilder-backend/internal/shared/config"
	"resumebuilder-backend/internal/shared/metrics"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
	"resumebuilder-backend/internal/users"
	"resumebuilder-backend/internal/wizard"
)

// RouterDeps carries the handlers the router mounts. Nil entries are
// skipped so tests can build a router with only the features they need.
type RouterDeps struct {
	Config         config.Config
	ResumesHandler *resumes.Handler
	WizardHandler  *wizard.Handler
	PreviewHandler *preview.Handler
	AssetsHandler  *assets.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimits()),
		middleware.Auth(),
	)

	healthSvc := health.NewService()
	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.AssetsHandler != nil {
		deps.AssetsHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.WizardHandler != nil {
		deps.WizardHandler.RegisterRoutes(api)
	}
	if deps.PreviewHandler != nil {
		deps.PreviewHandler.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimits gives the capture routes their own bucket; spawning headless
// Chrome is orders of magnitude heavier than the CRUD paths.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 10, Burst: 30},
			"EXPORT":  {Rate: 0.5, Burst: 3},
		},
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			path := c.Request.URL.Path
			if strings.HasSuffix(path, "/download") || strings.HasSuffix(path, "/thumbnail") {
				return "EXPORT"
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
