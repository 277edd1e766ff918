package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/auth"
	"resume-builder/internal/generation"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/uploads"
	"resume-builder/internal/users"
)

// RouterDeps carries the handlers and services the router wires together.
type RouterDeps struct {
	Config     config.Config
	Resumes    *resumes.Handler
	Generation *generation.Handler
	Uploads    *uploads.Handler
	Users      *users.Handler
	GoogleAuth *auth.GoogleService
	Store      object.ObjectStore
}

// NewRouter builds the gin engine with the full middleware chain and routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(deps.Config.CORSAllowOrigin))

	if deps.Store != nil {
		r.GET("/uploads/*key", uploads.ServeImage(deps.Store))
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.Use(middleware.Auth())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.Users != nil {
		deps.Users.RegisterRoutes(api)
	}
	if deps.Resumes != nil {
		deps.Resumes.RegisterRoutes(api)
	}
	if deps.Uploads != nil {
		deps.Uploads.RegisterRoutes(api)
	}
	if deps.Generation != nil {
		// Each generation request costs an external model call.
		ai := api.Group("")
		ai.Use(middleware.RateLimit(middleware.RateLimitRule{Rate: 0.5, Burst: 5}, middleware.NewRateLimiter(nil)))
		deps.Generation.RegisterRoutes(ai)
	}

	return r
}

// Addr formats the listen address for the given port.
func Addr(port string) string {
	return ":" + port
}
