package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fnolrouter/internal/handler"
	"fnolrouter/internal/middleware"
)

// Options selects optional parts of the API.
type Options struct {
	AllowedOrigins []string
	// ObjectStorage registers POST /api/v1/claims/s3.
	ObjectStorage bool
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	claimH *handler.ClaimHandler,
	healthH *handler.HealthHandler,
	logger *zap.Logger,
	opts Options,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	claims := v1.Group("/claims")
	claims.POST("", claimH.Upload)
	claims.POST("/text", claimH.ProcessText)
	if opts.ObjectStorage {
		claims.POST("/s3", claimH.ProcessObject)
	}

	return r
}
