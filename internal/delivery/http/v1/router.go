package v1

import (
	"net/http"

	"go-internship-gateway/config"
	"go-internship-gateway/internal/delivery/http/middleware"
	"go-internship-gateway/internal/delivery/http/response"
	"go-internship-gateway/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	ApplicationUC domain.ApplicationUsecase
	ProgramUC     domain.ProgramUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/metrics", "/v1/health"},
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds)))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The two pages: application form and confirmation
	r.StaticFile("/", "web/index.html")
	r.StaticFile("/success", "web/success.html")

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	submitLimiter := middleware.RateLimit(middleware.SubmitRateLimitConfig(
		deps.Config.RateLimitSubmitThreshold, deps.Config.RateLimitWindowSeconds))

	// Public routes - the whole surface is unauthenticated
	NewApplicationHandler(v1, deps.ApplicationUC, submitLimiter)
	NewProgramHandler(v1, deps.ProgramUC)

	return r
}
