package app

import (
	"net/http"

	"hris-console/internal/config"
	"hris-console/internal/leave"
	"hris-console/internal/middleware"
	"hris-console/internal/rbac"
	"hris-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp registers middleware and routes on router.
func BuildApp(router *gin.Engine, svcs *Services, cfg *config.Config, logger *zap.Logger) {
	limit := rate.Limit(cfg.RateLimit.PerSecond)

	router.Use(
		gin.Recovery(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(limit, cfg.RateLimit.Burst),
	)

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	var leaveHandler *leave.Handler
	if svcs.Redis != nil {
		leaveHandler = leave.NewHandlerWithRedis(svcs.Leave, svcs.Redis, logger)
	} else {
		leaveHandler = leave.NewHandler(svcs.Leave, logger)
	}
	rbacHandler := rbac.NewHandler(svcs.RBAC)

	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(
			api,
			leaveHandler,
			svcs.RBAC,
			cfg.Auth.JWTSecret,
			svcs.Redis,
			middleware.RateLimitByUser(limit, cfg.RateLimit.Burst),
		)
		rbac.RegisterRoutes(api, rbacHandler, cfg.Auth.JWTSecret)
	}
}
