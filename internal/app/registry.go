package app

import (
	"hr-dashboard/internal/bootstrap"
	"hr-dashboard/internal/dashboard"
	"hr-dashboard/internal/leave"
	"hr-dashboard/internal/middleware"
	"hr-dashboard/internal/rbac"
	"hr-dashboard/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	a *App,
	cfg bootstrap.Config,
	logger *zap.Logger,
) error {
	// --- Capabilities ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicies, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	leaveService := leave.NewService(a.Store, a.Audit, logger)
	dashboardService := dashboard.NewService(a.Store, logger)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	leave.RegisterCatalogRoutes(api, leaveHandler)

	board := api.Group("/dashboards/:role")
	board.Use(
		middleware.ResolvePersona(),
		middleware.RateLimitByActor(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
	)
	{
		dashboard.RegisterRoutes(board, dashboardHandler, rbacService)
		leave.RegisterRoutes(board, leaveHandler, rbacService)
		rbac.RegisterRoutes(board, rbacHandler)
	}

	return nil
}
