package app

import (
	"net/http"

	"hr-dashboard/internal/bootstrap"
	"hr-dashboard/internal/leave"
	"hr-dashboard/internal/middleware"
	"hr-dashboard/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// App is the composition root. It owns the one leave store of the running
// session and every adapter receives it from here.
type App struct {
	Store *leave.Store
	Audit audit.Logger
}

// BuildApp wires middleware, modules and routes onto router.
func BuildApp(router *gin.Engine, cfg bootstrap.Config, logger *zap.Logger) (*App, error) {
	a := &App{
		Store: leave.NewStore(leave.WithLogger(logger)),
		Audit: audit.NewZapLogger(logger),
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
	)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := registerModules(router, a, cfg, logger); err != nil {
		return nil, err
	}
	logger.Info("modules registered")

	return a, nil
}
