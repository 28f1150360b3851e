package dashboard

import (
	"hr-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	dashboard *gin.RouterGroup,
	handler *Handler,
	capabilities middleware.CapabilityService,
) {
	dashboard.GET("", middleware.RequireCapability(capabilities, "dashboard", "view"), handler.Get)
	dashboard.GET("/report", middleware.RequireCapability(capabilities, "dashboard", "export"), handler.Report)
}
