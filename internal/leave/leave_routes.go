package leave

import (
	"hr-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the leave actions under a dashboard group that already
// runs middleware.ResolvePersona.
func RegisterRoutes(
	dashboard *gin.RouterGroup,
	handler *Handler,
	capabilities middleware.CapabilityService,
) {
	leaves := dashboard.Group("/leaves")
	{
		leaves.POST("", middleware.RequireCapability(capabilities, "leave", "apply"), handler.Apply)
		leaves.GET("/mine", middleware.RequireCapability(capabilities, "leave", "read_own"), handler.ListMine)
		leaves.GET("", middleware.RequireCapability(capabilities, "leave", "read_all"), handler.ListAll)
		leaves.GET("/:id", middleware.RequireCapability(capabilities, "leave", "read_all"), handler.GetByID)
		leaves.POST("/:id/approve", middleware.RequireCapability(capabilities, "leave", "process"), handler.Approve)
		leaves.POST("/:id/reject", middleware.RequireCapability(capabilities, "leave", "process"), handler.Reject)
	}
}

// RegisterCatalogRoutes mounts the public leave type catalogue.
func RegisterCatalogRoutes(api *gin.RouterGroup, handler *Handler) {
	api.GET("/leave-types", handler.LeaveTypes)
}
