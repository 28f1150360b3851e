package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes expects dashboard to already resolve the persona.
func RegisterRoutes(dashboard *gin.RouterGroup, handler *Handler) {
	dashboard.GET("/capabilities", handler.Capabilities)
}
