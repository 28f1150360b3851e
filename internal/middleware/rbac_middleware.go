package middleware

import (
	"net/http"

	"hr-dashboard/internal/shared/apperror"
	"hr-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CapabilityService answers whether a role dashboard offers an action.
type CapabilityService interface {
	Allowed(role, resource, action string) (bool, error)
}

// RequireCapability must run after ResolvePersona.
func RequireCapability(service CapabilityService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			response.AbortError(c, http.StatusNotFound, apperror.CodeNotFound, "dashboard not found")
			return
		}

		allowed, err := service.Allowed(role, resource, action)
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message)
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ApiEnvelope{
				Ok: false,
				Error: map[string]any{
					"code":     apperror.CodeForbidden,
					"message":  apperror.ErrForbidden.Message,
					"required": resource + ":" + action,
				},
			})
			return
		}
		c.Next()
	}
}
