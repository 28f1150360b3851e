package rbac

import (
	"net/http"

	"hr-dashboard/internal/middleware"
	"hr-dashboard/internal/shared/apperror"
	"hr-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

type CapabilitiesResponse struct {
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

// Capabilities tells a dashboard which leave actions to render.
func (h *Handler) Capabilities(c *gin.Context) {
	role := c.GetString(middleware.ContextRole)

	caps, err := h.service.Capabilities(role)
	if err != nil {
		h.logger.Error("list capabilities failed", zap.String("role", role), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, CapabilitiesResponse{Role: role, Capabilities: caps}, nil)
}
