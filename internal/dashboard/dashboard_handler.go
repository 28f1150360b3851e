package dashboard

import (
	"fmt"
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
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Get(c *gin.Context) {
	p, ok := middleware.PersonaFrom(c)
	if !ok {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "dashboard not found", nil)
		return
	}

	resp, err := h.service.Build(c.Request.Context(), p)
	if err != nil {
		h.logger.Error("build dashboard failed", zap.String("role", string(p.Role)), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Report downloads the dashboard's leave requests as a PDF.
func (h *Handler) Report(c *gin.Context) {
	p, ok := middleware.PersonaFrom(c)
	if !ok {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "dashboard not found", nil)
		return
	}

	out, err := h.service.Report(c.Request.Context(), p)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="leave-report-%s.pdf"`, p.Role))
	c.Data(http.StatusOK, ReportContentType, out)
}
