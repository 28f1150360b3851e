package leave

import (
	"context"
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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func getActor(c *gin.Context) Actor {
	return Actor{
		ID:   c.GetString(middleware.ContextActorID),
		Name: c.GetString(middleware.ContextActorName),
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http leave validation failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	appErr := apperror.MapValidationError(err)
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, err.Error())
}

func (h *Handler) Apply(c *gin.Context) {
	actor := getActor(c)
	h.logger.Debug("http apply leave", zap.String("actor_id", actor.ID))

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Apply(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListMine(c *gin.Context) {
	resp, err := h.service.ListMine(c.Request.Context(), getActor(c).ID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) ListAll(c *gin.Context) {
	resp, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if status := c.Query("status"); status != "" {
		if !LeaveStatus(status).Valid() {
			h.writeServiceError(c, apperror.InvalidField("Status"))
			return
		}
		filtered := make([]LeaveResponse, 0, len(resp))
		for _, l := range resp {
			if l.Status == status {
				filtered = append(filtered, l)
			}
		}
		resp = filtered
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.process(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.process(c, h.service.Reject)
}

type processFunc func(ctx context.Context, actor Actor, id, comments string) (LeaveResponse, error)

func (h *Handler) process(c *gin.Context, fn processFunc) {
	var req ProcessLeaveRequest
	// the body is optional, comments may be left out
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeBindError(c, err)
			return
		}
	}

	resp, err := fn(c.Request.Context(), getActor(c), c.Param("id"), req.Comments)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// LeaveTypes lists the options of the apply form.
func (h *Handler) LeaveTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, LeaveTypes, nil)
}
