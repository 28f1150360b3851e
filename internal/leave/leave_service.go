package leave

import (
	"context"
	"sync"
	"time"

	leaveerrors "hr-dashboard/internal/leave/errors"
	"hr-dashboard/internal/shared/audit"
	"hr-dashboard/internal/shared/contextutil"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, applicant Actor, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actor Actor, id, comments string) (LeaveResponse, error)
	Reject(ctx context.Context, actor Actor, id, comments string) (LeaveResponse, error)
}

// Repository is the part of Store the service relies on.
type Repository interface {
	ApplyForLeaveAs(employeeID string, form LeaveRequestForm, employeeName string) LeaveRequest
	UpdateLeaveStatus(leaveID string, status LeaveStatus, processedBy, comments string) (LeaveRequest, bool)
	FindByID(leaveID string) (LeaveRequest, bool)
	GetEmployeeLeaves(employeeID string) []LeaveRequest
	GetAllLeaves() []LeaveRequest
}

var _ Repository = (*Store)(nil)

type service struct {
	repo   Repository
	audit  audit.Logger
	logger *zap.Logger

	// serializes the pending check and the status write of approve/reject
	processMu sync.Mutex
}

func NewService(repo Repository, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, audit: auditLogger, logger: l}
}

func (s *service) Apply(ctx context.Context, applicant Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("apply leave requested",
		zap.String("employee_id", applicant.ID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if err := validateCreateRequest(req); err != nil {
		log.Warn("apply leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l := s.repo.ApplyForLeaveAs(applicant.ID, LeaveRequestForm{
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	}, applicant.Name)

	log.Info("apply leave success",
		zap.String("leave_id", l.ID),
		zap.String("employee_id", l.EmployeeID),
	)
	return MapToResponse(l), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	return MapToListResponse(s.repo.GetEmployeeLeaves(employeeID)), nil
}

func (s *service) ListAll(ctx context.Context) ([]LeaveResponse, error) {
	return MapToListResponse(s.repo.GetAllLeaves()), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, ok := s.repo.FindByID(id)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return MapToResponse(l), nil
}

func (s *service) Approve(ctx context.Context, actor Actor, id, comments string) (LeaveResponse, error) {
	return s.process(ctx, actor, id, StatusApproved, comments)
}

func (s *service) Reject(ctx context.Context, actor Actor, id, comments string) (LeaveResponse, error) {
	return s.process(ctx, actor, id, StatusRejected, comments)
}

// process only acts on pending requests, the same rows the HR list offers
// buttons for. The store itself accepts any transition.
func (s *service) process(ctx context.Context, actor Actor, id string, target LeaveStatus, comments string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("process leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actor.ID),
		zap.String("target_status", string(target)),
	)

	s.processMu.Lock()
	defer s.processMu.Unlock()

	current, ok := s.repo.FindByID(id)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	if current.Status != StatusPending {
		log.Warn("process leave invalid transition",
			zap.String("leave_id", id),
			zap.String("from_status", string(current.Status)),
			zap.String("to_status", string(target)),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveAlreadyProcessed
	}

	l, ok := s.repo.UpdateLeaveStatus(id, target, actor.Name, comments)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	action := audit.ActionLeaveApproved
	if target == StatusRejected {
		action = audit.ActionLeaveRejected
	}
	if s.audit != nil {
		s.audit.Log(ctx, audit.Entry{
			Action:  action,
			ActorID: actor.ID,
			Message: "leave " + string(target),
			Meta: map[string]any{
				"leave_id":    l.ID,
				"employee_id": l.EmployeeID,
				"comments":    l.Comments,
			},
		})
	}

	log.Info("process leave success",
		zap.String("leave_id", id),
		zap.String("status", string(l.Status)),
	)
	return MapToResponse(l), nil
}

func validateCreateRequest(req CreateLeaveRequest) error {
	if !IsLeaveType(req.LeaveType) {
		return leaveerrors.ErrInvalidLeaveType
	}
	if req.Reason == "" {
		return leaveerrors.ErrReasonRequired
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}
	if startDate.After(endDate) {
		return leaveerrors.ErrInvalidDateRange
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// totalDays counts calendar days inclusive of both ends, 0 if the dates do not parse.
func totalDays(start, end string) int {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil || e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// MapToResponse converts a stored request into its JSON shape.
func MapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		TotalDays:    totalDays(l.StartDate, l.EndDate),
		Reason:       l.Reason,
		Status:       string(l.Status),
		AppliedDate:  l.AppliedDate.Format(time.RFC3339),
	}
	if l.ProcessedBy != "" {
		v := l.ProcessedBy
		resp.ProcessedBy = &v
	}
	if !l.ProcessedDate.IsZero() {
		v := l.ProcessedDate.Format(time.RFC3339)
		resp.ProcessedDate = &v
	}
	if l.Comments != "" {
		v := l.Comments
		resp.Comments = &v
	}
	return resp
}

func MapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = MapToResponse(l)
	}
	return resp
}
