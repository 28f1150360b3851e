package dashboard

import (
	"context"
	"fmt"
	"time"

	"hr-dashboard/internal/leave"
	"hr-dashboard/internal/persona"
	"hr-dashboard/internal/shared/contextutil"

	"go.uber.org/zap"
)

// RecentLimit caps the recent requests section.
const RecentLimit = 5

// LeaveReader is the read side of leave.Store.
type LeaveReader interface {
	GetEmployeeLeaves(employeeID string) []leave.LeaveRequest
	GetAllLeaves() []leave.LeaveRequest
}

type Service interface {
	Build(ctx context.Context, p persona.Persona) (DashboardResponse, error)
	Report(ctx context.Context, p persona.Persona) ([]byte, error)
}

type service struct {
	leaves LeaveReader
	now    func() time.Time
	logger *zap.Logger
}

func NewService(leaves LeaveReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{leaves: leaves, now: time.Now, logger: l}
}

func (s *service) Build(ctx context.Context, p persona.Persona) (DashboardResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	resp := DashboardResponse{Persona: p}

	switch p.Role {
	case persona.RoleEmployee:
		mine := s.leaves.GetEmployeeLeaves(p.ID)
		resp.Counts = countByStatus(mine)
		resp.MyLeaves = leave.MapToListResponse(mine)
	case persona.RoleHR:
		all := s.leaves.GetAllLeaves()
		resp.Counts = countByStatus(all)
		resp.PendingQueue = leave.MapToListResponse(pendingOnly(all))
		resp.RecentLeaves = leave.MapToListResponse(recent(all, RecentLimit))
	case persona.RoleAdmin:
		all := s.leaves.GetAllLeaves()
		resp.Counts = countByStatus(all)
		resp.RecentLeaves = leave.MapToListResponse(recent(all, RecentLimit))
	default:
		return DashboardResponse{}, fmt.Errorf("dashboard: unsupported role %q", p.Role)
	}

	log.Debug("dashboard built",
		zap.String("role", string(p.Role)),
		zap.Int("total", resp.Counts.Total),
		zap.Int("pending", resp.Counts.Pending),
	)
	return resp, nil
}

// Report renders every request the persona's dashboard can see.
func (s *service) Report(ctx context.Context, p persona.Persona) ([]byte, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var visible []leave.LeaveRequest
	switch p.Role {
	case persona.RoleEmployee:
		visible = s.leaves.GetEmployeeLeaves(p.ID)
	case persona.RoleHR, persona.RoleAdmin:
		visible = s.leaves.GetAllLeaves()
	default:
		return nil, fmt.Errorf("dashboard: unsupported role %q", p.Role)
	}

	out, err := RenderReport(p, countByStatus(visible), leave.MapToListResponse(visible), s.now())
	if err != nil {
		log.Error("render leave report failed", zap.String("role", string(p.Role)), zap.Error(err))
		return nil, err
	}

	log.Info("leave report rendered",
		zap.String("role", string(p.Role)),
		zap.Int("rows", len(visible)),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}

func countByStatus(leaves []leave.LeaveRequest) StatusCounts {
	c := StatusCounts{Total: len(leaves)}
	for _, l := range leaves {
		switch l.Status {
		case leave.StatusPending:
			c.Pending++
		case leave.StatusApproved:
			c.Approved++
		case leave.StatusRejected:
			c.Rejected++
		}
	}
	return c
}

// pendingOnly keeps insertion order, so the oldest request is first.
func pendingOnly(leaves []leave.LeaveRequest) []leave.LeaveRequest {
	out := make([]leave.LeaveRequest, 0, len(leaves))
	for _, l := range leaves {
		if l.Status == leave.StatusPending {
			out = append(out, l)
		}
	}
	return out
}

// recent returns up to n requests, newest first. leaves must be a snapshot
// the caller owns.
func recent(leaves []leave.LeaveRequest, n int) []leave.LeaveRequest {
	if n > len(leaves) {
		n = len(leaves)
	}
	out := make([]leave.LeaveRequest, 0, n)
	for i := len(leaves) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, leaves[i])
	}
	return out
}
