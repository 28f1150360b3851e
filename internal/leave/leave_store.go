package leave

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultEmployeeID is the identity bound by ApplyForLeave when the caller does
// not thread one through.
const DefaultEmployeeID = "current-user-id"

// Store is the system of record for leave requests during one application
// session. It keeps requests in insertion order and hands out copies only.
//
// Status changes are permissive: any request can move to any status, including
// re-processing an approved or rejected one. Gating belongs to the caller.
type Store struct {
	mu     sync.RWMutex
	leaves []LeaveRequest
	index  map[string]int

	now               func() time.Time
	newID             func() string
	defaultEmployeeID string
	logger            *zap.Logger
}

type StoreOption func(*Store)

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) { s.newID = newID }
}

func WithDefaultEmployeeID(id string) StoreOption {
	return func(s *Store) { s.defaultEmployeeID = id }
}

func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.Named("leave.store")
		}
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		index:             make(map[string]int),
		now:               func() time.Time { return time.Now().UTC() },
		newID:             uuid.NewString,
		defaultEmployeeID: DefaultEmployeeID,
		logger:            zap.L().Named("leave.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyForLeave records a new pending request for the placeholder identity.
func (s *Store) ApplyForLeave(form LeaveRequestForm, employeeName string) LeaveRequest {
	return s.ApplyForLeaveAs(s.defaultEmployeeID, form, employeeName)
}

// ApplyForLeaveAs records a new pending request for employeeID. The form is
// stored as given; validation is the caller's job.
func (s *Store) ApplyForLeaveAs(employeeID string, form LeaveRequestForm, employeeName string) LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for {
		if _, taken := s.index[id]; !taken {
			break
		}
		id = s.newID()
	}

	l := LeaveRequest{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		LeaveType:    form.LeaveType,
		StartDate:    form.StartDate,
		EndDate:      form.EndDate,
		Reason:       form.Reason,
		Status:       StatusPending,
		AppliedDate:  s.now(),
	}
	s.index[id] = len(s.leaves)
	s.leaves = append(s.leaves, l)

	s.logger.Debug("leave applied",
		zap.String("leave_id", id),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", form.LeaveType),
	)
	return l
}

// UpdateLeaveStatus sets status, processedBy and processedDate on the request
// with leaveID. An empty comments keeps the previous comments. An unknown id
// changes nothing and reports false.
func (s *Store) UpdateLeaveStatus(leaveID string, status LeaveStatus, processedBy, comments string) (LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[leaveID]
	if !ok {
		s.logger.Debug("leave status update ignored, unknown id", zap.String("leave_id", leaveID))
		return LeaveRequest{}, false
	}

	l := s.leaves[i]
	from := l.Status
	l.Status = status
	l.ProcessedBy = processedBy
	l.ProcessedDate = s.now()
	if comments != "" {
		l.Comments = comments
	}
	s.leaves[i] = l

	s.logger.Debug("leave status updated",
		zap.String("leave_id", leaveID),
		zap.String("from_status", string(from)),
		zap.String("to_status", string(status)),
		zap.String("processed_by", processedBy),
	)
	return l, true
}

func (s *Store) FindByID(leaveID string) (LeaveRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[leaveID]
	if !ok {
		return LeaveRequest{}, false
	}
	return s.leaves[i], true
}

// GetEmployeeLeaves returns the requests of employeeID in insertion order.
// The result is never nil.
func (s *Store) GetEmployeeLeaves(employeeID string) []LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeaveRequest, 0)
	for _, l := range s.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out
}

// GetAllLeaves returns a snapshot of every request in insertion order.
func (s *Store) GetAllLeaves() []LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeaveRequest, len(s.leaves))
	copy(out, s.leaves)
	return out
}
