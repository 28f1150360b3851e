package leave

import "time"

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

const (
	TypeSick        = "Sick Leave"
	TypeVacation    = "Vacation"
	TypePersonal    = "Personal"
	TypeParental    = "Maternity/Paternity"
	TypeBereavement = "Bereavement"
	TypeOther       = "Other"
)

// LeaveTypes is the fixed catalogue offered by the leave form, in display order.
var LeaveTypes = []string{
	TypeSick,
	TypeVacation,
	TypePersonal,
	TypeParental,
	TypeBereavement,
	TypeOther,
}

func IsLeaveType(v string) bool {
	for _, t := range LeaveTypes {
		if t == v {
			return true
		}
	}
	return false
}

// LeaveRequest is a value type: copies never share state with the store.
// ProcessedBy, ProcessedDate and Comments are zero until the first status change.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	LeaveType    string
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	Reason       string
	Status       LeaveStatus
	AppliedDate  time.Time

	ProcessedBy   string
	ProcessedDate time.Time
	Comments      string
}

func (l LeaveRequest) IsProcessed() bool {
	return !l.ProcessedDate.IsZero()
}

// LeaveRequestForm carries what the apply form collects.
type LeaveRequestForm struct {
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string
}
