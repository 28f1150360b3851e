package leave

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof='Sick Leave' Vacation Personal 'Maternity/Paternity' Bereavement Other"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// ProcessLeaveRequest is the optional body of approve and reject.
type ProcessLeaveRequest struct {
	Comments string `json:"comments" binding:"max=500"`
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AppliedDate   string  `json:"applied_date"`
	ProcessedBy   *string `json:"processed_by,omitempty"`
	ProcessedDate *string `json:"processed_date,omitempty"`
	Comments      *string `json:"comments,omitempty"`
}

// Actor is whoever applies for or processes a leave.
type Actor struct {
	ID   string
	Name string
}
