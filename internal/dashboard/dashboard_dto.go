package dashboard

import (
	"hr-dashboard/internal/leave"
	"hr-dashboard/internal/persona"
)

type StatusCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// DashboardResponse is one role's landing view. Sections a role does not show
// are omitted.
type DashboardResponse struct {
	Persona      persona.Persona       `json:"persona"`
	Counts       StatusCounts          `json:"counts"`
	MyLeaves     []leave.LeaveResponse `json:"my_leaves,omitempty"`
	PendingQueue []leave.LeaveResponse `json:"pending_queue,omitempty"`
	RecentLeaves []leave.LeaveResponse `json:"recent_leaves,omitempty"`
}
