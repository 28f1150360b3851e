package dashboard_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"hr-dashboard/internal/dashboard"
	"hr-dashboard/internal/leave"
	"hr-dashboard/internal/persona"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPersona(t *testing.T, role string) persona.Persona {
	t.Helper()
	p, ok := persona.Lookup(role)
	require.True(t, ok)
	return p
}

func form(reason string) leave.LeaveRequestForm {
	return leave.LeaveRequestForm{
		LeaveType: leave.TypePersonal,
		StartDate: "2024-12-28",
		EndDate:   "2024-12-28",
		Reason:    reason,
	}
}

// seedStore applies 7 requests: 3 from the employee persona, 4 from others.
// Two are approved and one rejected afterwards.
func seedStore(t *testing.T) *leave.Store {
	t.Helper()
	s := leave.NewStore()
	var ids []string
	for i := 0; i < 7; i++ {
		var l leave.LeaveRequest
		if i%2 == 0 && i < 6 {
			l = s.ApplyForLeave(form(fmt.Sprintf("r%d", i)), "Alex Employee")
		} else {
			l = s.ApplyForLeaveAs(fmt.Sprintf("emp-%d", i), form(fmt.Sprintf("r%d", i)), "Other")
		}
		ids = append(ids, l.ID)
	}
	s.UpdateLeaveStatus(ids[0], leave.StatusApproved, "Emily HR", "")
	s.UpdateLeaveStatus(ids[1], leave.StatusApproved, "Emily HR", "")
	s.UpdateLeaveStatus(ids[2], leave.StatusRejected, "Emily HR", "No cover")
	return s
}

func TestDashboardService_Employee(t *testing.T) {
	svc := dashboard.NewService(seedStore(t))

	resp, err := svc.Build(context.Background(), mustPersona(t, "employee"))

	require.NoError(t, err)
	assert.Equal(t, dashboard.StatusCounts{Total: 3, Pending: 1, Approved: 1, Rejected: 1}, resp.Counts)
	require.Len(t, resp.MyLeaves, 3)
	assert.Equal(t, []string{"r0", "r2", "r4"}, []string{resp.MyLeaves[0].Reason, resp.MyLeaves[1].Reason, resp.MyLeaves[2].Reason})
	assert.Nil(t, resp.PendingQueue)
	assert.Nil(t, resp.RecentLeaves)
}

func TestDashboardService_HR(t *testing.T) {
	svc := dashboard.NewService(seedStore(t))

	resp, err := svc.Build(context.Background(), mustPersona(t, "hr"))

	require.NoError(t, err)
	assert.Equal(t, dashboard.StatusCounts{Total: 7, Pending: 4, Approved: 2, Rejected: 1}, resp.Counts)
	require.Len(t, resp.PendingQueue, 4)
	assert.Equal(t, "r3", resp.PendingQueue[0].Reason, "oldest pending first")
	require.Len(t, resp.RecentLeaves, dashboard.RecentLimit)
	assert.Equal(t, "r6", resp.RecentLeaves[0].Reason, "newest first")
	assert.Equal(t, "r2", resp.RecentLeaves[4].Reason)
	assert.Nil(t, resp.MyLeaves)
}

func TestDashboardService_Admin(t *testing.T) {
	store := seedStore(t)
	svc := dashboard.NewService(store)

	resp, err := svc.Build(context.Background(), mustPersona(t, "admin"))

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Counts.Pending)
	assert.Len(t, resp.RecentLeaves, dashboard.RecentLimit)
	assert.Nil(t, resp.PendingQueue)

	// trimming happens on the adapter's copy only
	assert.Len(t, store.GetAllLeaves(), 7)
}

func TestDashboardService_EmptyStore(t *testing.T) {
	svc := dashboard.NewService(leave.NewStore())

	resp, err := svc.Build(context.Background(), mustPersona(t, "hr"))

	require.NoError(t, err)
	assert.Equal(t, dashboard.StatusCounts{}, resp.Counts)
	assert.Empty(t, resp.PendingQueue)
	assert.Empty(t, resp.RecentLeaves)
}

func TestDashboardService_UnknownRole(t *testing.T) {
	svc := dashboard.NewService(leave.NewStore())

	_, err := svc.Build(context.Background(), persona.Persona{Role: "auditor"})

	assert.Error(t, err)
}

func TestDashboardService_Report(t *testing.T) {
	t.Run("renders a pdf per role", func(t *testing.T) {
		svc := dashboard.NewService(seedStore(t))

		for _, role := range persona.Roles() {
			out, err := svc.Report(context.Background(), mustPersona(t, string(role)))

			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "role %s", role)
		}
	})

	t.Run("empty store still renders", func(t *testing.T) {
		svc := dashboard.NewService(leave.NewStore())

		out, err := svc.Report(context.Background(), mustPersona(t, "admin"))

		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("negative unknown role", func(t *testing.T) {
		svc := dashboard.NewService(leave.NewStore())

		_, err := svc.Report(context.Background(), persona.Persona{Role: "auditor"})

		assert.Error(t, err)
	})
}
