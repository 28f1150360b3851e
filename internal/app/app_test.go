package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-dashboard/internal/bootstrap"
	"hr-dashboard/internal/leave"
	"hr-dashboard/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error map[string]any  `json:"error"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *App) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	router := gin.New()
	cfg := bootstrap.Config{
		RateLimit: bootstrap.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}
	a, err := BuildApp(router, cfg, zap.NewNop())
	require.NoError(t, err)
	return router, a
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestApp_EmployeeAppliesHRApproves(t *testing.T) {
	router, a := newTestRouter(t)

	code, env := do(t, router, http.MethodPost, "/api/v1/dashboards/employee/leaves", leave.CreateLeaveRequest{
		LeaveType: leave.TypeVacation,
		StartDate: "2024-02-01",
		EndDate:   "2024-02-05",
		Reason:    "Family trip",
	})
	require.Equal(t, http.StatusCreated, code)
	var created leave.LeaveResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "current-user-id", created.EmployeeID)
	assert.Equal(t, "Alex Employee", created.EmployeeName)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, 5, created.TotalDays)

	code, env = do(t, router, http.MethodGet, "/api/v1/dashboards/hr/leaves?status=pending", nil)
	require.Equal(t, http.StatusOK, code)
	var queue []leave.LeaveResponse
	require.NoError(t, json.Unmarshal(env.Data, &queue))
	require.Len(t, queue, 1)
	assert.Equal(t, created.ID, queue[0].ID)

	code, env = do(t, router, http.MethodPost, "/api/v1/dashboards/hr/leaves/"+created.ID+"/approve",
		leave.ProcessLeaveRequest{Comments: "Enjoy"})
	require.Equal(t, http.StatusOK, code)
	var approved leave.LeaveResponse
	require.NoError(t, json.Unmarshal(env.Data, &approved))
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ProcessedBy)
	assert.Equal(t, "Emily HR", *approved.ProcessedBy)
	require.NotNil(t, approved.Comments)
	assert.Equal(t, "Enjoy", *approved.Comments)

	code, env = do(t, router, http.MethodGet, "/api/v1/dashboards/employee/leaves/mine", nil)
	require.Equal(t, http.StatusOK, code)
	var mine []leave.LeaveResponse
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "approved", mine[0].Status)

	// the store the adapters share is the one the app owns
	all := a.Store.GetAllLeaves()
	require.Len(t, all, 1)
	assert.Equal(t, leave.StatusApproved, all[0].Status)
}

func TestApp_ProcessTwiceIsConflict(t *testing.T) {
	router, _ := newTestRouter(t)

	_, env := do(t, router, http.MethodPost, "/api/v1/dashboards/employee/leaves", leave.CreateLeaveRequest{
		LeaveType: leave.TypeSick,
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
		Reason:    "Flu",
	})
	var created leave.LeaveResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	code, _ := do(t, router, http.MethodPost, "/api/v1/dashboards/hr/leaves/"+created.ID+"/reject", nil)
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, router, http.MethodPost, "/api/v1/dashboards/hr/leaves/"+created.ID+"/approve", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Ok)
}

func TestApp_CapabilityGates(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"employee cannot approve", http.MethodPost, "/api/v1/dashboards/employee/leaves/x/approve", http.StatusForbidden},
		{"employee cannot list all", http.MethodGet, "/api/v1/dashboards/employee/leaves", http.StatusForbidden},
		{"admin cannot process", http.MethodPost, "/api/v1/dashboards/admin/leaves/x/reject", http.StatusForbidden},
		{"hr cannot apply", http.MethodPost, "/api/v1/dashboards/hr/leaves", http.StatusForbidden},
		{"admin lists all", http.MethodGet, "/api/v1/dashboards/admin/leaves", http.StatusOK},
		{"unknown dashboard", http.MethodGet, "/api/v1/dashboards/ceo", http.StatusNotFound},
		{"unknown leave id", http.MethodPost, "/api/v1/dashboards/hr/leaves/missing/approve", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, router, tt.method, tt.path, nil)
			assert.Equal(t, tt.want, code)
			assert.Equal(t, tt.want == http.StatusOK, env.Ok)
		})
	}
}

func TestApp_Dashboard(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/api/v1/dashboards/hr", nil)
	require.Equal(t, http.StatusOK, code)

	var body struct {
		Persona struct {
			Name string `json:"name"`
		} `json:"persona"`
		Counts struct {
			Total int `json:"total"`
		} `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "Emily HR", body.Persona.Name)
	assert.Equal(t, 0, body.Counts.Total)
}

func TestApp_Capabilities(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/api/v1/dashboards/employee/capabilities", nil)
	require.Equal(t, http.StatusOK, code)

	var body struct {
		Role         string   `json:"role"`
		Capabilities []string `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "employee", body.Role)
	assert.ElementsMatch(t,
		[]string{"dashboard:view", "dashboard:export", "leave:apply", "leave:read_own"},
		body.Capabilities,
	)
}

func TestApp_Report(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboards/admin/report", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestApp_HealthAndCatalog(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	code, env := do(t, router, http.MethodGet, "/api/v1/leave-types", nil)
	require.Equal(t, http.StatusOK, code)
	var types []string
	require.NoError(t, json.Unmarshal(env.Data, &types))
	assert.Equal(t, leave.LeaveTypes, types)
}
