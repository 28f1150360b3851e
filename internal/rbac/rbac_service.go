package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	ResourceDashboard = "dashboard"
	ResourceLeave     = "leave"

	ActionView    = "view"
	ActionExport  = "export"
	ActionApply   = "apply"
	ActionReadOwn = "read_own"
	ActionReadAll = "read_all"
	ActionProcess = "process"
)

// memberGroup is inherited by every dashboard role.
const memberGroup = "member"

// Policy is one allow rule: role may perform action on resource.
type Policy struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicies mirror the dashboards: employees apply and track their own
// requests, HR processes the queue, admin only watches.
var DefaultPolicies = []Policy{
	{Role: memberGroup, Resource: ResourceDashboard, Action: ActionView},
	{Role: memberGroup, Resource: ResourceDashboard, Action: ActionExport},
	{Role: "employee", Resource: ResourceLeave, Action: ActionApply},
	{Role: "employee", Resource: ResourceLeave, Action: ActionReadOwn},
	{Role: "hr", Resource: ResourceLeave, Action: ActionReadAll},
	{Role: "hr", Resource: ResourceLeave, Action: ActionProcess},
	{Role: "admin", Resource: ResourceLeave, Action: ActionReadAll},
}

var dashboardRoles = []string{"admin", "hr", "employee"}

type Service interface {
	Allowed(role, resource, action string) (bool, error)
	Capabilities(role string) ([]string, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads policies into enforcer. Every dashboard role joins the
// member group.
func NewService(enforcer *casbin.Enforcer, policies []Policy, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	enforcer.ClearPolicy()
	for _, role := range dashboardRoles {
		if _, err := enforcer.AddGroupingPolicy(role, memberGroup); err != nil {
			return nil, err
		}
	}
	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return nil, err
		}
	}
	l.Debug("capability policy loaded", zap.Int("policies", len(policies)))

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Allowed(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("capability check failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}
	return allowed, nil
}

// Capabilities lists "resource:action" pairs the role may use, including
// inherited ones.
func (s *service) Capabilities(role string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		out = append(out, p[1]+":"+p[2])
	}
	return out, nil
}
