// Package persona holds the fixed demo identities behind each role dashboard.
// There is no authentication: a dashboard route acts as its persona.
package persona

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

type Persona struct {
	Role  Role   `json:"role"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

var personas = map[Role]Persona{
	RoleAdmin:    {Role: RoleAdmin, ID: "admin-1", Name: "John Admin", Title: "Admin"},
	RoleHR:       {Role: RoleHR, ID: "hr-1", Name: "Emily HR", Title: "HR Manager"},
	RoleEmployee: {Role: RoleEmployee, ID: "current-user-id", Name: "Alex Employee", Title: "Software Engineer"},
}

// Lookup resolves a dashboard path segment such as "hr".
func Lookup(role string) (Persona, bool) {
	p, ok := personas[Role(role)]
	return p, ok
}

// Roles lists the dashboards in menu order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleHR, RoleEmployee}
}
