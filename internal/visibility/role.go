// Package visibility decides which leave records an actor may see on screen.
// It is a presentation filter; authorization is enforced by the HR API.
package visibility

import "strings"

type Role string

const (
	RoleWorker          Role = "worker"
	RoleAdmin           Role = "admin"
	RoleSuperAdmin      Role = "super_admin"
	RoleHRAdmin         Role = "hr_admin"
	RoleHOD             Role = "hod"
	RolePastor          Role = "pastor"
	RoleSeniorPastor    Role = "senior_pastor"
	RoleAssistantPastor Role = "assistant_pastor"
	RoleUnknown         Role = ""
)

var aliases = map[string]Role{
	"worker":             RoleWorker,
	"employee":           RoleWorker,
	"staff":              RoleWorker,
	"admin":              RoleAdmin,
	"administrator":      RoleAdmin,
	"super_admin":        RoleSuperAdmin,
	"superadmin":         RoleSuperAdmin,
	"hr_admin":           RoleHRAdmin,
	"hradmin":            RoleHRAdmin,
	"hod":                RoleHOD,
	"head_of_department": RoleHOD,
	"pastor":             RolePastor,
	"senior_pastor":      RoleSeniorPastor,
	"seniorpastor":       RoleSeniorPastor,
	"assistant_pastor":   RoleAssistantPastor,
	"assistantpastor":    RoleAssistantPastor,
}

var administrative = map[Role]bool{
	RoleAdmin:           true,
	RoleSuperAdmin:      true,
	RoleHRAdmin:         true,
	RoleHOD:             true,
	RolePastor:          true,
	RoleSeniorPastor:    true,
	RoleAssistantPastor: true,
}

// ParseRole normalizes a role string from a token or API payload. Case,
// surrounding space, and "-" or " " separators are ignored. Unrecognised
// roles map to RoleUnknown, which is treated as self-service.
func ParseRole(s string) Role {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if r, ok := aliases[key]; ok {
		return r
	}
	return RoleUnknown
}

// IsAdministrative is the only role predicate in the codebase.
func IsAdministrative(r Role) bool {
	return administrative[r]
}

// AdministrativeRoles lists every administrative role in a stable order.
func AdministrativeRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleSuperAdmin,
		RoleHRAdmin,
		RoleHOD,
		RolePastor,
		RoleSeniorPastor,
		RoleAssistantPastor,
	}
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}
