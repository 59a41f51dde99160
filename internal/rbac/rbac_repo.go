package rbac

import "hris-console/internal/visibility"

// AnyRole is the policy subject matching every role.
const AnyRole = "*"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type staticRepository struct {
	rows []RolePermissionRow
}

// NewStaticRepository serves a fixed permission table.
func NewStaticRepository(rows []RolePermissionRow) Repository {
	out := make([]RolePermissionRow, len(rows))
	copy(out, rows)
	return &staticRepository{rows: out}
}

// NewRepository serves DefaultPermissions.
func NewRepository() Repository {
	return NewStaticRepository(DefaultPermissions())
}

func (r *staticRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	return r.rows, nil
}

// DefaultPermissions lets everyone read and file leave and manage their own
// attachments. Deciding requests and searching substitutes is reserved for
// the administrative roles.
func DefaultPermissions() []RolePermissionRow {
	rows := []RolePermissionRow{
		{Role: AnyRole, Resource: "leave", Action: "read"},
		{Role: AnyRole, Resource: "leave", Action: "create"},
		{Role: AnyRole, Resource: "attachment", Action: "write"},
	}
	for _, role := range visibility.AdministrativeRoles() {
		rows = append(rows, RolePermissionRow{Role: string(role), Resource: "leave", Action: "approve"})
	}
	return rows
}
