package visibility

// Owned is implemented by records that belong to one employee.
type Owned interface {
	OwnerID() string
}

// FilterForActor returns records unchanged for administrative roles and
// otherwise only the records owned by employeeID. The input is not modified.
func FilterForActor[T Owned](records []T, role Role, employeeID string) []T {
	if IsAdministrative(role) {
		return records
	}

	out := make([]T, 0, len(records))
	if employeeID == "" {
		return out
	}
	for _, r := range records {
		if r.OwnerID() == employeeID {
			out = append(out, r)
		}
	}
	return out
}
