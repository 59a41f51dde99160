package leave

import (
	"strings"
	"time"

	leaveerrors "hris-console/internal/leave/errors"
)

type LeaveType string

const (
	TypeAnnual  LeaveType = "ANNUAL"
	TypeAbsence LeaveType = "ABSENCE"
	TypeSick    LeaveType = "SICK"
)

// ParseLeaveType accepts the enum value or its lower-case path form
// ("annual", "absence", "sick").
func ParseLeaveType(s string) (LeaveType, error) {
	switch LeaveType(strings.ToUpper(strings.TrimSpace(s))) {
	case TypeAnnual:
		return TypeAnnual, nil
	case TypeAbsence:
		return TypeAbsence, nil
	case TypeSick:
		return TypeSick, nil
	}
	return "", leaveerrors.ErrInvalidLeaveType
}

// UsesEndDate reports whether the type is submitted with an explicit end
// date rather than a duration.
func (t LeaveType) UsesEndDate() bool {
	return t == TypeAnnual
}

// RequiresSubstitute reports whether approval is gated on choosing a substitute.
func (t LeaveType) RequiresSubstitute() bool {
	return t == TypeAnnual
}

// Slug is the lower-case form used in URLs and file names.
func (t LeaveType) Slug() string {
	return strings.ToLower(string(t))
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ParseStatus normalizes a status as stores and labels spell it ("approved",
// "Approved", " APPROVED ").
func ParseStatus(s string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(s)))
}

type DurationUnit string

const (
	UnitDays   DurationUnit = "DAYS"
	UnitWeeks  DurationUnit = "WEEKS"
	UnitMonths DurationUnit = "MONTHS"
	UnitYears  DurationUnit = "YEARS"
)

type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// LeaveRequest is a record as returned by the HR store. Dates are kept as the
// raw strings the store sent; they are parsed during ingestion.
type LeaveRequest struct {
	ID             string
	EmployeeID     string
	Employee       *Employee
	LeaveType      LeaveType
	Status         Status
	StartDate      string
	EndDate        string
	Duration       *int
	DurationUnit   DurationUnit
	Reason         string
	Location       string
	AttachmentURLs []string
	SubstituteID   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OwnerID prefers the nested employee id, as the store does.
func (r LeaveRequest) OwnerID() string {
	if r.Employee != nil && r.Employee.ID != "" {
		return r.Employee.ID
	}
	return r.EmployeeID
}

// Substitute is the employee covering duties during approved annual leave.
type Substitute struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Name       string `json:"name"`
}

type Attachment struct {
	URL string `json:"url"`
}

// CreatePayload carries a new leave request. Annual requests use EndDate;
// absence and sick requests use Duration, DurationUnit and Location.
type CreatePayload struct {
	LeaveType      LeaveType
	EmployeeID     string
	StartDate      string
	EndDate        string
	Duration       int
	DurationUnit   DurationUnit
	Reason         string
	Location       string
	AttachmentURLs []string
}
