package leave

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayRow is one line of a leave table.
type DisplayRow struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	PhotoURL      string    `json:"photo_url"`
	LeaveType     LeaveType `json:"leave_type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DurationLabel string    `json:"duration"`
	TotalDays     int       `json:"total_days"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason"`
	Location      string    `json:"location,omitempty"`
}

type EmployeeView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// DetailViewModel is the detail screen of a single request together with the
// employee's balance and recent history for the same leave type.
type DetailViewModel struct {
	ID                       string              `json:"id"`
	Employee                 EmployeeView        `json:"employee"`
	LeaveType                LeaveType           `json:"leave_type"`
	Status                   string              `json:"status"`
	StartDate                string              `json:"start_date"`
	EndDate                  string              `json:"end_date"`
	Reason                   string              `json:"reason"`
	Location                 string              `json:"location,omitempty"`
	AttachmentURLs           []string            `json:"attachment_urls"`
	SubstituteID             string              `json:"substitute_id,omitempty"`
	CurrentLeaveDuration     int                 `json:"current_leave_duration"`
	CurrentLeaveDurationUnit string              `json:"current_leave_duration_unit"`
	Balance                  LeaveBalance        `json:"balance"`
	History                  []LeaveHistoryEntry `json:"history"`
	CreatedAt                *time.Time          `json:"created_at,omitempty"`
	UpdatedAt                *time.Time          `json:"updated_at,omitempty"`
}

// Transformer projects normalized records into display models. It holds
// configuration only; every method is a pure function of its arguments.
type Transformer struct {
	Images     ImageResolver
	Calculator Calculator
}

func NewTransformer(images ImageResolver, calc Calculator) Transformer {
	return Transformer{Images: images, Calculator: calc}
}

func (t Transformer) ToTableRow(r NormalizedLeave, cachedPhoto string) DisplayRow {
	emp := employeeOf(r.LeaveRequest)
	return DisplayRow{
		ID:            r.ID,
		EmployeeID:    r.OwnerID(),
		EmployeeName:  emp.FullName(),
		PhotoURL:      t.Images.Resolve(emp.PhotoURL, cachedPhoto),
		LeaveType:     r.LeaveType,
		StartDate:     displayDate(r.Start, r.StartDate),
		EndDate:       endDateOf(r),
		DurationLabel: durationLabel(r),
		TotalDays:     r.Days,
		Status:        statusLabel(r.Status),
		Reason:        r.Reason,
		Location:      r.Location,
	}
}

func (t Transformer) ToTableRows(records []NormalizedLeave, cachedPhotos map[string]string) []DisplayRow {
	rows := make([]DisplayRow, len(records))
	for i, r := range records {
		rows[i] = t.ToTableRow(r, cachedPhotos[r.OwnerID()])
	}
	return rows
}

// ToDetailView builds the detail model. allForEmployee may contain other
// employees or types; only the owner's records of the same type are used for
// balance and history.
func (t Transformer) ToDetailView(r NormalizedLeave, allForEmployee []NormalizedLeave, cachedPhoto string) DetailViewModel {
	owner := r.OwnerID()
	same := make([]NormalizedLeave, 0, len(allForEmployee))
	for _, o := range allForEmployee {
		if o.OwnerID() == owner && o.LeaveType == r.LeaveType {
			same = append(same, o)
		}
	}

	emp := employeeOf(r.LeaveRequest)
	n, unit := recordDuration(r)

	attachments := make([]string, len(r.AttachmentURLs))
	copy(attachments, r.AttachmentURLs)

	vm := DetailViewModel{
		ID: r.ID,
		Employee: EmployeeView{
			ID:       owner,
			Name:     emp.FullName(),
			PhotoURL: t.Images.Resolve(emp.PhotoURL, cachedPhoto),
		},
		LeaveType:                r.LeaveType,
		Status:                   statusLabel(r.Status),
		StartDate:                displayDate(r.Start, r.StartDate),
		EndDate:                  endDateOf(r),
		Reason:                   r.Reason,
		Location:                 r.Location,
		AttachmentURLs:           attachments,
		SubstituteID:             r.SubstituteID,
		CurrentLeaveDuration:     n,
		CurrentLeaveDurationUnit: unitLabel(unit),
		Balance:                  t.Calculator.ComputeBalance(r.LeaveType, same),
		History:                  DeriveHistory(same),
	}
	if !r.CreatedAt.IsZero() {
		createdAt := r.CreatedAt
		vm.CreatedAt = &createdAt
	}
	if !r.UpdatedAt.IsZero() {
		updatedAt := r.UpdatedAt
		vm.UpdatedAt = &updatedAt
	}
	return vm
}

func employeeOf(r LeaveRequest) Employee {
	if r.Employee != nil {
		return *r.Employee
	}
	return Employee{ID: r.EmployeeID}
}

func endDateOf(r NormalizedLeave) string {
	if !r.End.IsZero() {
		return FormatDate(r.End)
	}
	return r.EndDate
}

// recordDuration is the duration as the requester expressed it: the raw
// value and unit for duration-based types, whole days for annual leave.
func recordDuration(r NormalizedLeave) (int, DurationUnit) {
	if !r.Computable {
		return 0, UnitDays
	}
	if !r.LeaveType.UsesEndDate() && r.Duration != nil {
		return *r.Duration, r.DurationUnit
	}
	return r.Days, UnitDays
}

func durationLabel(r NormalizedLeave) string {
	n, unit := recordDuration(r)
	return fmt.Sprintf("%d %s", n, unitLabel(unit))
}

func unitLabel(u DurationUnit) string {
	return strings.ToLower(string(u))
}

func statusLabel(s Status) string {
	return cases.Title(language.English).String(strings.ToLower(string(s)))
}
