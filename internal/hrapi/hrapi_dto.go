package hrapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"hris-console/internal/leave"
)

// flexID accepts ids sent either as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// flexInt accepts a duration sent either as a number or a numeric string.
type flexInt struct {
	value *int
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		f.value = nil
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Unparseable durations are kept absent; ingestion treats them as 0.
		f.value = nil
		return nil
	}
	f.value = &n
	return nil
}

type employeeDTO struct {
	ID        flexID `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
	Photo     string `json:"photo"`
	Role      string `json:"role"`
}

func (e employeeDTO) toEmployee() leave.Employee {
	photo := e.PhotoURL
	if photo == "" {
		photo = e.Photo
	}
	return leave.Employee{
		ID:        string(e.ID),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		PhotoURL:  photo,
		Role:      e.Role,
	}
}

type leaveDTO struct {
	ID           flexID       `json:"id"`
	EmployeeID   flexID       `json:"employee_id"`
	Employee     *employeeDTO `json:"employee"`
	LeaveType    string       `json:"leave_type"`
	Status       string       `json:"status"`
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	Duration     flexInt      `json:"duration"`
	DurationUnit string       `json:"duration_unit"`
	Reason       string       `json:"reason"`
	Location     string       `json:"location"`
	Attachments  []string     `json:"attachments"`
	SubstituteID flexID       `json:"substitute_id"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

// toRecord maps the wire record. leaveType is the resource it was read from
// and wins when the record omits or misstates its own type.
func (d leaveDTO) toRecord(leaveType leave.LeaveType) leave.LeaveRequest {
	r := leave.LeaveRequest{
		ID:             string(d.ID),
		EmployeeID:     string(d.EmployeeID),
		LeaveType:      leaveType,
		Status:         leave.ParseStatus(d.Status),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Duration:       d.Duration.value,
		DurationUnit:   leave.DurationUnit(d.DurationUnit),
		Reason:         d.Reason,
		Location:       d.Location,
		AttachmentURLs: d.Attachments,
		SubstituteID:   string(d.SubstituteID),
	}
	if unit, ok := leave.ParseUnit(d.DurationUnit); ok {
		r.DurationUnit = unit
	}
	if d.Employee != nil {
		emp := d.Employee.toEmployee()
		r.Employee = &emp
	}
	r.CreatedAt = parseTimestamp(d.CreatedAt)
	r.UpdatedAt = parseTimestamp(d.UpdatedAt)
	return r
}

// parseTimestamp returns the zero time for missing or unparseable values.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02 15:04:05", s)
	return t
}

type createAnnualBody struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

type createDurationBody struct {
	EmployeeID   string   `json:"employee_id"`
	StartDate    string   `json:"start_date"`
	Duration     int      `json:"duration"`
	DurationUnit string   `json:"duration_unit"`
	Reason       string   `json:"reason"`
	Location     string   `json:"location"`
	Attachments  []string `json:"attachments,omitempty"`
}

func createBody(leaveType leave.LeaveType, p leave.CreatePayload) any {
	if leaveType.UsesEndDate() {
		return createAnnualBody{
			EmployeeID: p.EmployeeID,
			StartDate:  p.StartDate,
			EndDate:    p.EndDate,
			Reason:     p.Reason,
		}
	}
	return createDurationBody{
		EmployeeID:   p.EmployeeID,
		StartDate:    p.StartDate,
		Duration:     p.Duration,
		DurationUnit: string(p.DurationUnit),
		Reason:       p.Reason,
		Location:     p.Location,
		Attachments:  p.AttachmentURLs,
	}
}

type approveBody struct {
	SubstituteID string `json:"substitute_id,omitempty"`
}

type uploadDTO struct {
	URL string `json:"url"`
}
