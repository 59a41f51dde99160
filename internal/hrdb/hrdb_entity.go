package hrdb

import (
	"time"

	"hris-console/internal/leave"
)

type leaveRecord struct {
	ID           string     `gorm:"primaryKey;type:uuid"`
	EmployeeID   string     `gorm:"type:uuid;not null"`
	LeaveType    string     `gorm:"not null"`
	Status       string     `gorm:"not null"`
	StartDate    time.Time  `gorm:"type:date;not null"`
	EndDate      *time.Time `gorm:"type:date"`
	Duration     *int
	DurationUnit string
	Reason       string
	Location     string
	SubstituteID *string `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (leaveRecord) TableName() string { return "leave_requests" }

type employeeRecord struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	FirstName string
	LastName  string
	PhotoURL  string
	Role      string
}

func (employeeRecord) TableName() string { return "employees" }

func (e employeeRecord) toEmployee() leave.Employee {
	return leave.Employee{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		PhotoURL:  e.PhotoURL,
		Role:      e.Role,
	}
}

func (r leaveRecord) toRecord(emp *employeeRecord) leave.LeaveRequest {
	out := leave.LeaveRequest{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		LeaveType:    leave.LeaveType(r.LeaveType),
		Status:       leave.ParseStatus(r.Status),
		StartDate:    leave.FormatDate(r.StartDate),
		Duration:     r.Duration,
		DurationUnit: leave.DurationUnit(r.DurationUnit),
		Reason:       r.Reason,
		Location:     r.Location,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.EndDate != nil {
		out.EndDate = leave.FormatDate(*r.EndDate)
	}
	if r.SubstituteID != nil {
		out.SubstituteID = *r.SubstituteID
	}
	if emp != nil {
		e := emp.toEmployee()
		out.Employee = &e
	}
	return out
}
