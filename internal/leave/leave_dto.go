package leave

// CreateLeaveRequest is the body of POST /leaves/:type. Which of EndDate or
// Duration/DurationUnit/Location is required depends on the path type and is
// checked by ValidateCreate.
type CreateLeaveRequest struct {
	EmployeeID     string   `json:"employee_id"`
	StartDate      string   `json:"start_date" binding:"required"`
	EndDate        string   `json:"end_date"`
	Duration       int      `json:"duration" binding:"omitempty,gt=0"`
	DurationUnit   string   `json:"duration_unit" binding:"omitempty,oneof=DAYS WEEKS MONTHS YEARS days weeks months years"`
	Reason         string   `json:"reason" binding:"required"`
	Location       string   `json:"location"`
	AttachmentURLs []string `json:"attachment_urls" binding:"omitempty,dive,url"`
}

func (r CreateLeaveRequest) Payload(leaveType LeaveType) CreatePayload {
	return CreatePayload{
		LeaveType:      leaveType,
		EmployeeID:     r.EmployeeID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Duration:       r.Duration,
		DurationUnit:   DurationUnit(r.DurationUnit),
		Reason:         r.Reason,
		Location:       r.Location,
		AttachmentURLs: r.AttachmentURLs,
	}
}

// ApproveLeaveRequest carries the operator's answer to the confirmation
// prompt. Substitute is mandatory for annual leave.
type ApproveLeaveRequest struct {
	Substitute *Substitute `json:"substitute"`
	Confirm    bool        `json:"confirm"`
}

type RejectLeaveRequest struct {
	Confirm bool `json:"confirm"`
}

type ListLeavesFilterRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected PENDING APPROVED REJECTED"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type SearchEmployeesRequest struct {
	Name string `form:"name"`
}
