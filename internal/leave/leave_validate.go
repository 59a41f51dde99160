package leave

import (
	"strings"

	leaveerrors "hris-console/internal/leave/errors"
)

// ValidateCreate checks a payload before any network call is made.
func ValidateCreate(p CreatePayload) error {
	leaveType, err := ParseLeaveType(string(p.LeaveType))
	if err != nil {
		return err
	}
	if strings.TrimSpace(p.StartDate) == "" {
		return leaveerrors.ErrStartDateRequired
	}
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return leaveerrors.ErrInvalidStartDate
	}
	if strings.TrimSpace(p.Reason) == "" {
		return leaveerrors.ErrReasonRequired
	}

	if leaveType.UsesEndDate() {
		if strings.TrimSpace(p.EndDate) == "" {
			return leaveerrors.ErrEndDateRequired
		}
		end, err := ParseDate(p.EndDate)
		if err != nil {
			return leaveerrors.ErrInvalidEndDate
		}
		if end.Before(start) {
			return leaveerrors.ErrInvalidDateRange
		}
		return nil
	}

	if p.Duration <= 0 {
		return leaveerrors.ErrDurationRequired
	}
	unit, ok := ParseUnit(string(p.DurationUnit))
	if !ok {
		return leaveerrors.ErrInvalidDurationUnit
	}
	if _, err := Normalize(start, p.Duration, unit); err != nil {
		return leaveerrors.ErrDurationTooLong
	}
	if strings.TrimSpace(p.Location) == "" {
		return leaveerrors.ErrLocationRequired
	}
	return nil
}

// normalizePayload keeps only the fields meaningful for the payload's type.
func normalizePayload(p CreatePayload) CreatePayload {
	p.Reason = strings.TrimSpace(p.Reason)
	p.Location = strings.TrimSpace(p.Location)
	if p.LeaveType.UsesEndDate() {
		p.Duration = 0
		p.DurationUnit = ""
		p.Location = ""
		p.AttachmentURLs = nil
		return p
	}
	p.EndDate = ""
	p.DurationUnit, _ = ParseUnit(string(p.DurationUnit))
	return p
}
