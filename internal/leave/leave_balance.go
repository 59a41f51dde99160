package leave

import "time"

// BalancePeriod decides which approved records count against an allowance.
type BalancePeriod string

const (
	// PeriodAllTime sums every approved record ever taken.
	PeriodAllTime BalancePeriod = "all_time"
	// PeriodCalendarYear only counts records starting in the reference year.
	PeriodCalendarYear BalancePeriod = "calendar_year"
)

type LeaveBalance struct {
	TotalAllowance int `json:"total_allowance"`
	UsedDays       int `json:"used_days"`
	RemainingDays  int `json:"remaining_days"`
}

// Allowances holds the per-type day quota.
type Allowances map[LeaveType]int

func DefaultAllowances() Allowances {
	return Allowances{
		TypeAnnual:  30,
		TypeAbsence: 90,
		TypeSick:    30,
	}
}

// Calculator computes balances. Clock supplies the reference date for
// PeriodCalendarYear and is ignored for PeriodAllTime.
type Calculator struct {
	Allowances Allowances
	Period     BalancePeriod
	Clock      func() time.Time
}

func NewCalculator(allowances Allowances, period BalancePeriod) Calculator {
	if allowances == nil {
		allowances = DefaultAllowances()
	}
	if period == "" {
		period = PeriodAllTime
	}
	return Calculator{Allowances: allowances, Period: period, Clock: time.Now}
}

// ComputeBalance sums Days over the approved records of leaveType. Pending
// and rejected records contribute nothing, and the remaining figure never
// drops below zero.
func (c Calculator) ComputeBalance(leaveType LeaveType, records []NormalizedLeave) LeaveBalance {
	allowance := c.Allowances[leaveType]

	inPeriod := func(NormalizedLeave) bool { return true }
	if c.Period == PeriodCalendarYear {
		year := c.now().Year()
		inPeriod = func(r NormalizedLeave) bool {
			return !r.Start.IsZero() && r.Start.Year() == year
		}
	}

	used := 0
	for _, r := range records {
		if r.LeaveType != leaveType || r.Status != StatusApproved || !inPeriod(r) {
			continue
		}
		used += r.Days
	}

	return LeaveBalance{
		TotalAllowance: allowance,
		UsedDays:       used,
		RemainingDays:  max(0, allowance-used),
	}
}

func (c Calculator) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}
