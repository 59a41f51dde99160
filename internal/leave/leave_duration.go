package leave

import (
	"strings"
	"time"

	leaveerrors "hris-console/internal/leave/errors"
)

const dateLayout = "2006-01-02"

// Day multipliers are approximations: a month is 30 days and a year 365.
var unitDays = map[DurationUnit]int{
	UnitDays:   1,
	UnitWeeks:  7,
	UnitMonths: 30,
	UnitYears:  365,
}

// MaxLeaveDays bounds a single request. Longer durations are rejected
// before the day count is multiplied out.
const MaxLeaveDays = 3650

// Span is a normalized leave period. The start date counts as day one, so
// End is Start plus Days-1.
type Span struct {
	Days int
	End  time.Time
}

// ParseUnit accepts the unit in any case.
func ParseUnit(s string) (DurationUnit, bool) {
	u := DurationUnit(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := unitDays[u]
	return u, ok
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp, whose UTC calendar
// date is used.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDuration
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Normalize converts a duration into a day count and end date.
func Normalize(start time.Time, duration int, unit DurationUnit) (Span, error) {
	mult, ok := unitDays[unit]
	if !ok || duration <= 0 || duration > MaxLeaveDays/mult || start.IsZero() {
		return Span{}, leaveerrors.ErrInvalidDuration
	}
	days := duration * mult
	return Span{Days: days, End: start.AddDate(0, 0, days-1)}, nil
}

// SpanBetween is the inverse used for annual leave, inclusive of both ends.
func SpanBetween(start, end time.Time) (Span, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return Span{}, leaveerrors.ErrInvalidDuration
	}
	days := daysBetween(start, end) + 1
	return Span{Days: days, End: end}, nil
}

// daysBetween counts calendar days, immune to DST shifts in local zones.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// NormalizedLeave is a record with its dates parsed and its length expressed
// in days. Computable is false when the record has no usable duration; Days
// is then 0 and End is zero.
type NormalizedLeave struct {
	LeaveRequest
	Start      time.Time
	End        time.Time
	Days       int
	Computable bool
}

// Ingest normalizes one raw record. It never fails: records whose duration
// cannot be computed are kept with a neutral 0.
func Ingest(r LeaveRequest) NormalizedLeave {
	n := NormalizedLeave{LeaveRequest: r}

	start, err := ParseDate(r.StartDate)
	if err != nil {
		return n
	}
	n.Start = start

	var span Span
	if r.LeaveType.UsesEndDate() {
		end, perr := ParseDate(r.EndDate)
		if perr != nil {
			return n
		}
		span, err = SpanBetween(start, end)
	} else {
		if r.Duration == nil {
			return n
		}
		span, err = Normalize(start, *r.Duration, r.DurationUnit)
	}
	if err != nil {
		return n
	}

	n.End = span.End
	n.Days = span.Days
	n.Computable = true
	return n
}

func IngestAll(records []LeaveRequest) []NormalizedLeave {
	out := make([]NormalizedLeave, len(records))
	for i, r := range records {
		out[i] = Ingest(r)
	}
	return out
}
