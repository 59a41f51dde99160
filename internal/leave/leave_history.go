package leave

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const historyLimit = 5

type LeaveHistoryEntry struct {
	DateRangeLabel string `json:"date_range_label"`
	Status         string `json:"status"`
	DurationLabel  string `json:"duration_label"`
}

// DeriveHistory returns up to five approved records, latest start first.
// It works on a copy and keeps no state between calls.
func DeriveHistory(records []NormalizedLeave) []LeaveHistoryEntry {
	approved := make([]NormalizedLeave, 0, len(records))
	for _, r := range records {
		if r.Status == StatusApproved {
			approved = append(approved, r)
		}
	}

	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].Start.After(approved[j].Start)
	})

	if len(approved) > historyLimit {
		approved = approved[:historyLimit]
	}

	out := make([]LeaveHistoryEntry, len(approved))
	for i, r := range approved {
		out[i] = LeaveHistoryEntry{
			DateRangeLabel: dateRangeLabel(r),
			Status:         statusLabel(r.Status),
			DurationLabel:  durationLabel(r),
		}
	}
	return out
}

func dateRangeLabel(r NormalizedLeave) string {
	start := displayDate(r.Start, r.StartDate)
	if strings.TrimSpace(r.EndDate) != "" {
		end := r.EndDate
		if t, err := ParseDate(r.EndDate); err == nil {
			end = FormatDate(t)
		}
		return start + " - " + end
	}
	n, unit := recordDuration(r)
	return fmt.Sprintf("%s (%d %s)", start, n, unitLabel(unit))
}

func displayDate(t time.Time, raw string) string {
	if t.IsZero() {
		return raw
	}
	return FormatDate(t)
}
