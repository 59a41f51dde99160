package leave_test

import (
	"testing"
	"time"

	"hris-console/internal/leave"

	"github.com/stretchr/testify/assert"
)

func newTransformer() leave.Transformer {
	return leave.NewTransformer(
		leave.ImageResolver{BaseOrigin: "https://api.example.com", Placeholder: "https://cdn.example.com/avatar.png"},
		leave.NewCalculator(nil, leave.PeriodAllTime),
	)
}

func TestImageResolver_Resolve(t *testing.T) {
	r := leave.ImageResolver{BaseOrigin: "https://api.example.com/", Placeholder: "placeholder.png"}

	tests := []struct {
		name   string
		raw    string
		cached string
		want   string
	}{
		{name: "relative path joined to origin", raw: "/uploads/a.png", want: "https://api.example.com/uploads/a.png"},
		{name: "relative without slash", raw: "uploads/a.png", want: "https://api.example.com/uploads/a.png"},
		{name: "absolute passes through", raw: "https://cdn.example.com/b.png", want: "https://cdn.example.com/b.png"},
		{name: "cached used when raw empty", cached: "/uploads/c.png", want: "https://api.example.com/uploads/c.png"},
		{name: "raw wins over cached", raw: "http://x.test/d.png", cached: "/uploads/c.png", want: "http://x.test/d.png"},
		{name: "placeholder when nothing known", raw: "  ", want: "placeholder.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.raw, tt.cached))
		})
	}
}

func TestTransformer_ToTableRow(t *testing.T) {
	tr := newTransformer()

	t.Run("absence row", func(t *testing.T) {
		n := leave.Ingest(leave.LeaveRequest{
			ID:           "9",
			Employee:     &leave.Employee{ID: "42", FirstName: "Ada", LastName: "Obi", PhotoURL: "/uploads/a.png"},
			LeaveType:    leave.TypeAbsence,
			Status:       leave.StatusPending,
			StartDate:    "2025-04-01",
			Duration:     intPtr(2),
			DurationUnit: leave.UnitWeeks,
			Reason:       "Conference",
			Location:     "Lagos",
		})
		row := tr.ToTableRow(n, "")
		assert.Equal(t, leave.DisplayRow{
			ID:            "9",
			EmployeeID:    "42",
			EmployeeName:  "Ada Obi",
			PhotoURL:      "https://api.example.com/uploads/a.png",
			LeaveType:     leave.TypeAbsence,
			StartDate:     "2025-04-01",
			EndDate:       "2025-04-14",
			DurationLabel: "2 weeks",
			TotalDays:     14,
			Status:        "Pending",
			Reason:        "Conference",
			Location:      "Lagos",
		}, row)
	})

	t.Run("cached photo used as fallback", func(t *testing.T) {
		n := leave.Ingest(leave.LeaveRequest{ID: "1", EmployeeID: "7", LeaveType: leave.TypeSick, StartDate: "2025-04-01"})
		row := tr.ToTableRow(n, "/uploads/seven.png")
		assert.Equal(t, "https://api.example.com/uploads/seven.png", row.PhotoURL)
		assert.Equal(t, "0 days", row.DurationLabel)
		assert.Equal(t, 0, row.TotalDays)
	})

	t.Run("idempotent", func(t *testing.T) {
		n := annual("1", "APPROVED", "2025-01-01", "2025-01-03")
		assert.Equal(t, tr.ToTableRow(n, ""), tr.ToTableRow(n, ""))
	})
}

func TestTransformer_ToTableRows(t *testing.T) {
	tr := newTransformer()
	records := leave.IngestAll([]leave.LeaveRequest{
		{ID: "1", EmployeeID: "42", LeaveType: leave.TypeAnnual, StartDate: "2025-01-01", EndDate: "2025-01-02"},
		{ID: "2", EmployeeID: "7", LeaveType: leave.TypeAnnual, StartDate: "2025-02-01", EndDate: "2025-02-02"},
	})
	rows := tr.ToTableRows(records, map[string]string{"7": "https://cdn.example.com/7.png"})
	assert.Len(t, rows, 2)
	assert.Equal(t, "https://cdn.example.com/avatar.png", rows[0].PhotoURL)
	assert.Equal(t, "https://cdn.example.com/7.png", rows[1].PhotoURL)
}

func TestTransformer_ToDetailView(t *testing.T) {
	tr := newTransformer()
	created := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	current := leave.Ingest(leave.LeaveRequest{
		ID:             "3",
		Employee:       &leave.Employee{ID: "42", FirstName: "Ada", LastName: "Obi"},
		LeaveType:      leave.TypeAnnual,
		Status:         leave.StatusPending,
		StartDate:      "2025-03-03",
		EndDate:        "2025-03-07",
		AttachmentURLs: []string{"https://files.example.com/a.pdf"},
		CreatedAt:      created,
	})
	all := []leave.NormalizedLeave{
		current,
		annual("1", "APPROVED", "2025-01-06", "2025-01-15"),
		annual("2", "PENDING", "2025-02-03", "2025-02-07"),
		leave.Ingest(leave.LeaveRequest{ID: "x", EmployeeID: "7", LeaveType: leave.TypeAnnual, Status: leave.StatusApproved, StartDate: "2025-01-01", EndDate: "2025-01-20"}),
	}

	vm := tr.ToDetailView(current, all, "")
	assert.Equal(t, "42", vm.Employee.ID)
	assert.Equal(t, "Ada Obi", vm.Employee.Name)
	assert.Equal(t, "Pending", vm.Status)
	assert.Equal(t, 5, vm.CurrentLeaveDuration)
	assert.Equal(t, "days", vm.CurrentLeaveDurationUnit)
	assert.Equal(t, leave.LeaveBalance{TotalAllowance: 30, UsedDays: 10, RemainingDays: 20}, vm.Balance)
	assert.Len(t, vm.History, 1)
	assert.Equal(t, "2025-01-06 - 2025-01-15", vm.History[0].DateRangeLabel)
	assert.Equal(t, []string{"https://files.example.com/a.pdf"}, vm.AttachmentURLs)
	if assert.NotNil(t, vm.CreatedAt) {
		assert.True(t, vm.CreatedAt.Equal(created))
	}
	assert.Nil(t, vm.UpdatedAt)

	assert.Equal(t, vm, tr.ToDetailView(current, all, ""))
}
