package leave

import (
	"bytes"
	"fmt"
	"time"

	leaveerrors "hris-console/internal/leave/errors"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"ID", "Employee", "Start Date", "End Date", "Duration", "Total Days", "Status", "Reason", "Location",
}

// ExportRows renders rows as an XLSX workbook and returns it with a file name
// such as "sick-leave-20250401.xlsx".
func ExportRows(rows []DisplayRow, leaveType LeaveType, now time.Time) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Leave"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", leaveerrors.ErrExportFailed.WithErr(err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range exportHeaders {
		c := cell(i+1, 1)
		_ = f.SetCellValue(sheet, c, h)
		_ = f.SetCellStyle(sheet, c, c, headerStyle)
	}
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "F", 14)
	_ = f.SetColWidth(sheet, "H", "H", 40)

	for i, r := range rows {
		line := i + 2
		values := []any{
			r.ID, r.EmployeeName, r.StartDate, r.EndDate, r.DurationLabel, r.TotalDays, r.Status, r.Reason, r.Location,
		}
		for j, v := range values {
			_ = f.SetCellValue(sheet, cell(j+1, line), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", leaveerrors.ErrExportFailed.WithErr(err)
	}
	name := fmt.Sprintf("%s-leave-%s.xlsx", leaveType.Slug(), now.Format("20060102"))
	return buf, name, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
