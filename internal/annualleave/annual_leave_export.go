package annualleave

import (
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Annual Leave"

var exportHeader = []any{
	"Leave Date", "Leave Name", "Branch ID", "Staff ID", "Company Wide",
	"Recurring", "Weekly", "Start Time", "End Time", "Series ID", "Series Index",
}

func writeWorkbook(entries []AnnualLeaveEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		r := mapToResponse(e)
		row := []any{
			r.LeaveDate, r.LeaveName, deref(r.BranchID), deref(r.StaffID), r.IsCompanyWide,
			r.IsRecurring, r.IsWeeklyRecurring, deref(r.StartTime), deref(r.EndTime), deref(r.SeriesID), "",
		}
		if r.SeriesIndex != nil {
			row[10] = *r.SeriesIndex
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
