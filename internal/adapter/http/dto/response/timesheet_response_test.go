package response

import (
	"testing"
	"time"

	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/domain/timesheet"
	"pestpro_ops/internal/usecase"
)

func TestFromTimesheetReport(t *testing.T) {
	on := func(hour, min int) time.Time {
		return time.Date(2025, 3, 3, hour, min, 0, 0, time.UTC)
	}
	report := usecase.TimesheetReport{
		EmployeeID: "emp-1",
		Days: []usecase.TimesheetDay{{
			Date:  "2025-03-03",
			Shift: entities.Shift{ID: "shift-1", EmployeeID: "emp-1", ShiftDate: "2025-03-03", BreakMinutes: 30},
			Segments: []timesheet.Segment{
				{Kind: timesheet.KindWork, Start: on(9, 0), End: on(12, 0)},
				{Kind: timesheet.KindBreak, Start: on(12, 0), End: on(12, 30)},
				{Kind: timesheet.KindWork, Start: on(12, 30), End: on(17, 0)},
			},
			Totals: timesheet.Totals{Work: 450, Break: 30},
		}},
		Totals: timesheet.Totals{Work: 450, Break: 30},
	}

	res := FromTimesheetReport(report)
	if res.EmployeeID != "emp-1" || len(res.Days) != 1 {
		t.Fatalf("unexpected report: %+v", res)
	}
	day := res.Days[0]
	if day.Date != "2025-03-03" || day.Shift.ID != "shift-1" {
		t.Fatalf("unexpected day: %+v", day)
	}
	if len(day.Segments) != 3 {
		t.Fatalf("unexpected segments: %+v", day.Segments)
	}
	if day.Segments[0].Minutes != 180 || day.Segments[1].Minutes != 30 || day.Segments[2].Minutes != 270 {
		t.Fatalf("unexpected segment minutes: %+v", day.Segments)
	}
	if day.Segments[1].Kind != "break" {
		t.Fatalf("unexpected segment kind: %+v", day.Segments[1])
	}
	if day.Totals != (TotalsResponse{Work: 450, Break: 30}) || res.Totals != (TotalsResponse{Work: 450, Break: 30}) {
		t.Fatalf("unexpected totals: %+v / %+v", day.Totals, res.Totals)
	}
}

func TestFromTimesheetReport_Empty(t *testing.T) {
	res := FromTimesheetReport(usecase.TimesheetReport{EmployeeID: "emp-1"})
	if res.EmployeeID != "emp-1" {
		t.Fatalf("unexpected report: %+v", res)
	}
	if res.Days == nil || len(res.Days) != 0 {
		t.Fatalf("days should serialize as an empty list, got %#v", res.Days)
	}
}
