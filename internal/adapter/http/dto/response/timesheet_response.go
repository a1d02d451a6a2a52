package response

import (
	"time"

	"pestpro_ops/internal/domain/timesheet"
	"pestpro_ops/internal/usecase"
)

type SegmentResponse struct {
	Kind    string    `json:"kind"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Minutes int       `json:"minutes"`
}

type TotalsResponse struct {
	Work   int `json:"work"`
	Break  int `json:"break"`
	Travel int `json:"travel"`
}

type TimesheetDayResponse struct {
	Date     string            `json:"date"`
	Shift    ShiftResponse     `json:"shift"`
	Segments []SegmentResponse `json:"segments"`
	Totals   TotalsResponse    `json:"totals"`
}

type TimesheetResponse struct {
	EmployeeID string                 `json:"employee_id"`
	Days       []TimesheetDayResponse `json:"days"`
	Totals     TotalsResponse         `json:"totals"`
}

func FromTimesheetReport(r usecase.TimesheetReport) TimesheetResponse {
	res := TimesheetResponse{
		EmployeeID: r.EmployeeID,
		Days:       make([]TimesheetDayResponse, 0, len(r.Days)),
		Totals:     fromTotals(r.Totals),
	}
	for _, day := range r.Days {
		segments := make([]SegmentResponse, 0, len(day.Segments))
		for _, seg := range day.Segments {
			segments = append(segments, SegmentResponse{
				Kind:    string(seg.Kind),
				Start:   seg.Start,
				End:     seg.End,
				Minutes: timesheet.Minutes(seg.Start, seg.End),
			})
		}
		res.Days = append(res.Days, TimesheetDayResponse{
			Date:     day.Date,
			Shift:    FromShift(day.Shift),
			Segments: segments,
			Totals:   fromTotals(day.Totals),
		})
	}
	return res
}

func fromTotals(t timesheet.Totals) TotalsResponse {
	return TotalsResponse{Work: t.Work, Break: t.Break, Travel: t.Travel}
}
