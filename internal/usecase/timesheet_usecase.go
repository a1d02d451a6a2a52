package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/domain/timesheet"
	"pestpro_ops/internal/usecase/interfaces"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrRangeTooLarge    = errors.New("date range too large")
)

// maxTimesheetRangeDays caps one report request at a year of shifts.
const maxTimesheetRangeDays = 366

// TimesheetDay is one reconstructed day within a report.
type TimesheetDay struct {
	Date     string
	Shift    entities.Shift
	Segments []timesheet.Segment
	Totals   timesheet.Totals
}

// TimesheetReport aggregates an employee's reconstructed days over a range.
type TimesheetReport struct {
	EmployeeID string
	Days       []TimesheetDay
	Totals     timesheet.Totals
}

// ITimesheetUseCase serves the reporting view: fetch raw shifts + events for a
// date range and run the reconstructor per day.
type ITimesheetUseCase interface {
	GetTimesheets(ctx context.Context, employeeID, fromDate, toDate string) (TimesheetReport, error)
}

type TimesheetUseCase struct {
	shiftRepo interfaces.IShiftRepository
	eventRepo interfaces.ITimeEventRepository
	now       func() time.Time
}

var _ ITimesheetUseCase = (*TimesheetUseCase)(nil)

func NewTimesheetUseCase(shiftRepo interfaces.IShiftRepository, eventRepo interfaces.ITimeEventRepository) *TimesheetUseCase {
	return &TimesheetUseCase{shiftRepo: shiftRepo, eventRepo: eventRepo, now: time.Now}
}

// GetTimesheets reconstructs each day the employee has a shift on within
// [fromDate, toDate]. Events are sorted ascending by timestamp before the
// fold — the reconstructor's documented precondition is satisfied here, at
// the one place unsorted data could enter.
func (u *TimesheetUseCase) GetTimesheets(ctx context.Context, employeeID, fromDate, toDate string) (TimesheetReport, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return TimesheetReport{}, ErrInvalidEmployeeID
	}

	from, err := time.ParseInLocation(entities.ShiftDateLayout, fromDate, time.UTC)
	if err != nil {
		return TimesheetReport{}, ErrInvalidDateRange
	}
	to, err := time.ParseInLocation(entities.ShiftDateLayout, toDate, time.UTC)
	if err != nil {
		return TimesheetReport{}, ErrInvalidDateRange
	}
	if to.Before(from) {
		return TimesheetReport{}, ErrInvalidDateRange
	}
	if to.Sub(from) > maxTimesheetRangeDays*24*time.Hour {
		return TimesheetReport{}, ErrRangeTooLarge
	}

	shifts, err := u.shiftRepo.ListByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return TimesheetReport{}, err
	}

	report := TimesheetReport{EmployeeID: employeeID}
	now := u.now().UTC()
	for _, shift := range shifts {
		day, err := time.ParseInLocation(entities.ShiftDateLayout, shift.ShiftDate, time.UTC)
		if err != nil {
			return TimesheetReport{}, err
		}

		events, err := u.eventRepo.ListByShiftID(ctx, shift.ID)
		if err != nil {
			return TimesheetReport{}, err
		}
		sort.Slice(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })

		reconstructed := timesheet.ReconstructDay(events, day, now)
		report.Days = append(report.Days, TimesheetDay{
			Date:     shift.ShiftDate,
			Shift:    shift,
			Segments: reconstructed.Segments,
			Totals:   reconstructed.Totals,
		})
		report.Totals.Work += reconstructed.Totals.Work
		report.Totals.Break += reconstructed.Totals.Break
		report.Totals.Travel += reconstructed.Totals.Travel
	}

	return report, nil
}
