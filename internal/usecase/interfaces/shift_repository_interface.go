package interfaces

import (
	"context"
	"time"

	"pestpro_ops/internal/domain/entities"
)

// IShiftRepository abstracts DynamoDB persistence for Shift.
//
// The time-clock flow must be able to:
//   - create the day's shift on the first clock_in (one per employee per day)
//   - resolve the shift for an employee + calendar day
//   - stamp clock-out time and reconstructed break minutes on clock_out
//   - list an employee's shifts over a date range for timesheet reports
type IShiftRepository interface {
	Create(ctx context.Context, s entities.Shift) (entities.Shift, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, shiftDate string) (entities.Shift, error)
	SetClockOut(ctx context.Context, employeeID, shiftDate string, at time.Time, breakMinutes int) (entities.Shift, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID, fromDate, toDate string) ([]entities.Shift, error)
}
