package entities

import "time"

// ShiftDateLayout is the calendar-day format used for shift keys and range
// queries.
const ShiftDateLayout = "2006-01-02"

// Shift is one employee's single-day work session, bounded by clock-in and
// clock-out. Created lazily on the first clock_in of the day; clock_out stamps
// ClockOutAt and the reconstructed break total.
//
// Storage model (DynamoDB):
//   - PK: employee_id
//   - SK: shift_date
//
// The (employee_id, shift_date) key guarantees one shift per employee per
// calendar day, and lets timesheet range queries use a key BETWEEN condition.
type Shift struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	ShiftDate    string     `json:"shift_date"`
	ClockInAt    *time.Time `json:"clock_in_at,omitempty"`
	ClockOutAt   *time.Time `json:"clock_out_at,omitempty"`
	BreakMinutes int        `json:"break_minutes"`
}
