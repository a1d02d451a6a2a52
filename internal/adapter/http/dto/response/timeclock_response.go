package response

import (
	"time"

	"pestpro_ops/internal/domain/entities"
)

type TimeEventResponse struct {
	ID         string    `json:"id"`
	ShiftID    string    `json:"shift_id"`
	EmployeeID string    `json:"employee_id"`
	EventType  string    `json:"event_type"`
	Timestamp  time.Time `json:"timestamp"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
}

type ShiftResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	ShiftDate    string     `json:"shift_date"`
	ClockInAt    *time.Time `json:"clock_in_at,omitempty"`
	ClockOutAt   *time.Time `json:"clock_out_at,omitempty"`
	BreakMinutes int        `json:"break_minutes"`
}

// RecordTimeEventResponse returns both the stored event and the shift it
// landed on, so the app can refresh its clocked-in state in one round trip.
type RecordTimeEventResponse struct {
	Event TimeEventResponse `json:"event"`
	Shift ShiftResponse     `json:"shift"`
}

func FromTimeEvent(e entities.TimeEvent) TimeEventResponse {
	return TimeEventResponse{
		ID:         e.ID,
		ShiftID:    e.ShiftID,
		EmployeeID: e.EmployeeID,
		EventType:  string(e.Type),
		Timestamp:  e.Timestamp,
		Lat:        e.Lat,
		Lng:        e.Lng,
	}
}

func FromShift(s entities.Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		ShiftDate:    s.ShiftDate,
		ClockInAt:    s.ClockInAt,
		ClockOutAt:   s.ClockOutAt,
		BreakMinutes: s.BreakMinutes,
	}
}
