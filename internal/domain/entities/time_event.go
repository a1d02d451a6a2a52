package entities

import "time"

// EventType classifies a time-clock event.
//
// Only the clock/break/travel events move the timesheet state machine;
// arrive/start_job/complete_job are assignment-status markers that leave the
// timeline kind unaffected.

type EventType string

const (
	EventClockIn     EventType = "clock_in"
	EventClockOut    EventType = "clock_out"
	EventBreakStart  EventType = "break_start"
	EventBreakEnd    EventType = "break_end"
	EventTravelStart EventType = "travel_start"
	EventTravelEnd   EventType = "travel_end"
	EventArrive      EventType = "arrive"
	EventStartJob    EventType = "start_job"
	EventCompleteJob EventType = "complete_job"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventClockIn, EventClockOut, EventBreakStart, EventBreakEnd,
		EventTravelStart, EventTravelEnd, EventArrive, EventStartJob, EventCompleteJob:
		return true
	}
	return false
}

// TimeEvent is one append-only time-clock log entry belonging to a shift.
// Events are created by employee actions and never mutated or deleted.
//
// Storage model (DynamoDB):
//   - PK: shift_id
//   - SK: timestamp (RFC3339Nano sorts chronologically)
type TimeEvent struct {
	ID         string                 `json:"id"`
	ShiftID    string                 `json:"shift_id"`
	EmployeeID string                 `json:"employee_id"`
	Type       EventType              `json:"event_type"`
	Timestamp  time.Time              `json:"timestamp"`
	Lat        *float64               `json:"lat,omitempty"`
	Lng        *float64               `json:"lng,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}
