package request

import "time"

// RecordTimeEventRequest is the time-clock action payload sent by the
// employee app. A missing timestamp means "now" (server clock).
type RecordTimeEventRequest struct {
	EmployeeID string     `json:"employee_id" binding:"required"`
	EventType  string     `json:"event_type" binding:"required,oneof=clock_in clock_out break_start break_end travel_start travel_end arrive start_job complete_job"`
	Timestamp  *time.Time `json:"timestamp"`
	Lat        *float64   `json:"lat" binding:"omitempty,gte=-90,lte=90"`
	Lng        *float64   `json:"lng" binding:"omitempty,gte=-180,lte=180"`
}

func (r RecordTimeEventRequest) ResolveTimestamp() time.Time {
	if r.Timestamp == nil {
		return time.Time{}
	}
	return *r.Timestamp
}
