package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/domain/timesheet"
	"pestpro_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmployeeID = errors.New("invalid employee id")
	ErrInvalidEventType  = errors.New("invalid event type")
	ErrShiftNotStarted   = errors.New("shift not started")
)

// RecordEventCommand is the input for one time-clock action. A zero At means
// "now". Lat/Lng are optional device coordinates captured by the clock-in app.
type RecordEventCommand struct {
	EmployeeID string
	Type       entities.EventType
	At         time.Time
	Lat        *float64
	Lng        *float64
}

// ITimeclockUseCase encapsulates the employee time-clock behavior.
//
//   - The day's shift is created lazily on the first clock_in.
//   - Every action appends an immutable TimeEvent to the shift's log.
//   - clock_out stamps the shift with the clock-out time and the break total
//     reconstructed from the day's events.
type ITimeclockUseCase interface {
	RecordEvent(ctx context.Context, cmd RecordEventCommand) (entities.TimeEvent, entities.Shift, error)
}

type TimeclockUseCase struct {
	shiftRepo interfaces.IShiftRepository
	eventRepo interfaces.ITimeEventRepository
	now       func() time.Time
}

var _ ITimeclockUseCase = (*TimeclockUseCase)(nil)

func NewTimeclockUseCase(shiftRepo interfaces.IShiftRepository, eventRepo interfaces.ITimeEventRepository) *TimeclockUseCase {
	return &TimeclockUseCase{shiftRepo: shiftRepo, eventRepo: eventRepo, now: time.Now}
}

func (u *TimeclockUseCase) RecordEvent(ctx context.Context, cmd RecordEventCommand) (entities.TimeEvent, entities.Shift, error) {
	employeeID := strings.TrimSpace(cmd.EmployeeID)
	if employeeID == "" {
		return entities.TimeEvent{}, entities.Shift{}, ErrInvalidEmployeeID
	}
	if !cmd.Type.Valid() {
		return entities.TimeEvent{}, entities.Shift{}, ErrInvalidEventType
	}

	at := cmd.At
	if at.IsZero() {
		at = u.now()
	}
	at = at.UTC()
	shiftDate := at.Format(entities.ShiftDateLayout)

	shift, err := u.shiftRepo.GetByEmployeeAndDate(ctx, employeeID, shiftDate)
	if err != nil {
		return entities.TimeEvent{}, entities.Shift{}, err
	}
	if shift.ID == "" {
		if cmd.Type != entities.EventClockIn {
			log.Printf("[timeclock][usecase] %s before clock_in employee_id=%s date=%s", cmd.Type, employeeID, shiftDate)
			return entities.TimeEvent{}, entities.Shift{}, ErrShiftNotStarted
		}
		shift, err = u.shiftRepo.Create(ctx, entities.Shift{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			ShiftDate:  shiftDate,
			ClockInAt:  &at,
		})
		if err != nil {
			return entities.TimeEvent{}, entities.Shift{}, err
		}
		log.Printf("[timeclock][usecase] shift created employee_id=%s date=%s shift_id=%s", employeeID, shiftDate, shift.ID)
	}

	event := entities.TimeEvent{
		ID:         uuid.NewString(),
		ShiftID:    shift.ID,
		EmployeeID: employeeID,
		Type:       cmd.Type,
		Timestamp:  at,
		Lat:        cmd.Lat,
		Lng:        cmd.Lng,
	}
	event, err = u.eventRepo.Create(ctx, event)
	if err != nil {
		return entities.TimeEvent{}, entities.Shift{}, err
	}

	if cmd.Type == entities.EventClockOut {
		shift, err = u.stampClockOut(ctx, shift, at)
		if err != nil {
			return entities.TimeEvent{}, entities.Shift{}, err
		}
	}

	return event, shift, nil
}

// stampClockOut reconstructs the day from the full event log so the shift
// carries the final break total alongside the clock-out time.
func (u *TimeclockUseCase) stampClockOut(ctx context.Context, shift entities.Shift, at time.Time) (entities.Shift, error) {
	events, err := u.eventRepo.ListByShiftID(ctx, shift.ID)
	if err != nil {
		return entities.Shift{}, err
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })

	day, err := time.ParseInLocation(entities.ShiftDateLayout, shift.ShiftDate, time.UTC)
	if err != nil {
		return entities.Shift{}, err
	}
	reconstructed := timesheet.ReconstructDay(events, day, u.now().UTC())

	updated, err := u.shiftRepo.SetClockOut(ctx, shift.EmployeeID, shift.ShiftDate, at, reconstructed.Totals.Break)
	if err != nil {
		return entities.Shift{}, err
	}
	log.Printf("[timeclock][usecase] clock-out stamped employee_id=%s date=%s break_minutes=%d", shift.EmployeeID, shift.ShiftDate, reconstructed.Totals.Break)
	return updated, nil
}
