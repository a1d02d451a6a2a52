// Package timesheet reconstructs a day's labeled work/break/travel intervals
// from its raw time-clock event stream.
//
// ReconstructDay is a pure fold over an event list already sorted ascending by
// timestamp; sorting is the caller's responsibility, not inferred here.
package timesheet

import (
	"math"
	"time"

	"pestpro_ops/internal/domain/entities"
)

// Kind labels a reconstructed interval.
type Kind string

const (
	KindWork   Kind = "work"
	KindBreak  Kind = "break"
	KindTravel Kind = "travel"
)

// Segment is one contiguous interval of a single activity kind within a day.
// Derived data: recomputed from the event stream on every request, never
// stored.
type Segment struct {
	Kind  Kind      `json:"kind"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Totals holds per-kind duration sums, in whole minutes.
type Totals struct {
	Work   int `json:"work"`
	Break  int `json:"break"`
	Travel int `json:"travel"`
}

func (t *Totals) add(kind Kind, minutes int) {
	switch kind {
	case KindWork:
		t.Work += minutes
	case KindBreak:
		t.Break += minutes
	case KindTravel:
		t.Travel += minutes
	}
}

// Day is the reconstruction output: ordered non-overlapping segments plus
// per-kind totals. The sum of segment durations equals the totals exactly.
type Day struct {
	Segments []Segment `json:"segments"`
	Totals   Totals    `json:"totals"`
}

// ReconstructDay folds the day's events into labeled segments.
//
// Each state-moving event closes the currently open interval before opening a
// new one (clock_out only closes); arrive/start_job/complete_job and unknown
// types leave the timeline untouched. An interval still open after the last
// event is clamped to min(now, end of day) when the day is today, else to end
// of day — a historical day with a missed clock-out counts as fully elapsed.
//
// A clock_out with nothing open is absorbed as a no-op; an end timestamp that
// precedes the open interval's start is clamped to the start, so durations are
// never negative.
func ReconstructDay(events []entities.TimeEvent, day time.Time, now time.Time) Day {
	var (
		d        Day
		openKind Kind
		openAt   time.Time
		open     bool
	)

	closeAt := func(end time.Time) {
		if !open {
			return
		}
		if end.Before(openAt) {
			end = openAt
		}
		if mins := Minutes(openAt, end); mins > 0 {
			d.Segments = append(d.Segments, Segment{Kind: openKind, Start: openAt, End: end})
			d.Totals.add(openKind, mins)
		}
		open = false
	}
	openAs := func(kind Kind, at time.Time) {
		openKind = kind
		openAt = at
		open = true
	}

	for _, ev := range events {
		switch ev.Type {
		case entities.EventClockIn:
			closeAt(ev.Timestamp)
			openAs(KindWork, ev.Timestamp)
		case entities.EventBreakStart:
			closeAt(ev.Timestamp)
			openAs(KindBreak, ev.Timestamp)
		case entities.EventBreakEnd:
			closeAt(ev.Timestamp)
			openAs(KindWork, ev.Timestamp)
		case entities.EventTravelStart:
			closeAt(ev.Timestamp)
			openAs(KindTravel, ev.Timestamp)
		case entities.EventTravelEnd:
			closeAt(ev.Timestamp)
			openAs(KindWork, ev.Timestamp)
		case entities.EventClockOut:
			closeAt(ev.Timestamp)
		default:
			// arrive / start_job / complete_job: timeline kind unaffected.
		}
	}

	if open {
		end := EndOfDay(day)
		if SameDay(day, now) && now.Before(end) {
			end = now
		}
		closeAt(end)
	}

	return d
}

// Minutes returns the duration from start to end in whole minutes, rounded
// from milliseconds and floored at zero.
func Minutes(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(math.Round(float64(end.Sub(start).Milliseconds()) / 60000.0))
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
