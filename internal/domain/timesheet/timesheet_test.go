package timesheet

import (
	"reflect"
	"testing"
	"time"

	"pestpro_ops/internal/domain/entities"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func ev(kind entities.EventType, ts time.Time) entities.TimeEvent {
	return entities.TimeEvent{ID: "ev", ShiftID: "shift-1", Type: kind, Timestamp: ts}
}

// laterNow is a "now" on a later calendar day, so past-day clamping applies.
var laterNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func TestReconstructDay_FullDayScenario(t *testing.T) {
	events := []entities.TimeEvent{
		ev(entities.EventClockIn, at(9, 0)),
		ev(entities.EventBreakStart, at(12, 0)),
		ev(entities.EventBreakEnd, at(12, 30)),
		ev(entities.EventClockOut, at(17, 0)),
	}

	d := ReconstructDay(events, day, laterNow)

	want := []Segment{
		{Kind: KindWork, Start: at(9, 0), End: at(12, 0)},
		{Kind: KindBreak, Start: at(12, 0), End: at(12, 30)},
		{Kind: KindWork, Start: at(12, 30), End: at(17, 0)},
	}
	if !reflect.DeepEqual(d.Segments, want) {
		t.Fatalf("segments mismatch:\n got %+v\nwant %+v", d.Segments, want)
	}
	if d.Totals != (Totals{Work: 450, Break: 30, Travel: 0}) {
		t.Fatalf("totals mismatch: %+v", d.Totals)
	}
}

func TestReconstructDay_TravelDay(t *testing.T) {
	events := []entities.TimeEvent{
		ev(entities.EventClockIn, at(8, 0)),
		ev(entities.EventTravelStart, at(8, 30)),
		ev(entities.EventTravelEnd, at(9, 0)),
		ev(entities.EventClockOut, at(10, 0)),
	}

	d := ReconstructDay(events, day, laterNow)

	if len(d.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %+v", d.Segments)
	}
	if d.Segments[1].Kind != KindTravel {
		t.Fatalf("expected travel segment, got %+v", d.Segments[1])
	}
	if d.Totals != (Totals{Work: 90, Break: 0, Travel: 30}) {
		t.Fatalf("totals mismatch: %+v", d.Totals)
	}
}

func TestReconstructDay_OpenSegmentClampedToNowToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
	events := []entities.TimeEvent{ev(entities.EventClockIn, at(8, 0))}

	d := ReconstructDay(events, day, now)

	want := []Segment{{Kind: KindWork, Start: at(8, 0), End: now}}
	if !reflect.DeepEqual(d.Segments, want) {
		t.Fatalf("segments mismatch:\n got %+v\nwant %+v", d.Segments, want)
	}
	if d.Totals != (Totals{Work: 150}) {
		t.Fatalf("totals mismatch: %+v", d.Totals)
	}
}

func TestReconstructDay_MissedClockOutOnPastDay(t *testing.T) {
	// A historical day with no clock_out counts as fully elapsed: the open
	// interval is clamped to end of day, not to "now".
	events := []entities.TimeEvent{ev(entities.EventClockIn, at(8, 0))}

	d := ReconstructDay(events, day, laterNow)

	if len(d.Segments) != 1 {
		t.Fatalf("expected one segment, got %+v", d.Segments)
	}
	if !d.Segments[0].End.Equal(EndOfDay(day)) {
		t.Fatalf("expected clamp to end of day, got %v", d.Segments[0].End)
	}
	if d.Totals.Work != 960 {
		t.Fatalf("expected 960 work minutes, got %d", d.Totals.Work)
	}
}

func TestReconstructDay_EmptyDay(t *testing.T) {
	d := ReconstructDay(nil, day, laterNow)
	if len(d.Segments) != 0 || d.Totals != (Totals{}) {
		t.Fatalf("expected empty reconstruction, got %+v", d)
	}
}

func TestReconstructDay_ClockOutWithNothingOpen(t *testing.T) {
	events := []entities.TimeEvent{ev(entities.EventClockOut, at(17, 0))}

	d := ReconstructDay(events, day, laterNow)
	if len(d.Segments) != 0 || d.Totals != (Totals{}) {
		t.Fatalf("expected stray clock_out to be absorbed, got %+v", d)
	}
}

func TestReconstructDay_NeutralEventsDoNotSplit(t *testing.T) {
	events := []entities.TimeEvent{
		ev(entities.EventClockIn, at(9, 0)),
		ev(entities.EventArrive, at(9, 20)),
		ev(entities.EventStartJob, at(9, 25)),
		ev(entities.EventCompleteJob, at(9, 50)),
		ev(entities.EventType("unknown"), at(9, 55)),
		ev(entities.EventClockOut, at(10, 0)),
	}

	d := ReconstructDay(events, day, laterNow)

	want := []Segment{{Kind: KindWork, Start: at(9, 0), End: at(10, 0)}}
	if !reflect.DeepEqual(d.Segments, want) {
		t.Fatalf("expected one uninterrupted work segment, got %+v", d.Segments)
	}
	if d.Totals.Work != 60 {
		t.Fatalf("expected 60 work minutes, got %d", d.Totals.Work)
	}
}

func TestReconstructDay_OutOfOrderEndClampsToStart(t *testing.T) {
	// A close timestamp preceding the open interval's start never produces a
	// negative duration; the zero-length interval is simply dropped.
	events := []entities.TimeEvent{
		ev(entities.EventClockIn, at(10, 0)),
		ev(entities.EventClockOut, at(9, 0)),
	}

	d := ReconstructDay(events, day, laterNow)
	if len(d.Segments) != 0 || d.Totals != (Totals{}) {
		t.Fatalf("expected no segments, got %+v", d)
	}
}

func TestReconstructDay_SegmentsOrderedAndNonOverlapping(t *testing.T) {
	events := []entities.TimeEvent{
		ev(entities.EventClockIn, at(7, 0)),
		ev(entities.EventTravelStart, at(7, 15)),
		ev(entities.EventTravelEnd, at(7, 45)),
		ev(entities.EventBreakStart, at(12, 0)),
		ev(entities.EventBreakEnd, at(12, 30)),
		ev(entities.EventTravelStart, at(15, 0)),
		ev(entities.EventTravelEnd, at(15, 20)),
		ev(entities.EventClockOut, at(16, 0)),
	}

	d := ReconstructDay(events, day, laterNow)

	for i := 1; i < len(d.Segments); i++ {
		prev, cur := d.Segments[i-1], d.Segments[i]
		if cur.Start.Before(prev.Start) {
			t.Fatalf("segments out of order at %d: %+v", i, d.Segments)
		}
		if cur.Start.Before(prev.End) {
			t.Fatalf("segments overlap at %d: %+v", i, d.Segments)
		}
	}
}

func TestReconstructDay_TotalsEqualSegmentSum(t *testing.T) {
	events := []entities.TimeEvent{
		ev(entities.EventClockIn, at(8, 0)),
		ev(entities.EventBreakStart, at(10, 0)),
		ev(entities.EventBreakEnd, at(10, 15)),
		ev(entities.EventTravelStart, at(11, 0)),
		ev(entities.EventTravelEnd, at(11, 40)),
		ev(entities.EventClockOut, at(14, 0)),
	}

	d := ReconstructDay(events, day, laterNow)

	sum := 0
	for _, seg := range d.Segments {
		sum += Minutes(seg.Start, seg.End)
	}
	if sum != d.Totals.Work+d.Totals.Break+d.Totals.Travel {
		t.Fatalf("segment sum %d != totals %+v", sum, d.Totals)
	}
}

func TestReconstructDay_Idempotent(t *testing.T) {
	events := []entities.TimeEvent{
		ev(entities.EventClockIn, at(9, 0)),
		ev(entities.EventBreakStart, at(12, 0)),
		ev(entities.EventBreakEnd, at(12, 30)),
		ev(entities.EventClockOut, at(17, 0)),
	}

	first := ReconstructDay(events, day, laterNow)
	second := ReconstructDay(events, day, laterNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reconstruction is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestMinutes(t *testing.T) {
	if got := Minutes(at(9, 0), at(9, 30)); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if got := Minutes(at(9, 30), at(9, 0)); got != 0 {
		t.Fatalf("expected 0 for reversed interval, got %d", got)
	}
	// 29.5s rounds down, 30.5s rounds up.
	if got := Minutes(at(9, 0), at(9, 0).Add(29500*time.Millisecond)); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Minutes(at(9, 0), at(9, 0).Add(30500*time.Millisecond)); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestDayBoundaries(t *testing.T) {
	ts := time.Date(2025, 3, 10, 14, 45, 12, 0, time.UTC)

	if got := StartOfDay(ts); !got.Equal(day) {
		t.Fatalf("start of day %v", got)
	}
	if got := EndOfDay(ts); !got.Equal(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("end of day %v", got)
	}
	if !SameDay(ts, day) {
		t.Fatalf("expected same day")
	}
	if SameDay(ts, laterNow) {
		t.Fatalf("expected different days")
	}
}
