package pricing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeNights(t *testing.T) {
	from := date(2026, 5, 4)
	to := date(2026, 5, 7)

	if got := ComputeNights(&from, &to); got != 3 {
		t.Fatalf("expected 3 nights, got %d", got)
	}

	// missing endpoints yield zero
	if got := ComputeNights(nil, &to); got != 0 {
		t.Errorf("expected 0 nights with missing from, got %d", got)
	}
	if got := ComputeNights(&from, nil); got != 0 {
		t.Errorf("expected 0 nights with missing to, got %d", got)
	}

	// sub-day range still counts as one night
	sameDay := date(2026, 5, 4)
	if got := ComputeNights(&from, &sameDay); got != 1 {
		t.Errorf("expected 1 night for same-day range, got %d", got)
	}

	// reversed range can never go negative
	earlier := date(2026, 5, 1)
	if got := ComputeNights(&from, &earlier); got != 1 {
		t.Errorf("expected 1 night for reversed range, got %d", got)
	}
}

func TestComputeNightsIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2026, 5, 4, 23, 30, 0, 0, time.UTC)
	to := time.Date(2026, 5, 7, 0, 15, 0, 0, time.UTC)

	if got := ComputeNights(&from, &to); got != 3 {
		t.Fatalf("expected 3 nights regardless of time of day, got %d", got)
	}
}

func TestIsDateSelectable(t *testing.T) {
	today := date(2026, 5, 10)
	unavailable := NewUnavailableDateSet(date(2026, 5, 15))

	if IsDateSelectable(date(2026, 5, 9), today, unavailable) {
		t.Error("past date should not be selectable")
	}
	if !IsDateSelectable(today, today, unavailable) {
		t.Error("today should be selectable")
	}
	if IsDateSelectable(date(2026, 5, 15), today, unavailable) {
		t.Error("booked date should not be selectable")
	}
	if !IsDateSelectable(date(2026, 5, 16), today, unavailable) {
		t.Error("free future date should be selectable")
	}

	// membership compares calendar days, not timestamps
	if IsDateSelectable(time.Date(2026, 5, 15, 18, 0, 0, 0, time.UTC), today, unavailable) {
		t.Error("booked date with a time component should still be blocked")
	}
}

func TestIsDateSelectableWithNonUTCClock(t *testing.T) {
	// a server clock west of UTC must not push "today" a day ahead of
	// UTC-midnight candidate dates
	west := time.FixedZone("UTC-7", -7*60*60)
	today := time.Date(2026, 5, 10, 20, 0, 0, 0, west)
	none := NewUnavailableDateSet()

	if !IsDateSelectable(date(2026, 5, 10), today, none) {
		t.Error("today should be selectable regardless of the clock's zone")
	}
	if IsDateSelectable(date(2026, 5, 9), today, none) {
		t.Error("yesterday should not be selectable")
	}

	east := time.FixedZone("UTC+3", 3*60*60)
	if !IsDateSelectable(date(2026, 5, 10), time.Date(2026, 5, 10, 2, 0, 0, 0, east), none) {
		t.Error("today should be selectable east of UTC too")
	}
}

func TestAddRange(t *testing.T) {
	set := NewUnavailableDateSet()
	set.AddRange(date(2026, 6, 1), date(2026, 6, 3))

	for d := 1; d <= 3; d++ {
		if !set.Contains(date(2026, 6, d)) {
			t.Errorf("expected June %d to be in the set", d)
		}
	}
	if set.Contains(date(2026, 6, 4)) {
		t.Error("June 4 should not be in the set")
	}
}
