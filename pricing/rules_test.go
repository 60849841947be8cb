package pricing

import (
	"testing"
	"time"

	"lucilla/models"
)

func weekendRule() models.PricingRule {
	return models.PricingRule{
		ID: "weekend", Name: "Weekend Check-in", Kind: models.RuleWeekend,
		Modifier: 1.15, Active: true, DaysOfWeek: []int{5, 6},
	}
}

func earlyBirdRule() models.PricingRule {
	return models.PricingRule{
		ID: "earlybird", Name: "Early Bird", Kind: models.RuleEarlyBird,
		Modifier: 0.85, Active: true, DaysAhead: 60,
	}
}

func lastMinuteRule() models.PricingRule {
	return models.PricingRule{
		ID: "lastminute", Name: "Last Minute", Kind: models.RuleLastMinute,
		Modifier: 0.90, Active: true, DaysAhead: 7,
	}
}

func TestEffectiveNightlyRateCompounds(t *testing.T) {
	today := date(2026, 1, 1)

	// a Saturday at least 60 days out: both weekend and early bird fire
	checkIn := today.AddDate(0, 0, 70)
	for checkIn.Weekday() != time.Saturday {
		checkIn = checkIn.AddDate(0, 0, 1)
	}

	rules := []models.PricingRule{weekendRule(), earlyBirdRule()}
	rate, applied := EffectiveNightlyRate(100, &checkIn, today, rules)

	// 100 * 1.15 * 0.85 = 97.75, rounded to whole units
	if rate != 98 {
		t.Fatalf("expected rate 98, got %v", rate)
	}
	if len(applied) != 2 {
		t.Fatalf("expected 2 applied rules, got %v", applied)
	}
}

func TestEffectiveNightlyRateNoCheckIn(t *testing.T) {
	rate, applied := EffectiveNightlyRate(185, nil, date(2026, 1, 1), []models.PricingRule{weekendRule()})
	if rate != 185 {
		t.Fatalf("expected unmodified base rate, got %v", rate)
	}
	if len(applied) != 0 {
		t.Fatalf("expected no applied rules, got %v", applied)
	}
}

func TestInactiveRuleSkipped(t *testing.T) {
	today := date(2026, 1, 1)
	checkIn := today.AddDate(0, 0, 90)
	rule := earlyBirdRule()
	rule.Active = false

	rate, applied := EffectiveNightlyRate(100, &checkIn, today, []models.PricingRule{rule})
	if rate != 100 || len(applied) != 0 {
		t.Fatalf("inactive rule must not fire: rate=%v applied=%v", rate, applied)
	}
}

func TestSeasonalWindow(t *testing.T) {
	rule := models.PricingRule{
		ID: "high-season", Name: "High Season", Kind: models.RuleSeasonal,
		Modifier: 1.30, Active: true,
		StartMonth: 6, StartDay: 15, EndMonth: 9, EndDay: 15,
	}
	today := date(2026, 1, 1)

	cases := []struct {
		checkIn time.Time
		inside  bool
	}{
		{date(2026, 6, 15), true},  // start inclusive
		{date(2026, 9, 15), true},  // end inclusive
		{date(2026, 7, 20), true},  // middle
		{date(2026, 6, 14), false}, // day before
		{date(2026, 9, 16), false}, // day after
		{date(2026, 12, 25), false},
	}
	for _, c := range cases {
		_, applied := EffectiveNightlyRate(100, &c.checkIn, today, []models.PricingRule{rule})
		if (len(applied) == 1) != c.inside {
			t.Errorf("check-in %v: expected inside=%v, applied=%v", c.checkIn, c.inside, applied)
		}
	}
}

func TestSeasonalWindowWrapsYearEnd(t *testing.T) {
	rule := models.PricingRule{
		ID: "holidays", Name: "Holidays", Kind: models.RuleSeasonal,
		Modifier: 1.20, Active: true,
		StartMonth: 12, StartDay: 20, EndMonth: 1, EndDay: 6,
	}
	today := date(2026, 1, 1)

	inside := []time.Time{date(2026, 12, 25), date(2026, 1, 3), date(2026, 12, 20), date(2026, 1, 6)}
	for _, d := range inside {
		if _, applied := EffectiveNightlyRate(100, &d, today, []models.PricingRule{rule}); len(applied) != 1 {
			t.Errorf("%v should fall inside a wrapped window", d)
		}
	}
	outside := []time.Time{date(2026, 7, 1), date(2026, 12, 19), date(2026, 1, 7)}
	for _, d := range outside {
		if _, applied := EffectiveNightlyRate(100, &d, today, []models.PricingRule{rule}); len(applied) != 0 {
			t.Errorf("%v should fall outside a wrapped window", d)
		}
	}
}

func TestDaysAheadWithNonUTCClock(t *testing.T) {
	// check-in dates parse to UTC midnight while the server clock carries a
	// zone; the day difference must not pick up the residual offset
	east := time.FixedZone("UTC+3", 3*60*60)
	west := time.FixedZone("UTC-7", -7*60*60)

	checkIn := date(2026, 3, 1)

	if got := DaysAhead(checkIn, time.Date(2026, 3, 1, 10, 0, 0, 0, east)); got != 0 {
		t.Fatalf("same calendar day: expected daysAhead 0, got %d", got)
	}
	if got := DaysAhead(checkIn, time.Date(2026, 2, 28, 23, 0, 0, 0, west)); got != 1 {
		t.Fatalf("next calendar day: expected daysAhead 1, got %d", got)
	}

	// same-day check-in must not get the last-minute discount
	rate, applied := EffectiveNightlyRate(100, &checkIn,
		time.Date(2026, 3, 1, 10, 0, 0, 0, east), []models.PricingRule{lastMinuteRule()})
	if rate != 100 || len(applied) != 0 {
		t.Fatalf("same-day check-in must not get last-minute: rate=%v applied=%v", rate, applied)
	}

	// the 7/8 boundary must not shift with the clock's zone either
	sevenOut := checkIn.AddDate(0, 0, -7)
	_, applied = EffectiveNightlyRate(100, &checkIn,
		time.Date(sevenOut.Year(), sevenOut.Month(), sevenOut.Day(), 1, 0, 0, 0, east),
		[]models.PricingRule{lastMinuteRule()})
	if len(applied) != 1 {
		t.Fatalf("7 days out should apply last-minute, got %v", applied)
	}
	eightOut := checkIn.AddDate(0, 0, -8)
	_, applied = EffectiveNightlyRate(100, &checkIn,
		time.Date(eightOut.Year(), eightOut.Month(), eightOut.Day(), 23, 0, 0, 0, west),
		[]models.PricingRule{lastMinuteRule()})
	if len(applied) != 0 {
		t.Fatalf("8 days out should not apply last-minute, got %v", applied)
	}
}

func TestDaysAheadBoundaries(t *testing.T) {
	today := date(2026, 3, 1)
	rules := []models.PricingRule{earlyBirdRule(), lastMinuteRule()}

	cases := []struct {
		ahead   int
		applied int // number of rules expected to fire
	}{
		{-1, 0}, // past check-in: nothing applies
		{0, 0},  // same-day: last minute explicitly excludes it
		{1, 1},  // last minute
		{7, 1},  // last minute upper bound
		{8, 0},  // the 8..59 gap has no rule
		{59, 0},
		{60, 1}, // early bird lower bound
		{90, 1},
	}
	for _, c := range cases {
		checkIn := today.AddDate(0, 0, c.ahead)
		_, applied := EffectiveNightlyRate(100, &checkIn, today, rules)
		if len(applied) != c.applied {
			t.Errorf("daysAhead=%d: expected %d applied rules, got %v", c.ahead, c.applied, applied)
		}
	}
}
