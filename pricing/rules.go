package pricing

import (
	"math"
	"slices"
	"time"

	"lucilla/models"
)

// EffectiveNightlyRate applies the active pricing rules to the base rate and
// returns the resulting rate with the names of the rules that fired.
//
// Rules are evaluated in declaration order and compound multiplicatively.
// Each predicate is checked once against the check-in date: a multi-night
// stay gets a single seasonal/weekend verdict from its start date, even when
// the stay crosses a weekend or season boundary.
//
// The result is rounded to the nearest whole currency unit. A nil check-in
// leaves the base rate untouched.
func EffectiveNightlyRate(baseRate float64, checkIn *time.Time, today time.Time, rules []models.PricingRule) (float64, []string) {
	if checkIn == nil {
		return baseRate, nil
	}

	rate := baseRate
	var applied []string
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		if ruleMatches(rule, *checkIn, today) {
			rate *= rule.Modifier
			applied = append(applied, rule.Name)
		}
	}
	return math.Round(rate), applied
}

func ruleMatches(rule models.PricingRule, checkIn, today time.Time) bool {
	switch rule.Kind {
	case models.RuleSeasonal:
		return inSeason(checkIn, rule.StartMonth, rule.StartDay, rule.EndMonth, rule.EndDay)
	case models.RuleWeekend:
		return slices.Contains(rule.DaysOfWeek, int(checkIn.Weekday()))
	case models.RuleEarlyBird:
		return DaysAhead(checkIn, today) >= rule.DaysAhead
	case models.RuleLastMinute:
		ahead := DaysAhead(checkIn, today)
		return ahead > 0 && ahead <= rule.DaysAhead
	}
	return false
}

// DaysAhead counts whole calendar days from today to the check-in date.
// Negative means the check-in is already in the past.
func DaysAhead(checkIn, today time.Time) int {
	return int(math.Ceil(Truncate(checkIn).Sub(Truncate(today)).Hours() / 24))
}

// inSeason compares (month, day) tuples, both endpoints inclusive. A window
// whose start sorts after its end wraps the year boundary.
func inSeason(d time.Time, startMonth, startDay, endMonth, endDay int) bool {
	md := int(d.Month())*100 + d.Day()
	start := startMonth*100 + startDay
	end := endMonth*100 + endDay
	if start <= end {
		return md >= start && md <= end
	}
	return md >= start || md <= end
}
