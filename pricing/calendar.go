package pricing

import "time"

// UnavailableDateSet holds the calendar days that cannot be selected,
// keyed by YYYY-MM-DD so membership ignores the time of day.
type UnavailableDateSet map[string]struct{}

const dayLayout = "2006-01-02"

func NewUnavailableDateSet(dates ...time.Time) UnavailableDateSet {
	s := make(UnavailableDateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s UnavailableDateSet) Add(d time.Time) {
	s[d.Format(dayLayout)] = struct{}{}
}

func (s UnavailableDateSet) Contains(d time.Time) bool {
	_, ok := s[d.Format(dayLayout)]
	return ok
}

// AddRange marks every day from start to end inclusive.
func (s UnavailableDateSet) AddRange(start, end time.Time) {
	start = Truncate(start)
	end = Truncate(end)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		s.Add(d)
	}
}

// Truncate drops the time-of-day component and re-anchors the calendar day
// in UTC, so days parsed from date strings and a server-local clock compare
// in one frame: differencing two truncated values always yields whole days.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsDateSelectable reports whether a guest may pick the given calendar day:
// past days and already-booked days are not selectable. Comparison is by
// calendar day, never by timestamp.
func IsDateSelectable(date, today time.Time, unavailable UnavailableDateSet) bool {
	if Truncate(date).Before(Truncate(today)) {
		return false
	}
	return !unavailable.Contains(date)
}

// ComputeNights returns the stay length for a from/to range. Either endpoint
// missing yields 0. A range of less than one full day still counts as one
// night, and a reversed range can never go negative.
func ComputeNights(from, to *time.Time) int {
	if from == nil || to == nil {
		return 0
	}
	days := int(Truncate(*to).Sub(Truncate(*from)).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
