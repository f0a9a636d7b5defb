package eligibility

import "time"

// Throttle limits how often the same identity may be evaluated.
type Throttle struct {
	// WindowDays is the number of calendar days, counted from the last
	// check, during which another check is denied. Values below one are
	// treated as one.
	WindowDays int
}

// Decision is the outcome of a throttle check.
type Decision struct {
	Allowed        bool
	LastCheckedOn  time.Time
	NextEligibleOn time.Time
}

// Decide reports whether a customer last checked on lastChecked may be
// evaluated on today. A nil lastChecked is always allowed.
func (t Throttle) Decide(lastChecked *time.Time, today time.Time) Decision {
	if lastChecked == nil {
		return Decision{Allowed: true}
	}
	window := t.WindowDays
	if window < 1 {
		window = 1
	}

	last := DateOf(*lastChecked)
	next := last.AddDate(0, 0, window)
	return Decision{
		Allowed:        !DateOf(today).Before(next),
		LastCheckedOn:  last,
		NextEligibleOn: next,
	}
}
