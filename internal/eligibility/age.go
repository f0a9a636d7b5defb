package eligibility

import "time"

// Age returns the calendar age in whole years of someone born on birth, as
// of today. Someone born on 29 February turns a year older on 1 March in
// non-leap years.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// DateOf truncates t to its calendar date, expressed as midnight UTC. The
// calendar date is taken in t's own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	return DateOf(now)
}
