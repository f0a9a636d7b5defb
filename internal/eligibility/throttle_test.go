package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottleDecide(t *testing.T) {
	today := date(2024, 6, 15)
	sameDay := date(2024, 6, 15)
	yesterday := date(2024, 6, 14)
	lastWeek := date(2024, 6, 8)
	tomorrow := date(2024, 6, 16)

	tests := []struct {
		name        string
		window      int
		last        *time.Time
		wantAllowed bool
		wantNext    time.Time
	}{
		{"never checked", 1, nil, true, time.Time{}},
		{"checked today", 1, &sameDay, false, date(2024, 6, 16)},
		{"checked yesterday", 1, &yesterday, true, date(2024, 6, 15)},
		{"zero window behaves as one day", 0, &sameDay, false, date(2024, 6, 16)},
		{"inside seven day window", 7, &yesterday, false, date(2024, 6, 21)},
		{"seven day window elapsed", 7, &lastWeek, true, date(2024, 6, 15)},
		{"last check in the future", 1, &tomorrow, false, date(2024, 6, 17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Throttle{WindowDays: tt.window}.Decide(tt.last, today)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantNext, d.NextEligibleOn)
		})
	}
}

func TestThrottleIgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	d := Throttle{WindowDays: 1}.Decide(&last, time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC))
	assert.False(t, d.Allowed)
	assert.Equal(t, date(2024, 6, 15), d.LastCheckedOn)
}
