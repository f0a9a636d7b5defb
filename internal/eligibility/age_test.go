package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		today time.Time
		want  int
	}{
		{"day before birthday", date(2000, 6, 15), date(2024, 6, 14), 23},
		{"on birthday", date(2000, 6, 15), date(2024, 6, 15), 24},
		{"day after birthday", date(2000, 6, 15), date(2024, 6, 16), 24},
		{"earlier month", date(2000, 6, 15), date(2024, 5, 30), 23},
		{"leap day in non-leap year before march", date(2004, 2, 29), date(2023, 2, 28), 18},
		{"leap day in non-leap year on march first", date(2004, 2, 29), date(2023, 3, 1), 19},
		{"leap day in leap year", date(2004, 2, 29), date(2024, 2, 29), 20},
		{"born today", date(2024, 1, 1), date(2024, 1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.birth, tt.today))
		})
	}
}

func TestToday(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 20:00 UTC is already the next day in India.
	now := time.Date(2024, 6, 14, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, date(2024, 6, 15), Today(now, kolkata))
	assert.Equal(t, date(2024, 6, 14), Today(now, time.UTC))
	assert.Equal(t, date(2024, 6, 14), Today(now, nil))
}
