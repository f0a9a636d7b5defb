package errors

import (
	"fmt"
	"time"
)

// ThrottleError is returned when a customer re-submits inside the
// eligibility check window.
type ThrottleError struct {
	LastCheckedOn  time.Time
	NextEligibleOn time.Time
}

func (e *ThrottleError) Error() string {
	return fmt.Sprintf("eligibility already checked on %s, next check allowed on %s",
		e.LastCheckedOn.Format(time.DateOnly), e.NextEligibleOn.Format(time.DateOnly))
}

// NewThrottleError creates a new ThrottleError
func NewThrottleError(lastCheckedOn, nextEligibleOn time.Time) *ThrottleError {
	return &ThrottleError{
		LastCheckedOn:  lastCheckedOn,
		NextEligibleOn: nextEligibleOn,
	}
}
