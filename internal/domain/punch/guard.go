package punch

import (
	"fmt"
	"math"
	"time"
)

// DuplicateCheck is the outcome of the duplicate-submission guard.
type DuplicateCheck struct {
	IsDuplicate bool
	Message     string
}

// CheckDuplicate rejects a punch that lands within window of the employee's
// previous punch, regardless of action type. It guards against double-taps
// and double-submits only; semantic legality is ValidateAction's job. A nil
// lastRecordTime means no prior punch exists, which is never a duplicate.
//
// The caller should run this before ValidateAction so a rapid double-click
// gets the debounce message instead of a confusing state error.
func CheckDuplicate(lastRecordTime *time.Time, now time.Time, window time.Duration) DuplicateCheck {
	if lastRecordTime == nil {
		return DuplicateCheck{}
	}

	elapsed := now.Sub(*lastRecordTime)
	if elapsed >= window {
		return DuplicateCheck{}
	}

	wait := int(math.Ceil((window - elapsed).Seconds()))
	return DuplicateCheck{
		IsDuplicate: true,
		Message:     fmt.Sprintf("punch ignored: a punch was already recorded %d seconds ago, wait %d more seconds", int(elapsed.Seconds()), wait),
	}
}
