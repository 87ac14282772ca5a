package punch

import "errors"

// Punch domain errors
var (
	// ErrPunchConflict signals a write conflict on (employee_id, recorded_at).
	// It is retryable: the caller should back off and resubmit.
	ErrPunchConflict = errors.New("a punch with the same timestamp already exists for this employee")

	ErrPunchNotFound = errors.New("punch record not found")

	// ErrPunchForbidden signals an attempt to punch for another employee
	// without an admin or hr role.
	ErrPunchForbidden = errors.New("not allowed to punch for another employee")

	// ErrUnknownRecordType indicates a caller bug: a record type outside the
	// closed set reached the engine.
	ErrUnknownRecordType = errors.New("unknown punch record type")
)

// RejectionError is a user-correctable punch rejection: the duplicate guard
// or the clock state machine refused the action. Its message is surfaced to
// the caller verbatim and is never logged as a system fault.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

// NewRejection wraps a guard/validator message into a RejectionError.
func NewRejection(reason string) error {
	return &RejectionError{Reason: reason}
}
