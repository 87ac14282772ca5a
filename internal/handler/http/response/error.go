package response

import (
	"errors"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A punch rejection is user-correctable, not a fault; the message is
	// surfaced verbatim.
	var rejection *punch.RejectionError
	if errors.As(err, &rejection) {
		PunchRejected(w, rejection.Reason)
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrPunchConflict):
		Conflict(w, "A punch with the same timestamp already exists, please retry")
	case errors.Is(err, punch.ErrPunchForbidden):
		Forbidden(w, "Not allowed to punch for another employee")
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrRecordNotFound):
		NotFound(w, "Daily time record not found")

	// Default. Contract errors (unknown record type, invalid schedule) land
	// here on purpose: they are bugs, not client mistakes.
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
