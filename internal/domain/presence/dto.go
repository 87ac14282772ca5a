package presence

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// Status is the live, derived work state of an employee at query time.
type Status string

const (
	StatusWorking Status = "working"
	StatusBreak   Status = "break"
	StatusRemote  Status = "remote"
	StatusAbsent  Status = "absent"
)

// SortPriority orders statuses for display: working < break < remote <
// absent. Display convenience only, it carries no semantic meaning beyond
// sort stability.
func (s Status) SortPriority() int {
	switch s {
	case StatusWorking:
		return 0
	case StatusBreak:
		return 1
	case StatusRemote:
		return 2
	case StatusAbsent:
		return 3
	}
	return 4
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWorking, StatusBreak, StatusRemote, StatusAbsent:
		return true
	}
	return false
}

// EmployeePresence is a per-employee snapshot. It is recomputed on every
// query and never stored.
type EmployeePresence struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   *string `json:"department,omitempty"`
	Status       Status  `json:"status"`
	ClockIn      *string `json:"clock_in,omitempty"` // first clock-in of the day
	LastAction   *string `json:"last_action,omitempty"`
	LastActionAt *string `json:"last_action_at,omitempty"`
}

// ========================================
// PRESENCE QUERY DTOs
// ========================================

type PresenceFilter struct {
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty"`
	Limit      int     `json:"limit"`
}

func (f *PresenceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: working, break, remote, absent",
		})
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 100 // Default limit
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PresenceSummary struct {
	Working int `json:"working"`
	Break   int `json:"break"`
	Remote  int `json:"remote"`
	Absent  int `json:"absent"`
}

type PresenceResponse struct {
	Date      string             `json:"date"`
	Summary   PresenceSummary    `json:"summary"`
	Employees []EmployeePresence `json:"employees"`
}
