package timesheet

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// RecordStatus is the approval state of a daily time record. The aggregator
// only ever fills StatusPending; transitions belong to the approval workflow.
type RecordStatus string

const (
	StatusPending  RecordStatus = "pending"
	StatusApproved RecordStatus = "approved"
	StatusRejected RecordStatus = "rejected"
	StatusAdjusted RecordStatus = "adjusted"
)

// DailyTimeRecord is one employee-day of computed minutes. All minute fields
// are non-negative magnitudes; direction is carried by the field name
// (overtime vs missing), never by a sign bit.
type DailyTimeRecord struct {
	Date            time.Time    `json:"-"`
	DateStr         string       `json:"date"`
	EmployeeID      string       `json:"employee_id"`
	EmployeeName    *string      `json:"employee_name,omitempty"`
	ClockIn         *string      `json:"clock_in,omitempty"`
	ClockOut        *string      `json:"clock_out,omitempty"`
	WorkedMinutes   int          `json:"worked_minutes"`
	OvertimeMinutes int          `json:"overtime_minutes"`
	MissingMinutes  int          `json:"missing_minutes"`
	BreakMinutes    int          `json:"break_minutes"`
	Status          RecordStatus `json:"status"`

	// InProgress marks a day whose last interval is still open: worked
	// minutes are partial and overtime/missing are suppressed.
	InProgress bool `json:"in_progress"`
	// Incomplete flags data-quality problems (e.g. malformed timestamps were
	// excluded). The record is still returned, never dropped.
	Incomplete bool `json:"incomplete,omitempty"`
}

// ========================================
// PERIOD REPORT DTOs
// ========================================

type PeriodReportRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"` // nil means whole company
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

func (r *PeriodReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}

	if r.EndDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if r.StartDate != "" && r.EndDate != "" {
		startDate, startOK := validator.IsValidDate(r.StartDate)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}

		endDate, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}

		if startOK && endOK && startDate.After(endDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodTotals are the field-wise sums over the report rows.
type PeriodTotals struct {
	WorkedMinutes   int `json:"worked_minutes"`
	OvertimeMinutes int `json:"overtime_minutes"`
	MissingMinutes  int `json:"missing_minutes"`
	BreakMinutes    int `json:"break_minutes"`
	Days            int `json:"days"`
}

type PeriodReport struct {
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	GeneratedAt string            `json:"generated_at"`
	Rows        []DailyTimeRecord `json:"rows"`
	Totals      PeriodTotals      `json:"totals"`
	// NetBalance is overtime minus missing over the period; may be negative.
	NetBalance int `json:"net_balance"`
}

// ========================================
// DAILY RECORD QUERY DTOs
// ========================================

type DailyRecordRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
}

func (r *DailyRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Date == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
