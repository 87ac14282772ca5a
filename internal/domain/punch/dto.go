package punch

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type RegisterPunchRequest struct {
	EmployeeID      string  `json:"employee_id"`
	RecordType      string  `json:"record_type"`
	RecordedAt      *string `json:"recorded_at,omitempty"` // RFC3339; defaults to server time
	LocationAddress *string `json:"location_address,omitempty"`
	Source          string  `json:"source,omitempty"` // defaults to web

	// Parsed during Validate
	ParsedRecordedAt *time.Time `json:"-"`
}

func (r *RegisterPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !RecordType(r.RecordType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "record_type",
			Message: "record_type must be one of: clock_in, clock_out, break_start, break_end",
		})
	}

	if r.RecordedAt != nil && *r.RecordedAt != "" {
		t, ok := validator.IsValidDateTime(*r.RecordedAt)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "recorded_at",
				Message: "recorded_at must be an RFC3339 timestamp",
			})
		} else {
			r.ParsedRecordedAt = &t
		}
	}

	if r.Source == "" {
		r.Source = string(SourceWeb) // Default source
	}
	if !Source(r.Source).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be one of: web, mobile, biometric, manual, import",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	RecordType      string  `json:"record_type"`
	RecordedAt      string  `json:"recorded_at"`
	LocationAddress *string `json:"location_address,omitempty"`
	Source          string  `json:"source"`
	DayStatus       string  `json:"day_status"`
	CreatedAt       string  `json:"created_at"`
}

type PunchFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PunchFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50 // Default limit
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 200",
		})
	}

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListPunchResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Punches    []PunchResponse `json:"punches"`
}
