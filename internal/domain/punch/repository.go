package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for the append-only punch event log.
// All methods include companyID to prevent cross-company data access.
//
// Append must enforce a unique (employee_id, recorded_at) constraint and
// return ErrPunchConflict when it is violated; combined with the per-employee
// write lock in the service this keeps concurrent punches race-free.
type PunchRepository interface {
	// Append stores a new punch event. Events are never updated or deleted.
	Append(ctx context.Context, event PunchEvent) (PunchEvent, error)

	// ListByEmployeeAndDay retrieves one employee's events for one calendar
	// day, ascending by recorded_at.
	ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time, companyID string) ([]PunchEvent, error)

	// ListByCompanyAndDay retrieves all events of a tenant for one calendar
	// day, ascending by recorded_at. Used by the presence classifier.
	ListByCompanyAndDay(ctx context.Context, companyID string, day time.Time) ([]PunchEvent, error)

	// ListByEmployeeAndRange retrieves one employee's events over a date
	// range (inclusive), ascending by recorded_at.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]PunchEvent, error)

	// LastRecordTime returns the recorded_at of the employee's most recent
	// event, or nil when the employee has no events. Feeds the duplicate guard.
	LastRecordTime(ctx context.Context, employeeID string, companyID string) (*time.Time, error)

	// List retrieves punch events with filters and pagination, for audit views.
	List(ctx context.Context, filter PunchFilter, companyID string) ([]PunchEvent, int64, error)
}
