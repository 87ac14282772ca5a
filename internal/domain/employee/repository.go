package employee

import "context"

// RosterFilter narrows roster reads for presence and reporting queries.
type RosterFilter struct {
	Department *string
}

// EmployeeRepository defines the read-only roster access the attendance
// engine needs. All methods take companyID to prevent cross-company reads.
type EmployeeRepository interface {
	// GetByID retrieves one employee with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (EmployeeRef, error)

	// ListActive retrieves the active roster of a company, optionally
	// filtered by department.
	ListActive(ctx context.Context, companyID string, filter RosterFilter) ([]EmployeeRef, error)

	// ListCompanyIDs returns all company IDs that have active employees.
	// Used by scheduled jobs that sweep every tenant.
	ListCompanyIDs(ctx context.Context) ([]string, error)
}
