package employee

import "time"

// EmployeeRef is the roster view the attendance engine consumes. The full
// employee record (documents, contract, bank data) is owned by the employee
// registry; punches and reports only reference it.
type EmployeeRef struct {
	ID         string
	CompanyID  string
	FullName   string
	Department *string
	// ScheduleMinutes is the scheduled working minutes for a regular day.
	// Zero means "use the company default". Split shifts would extend this to
	// a list of scheduled blocks; a single daily total is all the engine
	// defines today.
	ScheduleMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
