package timesheet

import "context"

// TimesheetService is the read-side reporting surface of the attendance
// engine: per-day minute computation and period reduction.
type TimesheetService interface {
	// GetDailyRecord computes one employee-day from its punch events.
	GetDailyRecord(ctx context.Context, req DailyRecordRequest) (DailyTimeRecord, error)

	// GetPeriodReport aggregates each day in the range and reduces the rows
	// into totals and a net balance. Days with data-quality problems are
	// flagged in-band, never dropped.
	GetPeriodReport(ctx context.Context, req PeriodReportRequest) (PeriodReport, error)
}

// DailyRecordRepository persists materialized daily records for reporting
// caches. Live queries always recompute from punches; this store only feeds
// export collaborators.
type DailyRecordRepository interface {
	// Upsert writes the computed minutes for one employee-day, preserving an
	// existing row's approval status.
	Upsert(ctx context.Context, record DailyTimeRecord, companyID string) error
}
