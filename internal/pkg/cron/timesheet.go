package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	domaintimesheet "github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	"github.com/pontolabs/ponto-backend-go/internal/service/timesheet"
)

// TimesheetJobs materializes closed days into daily_time_records so period
// exports read a stable snapshot instead of recomputing weeks of punches.
// Live daily and period queries still compute from the event log.
type TimesheetJobs struct {
	punchRepo       punch.PunchRepository
	employeeRepo    employee.EmployeeRepository
	dailyRecordRepo domaintimesheet.DailyRecordRepository
	runInTx         func(ctx context.Context, fn func(ctx context.Context) error) error
	cfg             config.AttendanceConfig
}

func NewTimesheetJobs(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	dailyRecordRepo domaintimesheet.DailyRecordRepository,
	db *database.DB,
	cfg config.AttendanceConfig,
) *TimesheetJobs {
	return &TimesheetJobs{
		punchRepo:       punchRepo,
		employeeRepo:    employeeRepo,
		dailyRecordRepo: dailyRecordRepo,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		cfg: cfg,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("materialize_daily_records", 1*time.Hour, j.MaterializeDailyRecords)
}

// MaterializeDailyRecords aggregates yesterday for every active employee of
// every company and upserts the result. Runs hourly but only acts in the
// first hour after midnight in the report timezone, when yesterday is closed.
func (j *TimesheetJobs) MaterializeDailyRecords(ctx context.Context) error {
	loc, err := time.LoadLocation(j.cfg.ReportTimezone)
	if err != nil {
		loc = time.UTC
	}

	now := time.Now().In(loc)
	if now.Hour() != 1 {
		return nil
	}

	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -1)
	return j.materialize(ctx, yesterday, now)
}

func (j *TimesheetJobs) materialize(ctx context.Context, day, now time.Time) error {
	slog.Info("Cron: Starting daily record materialization", "date", day.Format("2006-01-02"))

	companyIDs, err := j.employeeRepo.ListCompanyIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	materialized := 0
	for _, companyID := range companyIDs {
		roster, err := j.employeeRepo.ListActive(ctx, companyID, employee.RosterFilter{})
		if err != nil {
			slog.Error("Cron: Failed to fetch roster", "company_id", companyID, "error", err)
			continue
		}

		// One transaction per company: a tenant's snapshot is either fully
		// refreshed or untouched.
		err = j.runInTx(ctx, func(txCtx context.Context) error {
			for _, emp := range roster {
				events, err := j.punchRepo.ListByEmployeeAndDay(txCtx, emp.ID, day, companyID)
				if err != nil {
					return fmt.Errorf("fetch punches for %s: %w", emp.ID, err)
				}
				if len(events) == 0 {
					continue
				}

				schedule := emp.ScheduleMinutes
				if schedule <= 0 {
					schedule = j.cfg.DefaultScheduleMinutes
				}

				record, err := timesheet.Aggregate(day, events, schedule, now)
				if err != nil {
					return fmt.Errorf("aggregate day for %s: %w", emp.ID, err)
				}
				if record.InProgress {
					// An open day is never persisted; the next run picks it
					// up once it closes.
					continue
				}
				record.EmployeeID = emp.ID

				if err := j.dailyRecordRepo.Upsert(txCtx, record, companyID); err != nil {
					return fmt.Errorf("upsert daily record for %s: %w", emp.ID, err)
				}
				materialized++
			}
			return nil
		})
		if err != nil {
			slog.Error("Cron: Failed to materialize company", "company_id", companyID, "error", err)
		}
	}

	slog.Info("Cron: Daily record materialization completed", "records", materialized)
	return nil
}
