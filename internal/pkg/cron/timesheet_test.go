package cron

import (
	"context"
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	events []punch.PunchEvent
}

func (f *fakePunchRepo) Append(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	return event, nil
}

func (f *fakePunchRepo) ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time, companyID string) ([]punch.PunchEvent, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var out []punch.PunchEvent
	for _, e := range f.events {
		if e.EmployeeID == employeeID && !e.RecordedAt.Before(start) && e.RecordedAt.Before(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListByCompanyAndDay(ctx context.Context, companyID string, day time.Time) ([]punch.PunchEvent, error) {
	return f.events, nil
}

func (f *fakePunchRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]punch.PunchEvent, error) {
	return f.events, nil
}

func (f *fakePunchRepo) LastRecordTime(ctx context.Context, employeeID string, companyID string) (*time.Time, error) {
	return nil, nil
}

func (f *fakePunchRepo) List(ctx context.Context, filter punch.PunchFilter, companyID string) ([]punch.PunchEvent, int64, error) {
	return f.events, int64(len(f.events)), nil
}

type fakeEmployeeRepo struct {
	roster []employee.EmployeeRef
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.EmployeeRef, error) {
	for _, emp := range f.roster {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.EmployeeRef{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, companyID string, filter employee.RosterFilter) ([]employee.EmployeeRef, error) {
	return f.roster, nil
}

func (f *fakeEmployeeRepo) ListCompanyIDs(ctx context.Context) ([]string, error) {
	return []string{"co-1"}, nil
}

type recordingDailyRepo struct {
	upserts []timesheet.DailyTimeRecord
}

func (r *recordingDailyRepo) Upsert(ctx context.Context, record timesheet.DailyTimeRecord, companyID string) error {
	r.upserts = append(r.upserts, record)
	return nil
}

func eventAt(employeeID string, recordType punch.RecordType, t time.Time) punch.PunchEvent {
	return punch.PunchEvent{
		EmployeeID: employeeID,
		CompanyID:  "co-1",
		RecordType: recordType,
		RecordedAt: t,
	}
}

func TestTimesheetJobs_Materialize_SkipsOpenDays(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	// e1 closed the day; e2 is still clocked in when the job runs.
	punchRepo := &fakePunchRepo{events: []punch.PunchEvent{
		eventAt("e1", punch.TypeClockIn, day.Add(8*time.Hour)),
		eventAt("e1", punch.TypeClockOut, day.Add(16*time.Hour)),
		eventAt("e2", punch.TypeClockIn, day.Add(20*time.Hour)),
	}}
	employeeRepo := &fakeEmployeeRepo{roster: []employee.EmployeeRef{
		{ID: "e1", CompanyID: "co-1", FullName: "Ana Souza", ScheduleMinutes: 480, Active: true},
		{ID: "e2", CompanyID: "co-1", FullName: "Bruno Lima", ScheduleMinutes: 480, Active: true},
	}}
	dailyRepo := &recordingDailyRepo{}

	jobs := &TimesheetJobs{
		punchRepo:       punchRepo,
		employeeRepo:    employeeRepo,
		dailyRecordRepo: dailyRepo,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
		cfg: config.AttendanceConfig{DefaultScheduleMinutes: 480, ReportTimezone: "UTC"},
	}

	// Job runs while the day is still open for e2.
	now := day.Add(22 * time.Hour)
	require.NoError(t, jobs.materialize(context.Background(), day, now))

	require.Len(t, dailyRepo.upserts, 1)
	assert.Equal(t, "e1", dailyRepo.upserts[0].EmployeeID)
	assert.Equal(t, 480, dailyRepo.upserts[0].WorkedMinutes)
	assert.False(t, dailyRepo.upserts[0].InProgress)
}

func TestTimesheetJobs_Materialize_PersistsForgottenClockOutAsIncomplete(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	punchRepo := &fakePunchRepo{events: []punch.PunchEvent{
		eventAt("e1", punch.TypeClockIn, day.Add(8 * time.Hour)),
	}}
	employeeRepo := &fakeEmployeeRepo{roster: []employee.EmployeeRef{
		{ID: "e1", CompanyID: "co-1", FullName: "Ana Souza", ScheduleMinutes: 480, Active: true},
	}}
	dailyRepo := &recordingDailyRepo{}

	jobs := &TimesheetJobs{
		punchRepo:       punchRepo,
		employeeRepo:    employeeRepo,
		dailyRecordRepo: dailyRepo,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
		cfg: config.AttendanceConfig{DefaultScheduleMinutes: 480, ReportTimezone: "UTC"},
	}

	// The nightly run happens after the day ended: the dangling clock_in is
	// materialized as an incomplete zero-minute day, never as in-progress.
	now := day.AddDate(0, 0, 1).Add(1 * time.Hour)
	require.NoError(t, jobs.materialize(context.Background(), day, now))

	require.Len(t, dailyRepo.upserts, 1)
	record := dailyRepo.upserts[0]
	assert.Equal(t, 0, record.WorkedMinutes)
	assert.True(t, record.Incomplete)
	assert.False(t, record.InProgress)
}
