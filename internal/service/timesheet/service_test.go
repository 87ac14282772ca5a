package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPunchRepo struct {
	events []punch.PunchEvent
}

func (s *stubPunchRepo) Append(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	return event, nil
}

func (s *stubPunchRepo) ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time, companyID string) ([]punch.PunchEvent, error) {
	next := day.AddDate(0, 0, 1)
	var out []punch.PunchEvent
	for _, e := range s.events {
		if e.EmployeeID == employeeID && !e.RecordedAt.Before(day) && e.RecordedAt.Before(next) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubPunchRepo) ListByCompanyAndDay(ctx context.Context, companyID string, day time.Time) ([]punch.PunchEvent, error) {
	return s.events, nil
}

func (s *stubPunchRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]punch.PunchEvent, error) {
	var out []punch.PunchEvent
	for _, e := range s.events {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubPunchRepo) LastRecordTime(ctx context.Context, employeeID string, companyID string) (*time.Time, error) {
	return nil, nil
}

func (s *stubPunchRepo) List(ctx context.Context, filter punch.PunchFilter, companyID string) ([]punch.PunchEvent, int64, error) {
	return s.events, int64(len(s.events)), nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.EmployeeRef
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.EmployeeRef, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.EmployeeRef{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context, companyID string, filter employee.RosterFilter) ([]employee.EmployeeRef, error) {
	var out []employee.EmployeeRef
	for _, emp := range s.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (s *stubEmployeeRepo) ListCompanyIDs(ctx context.Context) ([]string, error) {
	return []string{"co-1"}, nil
}

func reportContext(t *testing.T) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", "1h")
	employeeID := "e1"
	tokenString, _, err := jwtService.GenerateAccessToken("u-1", &employeeID, "co-1", "hr")
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func punchOn(employeeID string, recordType punch.RecordType, day, hour int) punch.PunchEvent {
	return punch.PunchEvent{
		EmployeeID: employeeID,
		CompanyID:  "co-1",
		RecordType: recordType,
		RecordedAt: time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC),
	}
}

func TestTimesheetService_GetPeriodReport_GroupsByDay(t *testing.T) {
	punchRepo := &stubPunchRepo{events: []punch.PunchEvent{
		punchOn("e1", punch.TypeClockIn, 2, 8),
		punchOn("e1", punch.TypeClockOut, 2, 16),
		punchOn("e1", punch.TypeClockIn, 3, 8),
		punchOn("e1", punch.TypeClockOut, 3, 17),
		// Day 4 has no punches at all.
		punchOn("e1", punch.TypeClockIn, 5, 9),
		punchOn("e1", punch.TypeClockOut, 5, 17),
	}}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.EmployeeRef{
		"e1": {ID: "e1", CompanyID: "co-1", FullName: "Ana Souza", ScheduleMinutes: 480, Active: true},
	}}
	service := NewTimesheetService(punchRepo, employeeRepo, config.AttendanceConfig{
		DefaultScheduleMinutes: 480,
		ReportTimezone:         "UTC",
	})

	employeeID := "e1"
	report, err := service.GetPeriodReport(reportContext(t), timesheet.PeriodReportRequest{
		EmployeeID: &employeeID,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
	})
	require.NoError(t, err)

	// Three days with punches produce three rows; absent days are not rows.
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "2026-03-02", report.Rows[0].DateStr)
	assert.Equal(t, "2026-03-03", report.Rows[1].DateStr)
	assert.Equal(t, "2026-03-05", report.Rows[2].DateStr)

	// 480 + 540 + 480 worked; only the 9-hour day has overtime.
	assert.Equal(t, 1500, report.Totals.WorkedMinutes)
	assert.Equal(t, 60, report.Totals.OvertimeMinutes)
	assert.Equal(t, 0, report.Totals.MissingMinutes)
	assert.Equal(t, 3, report.Totals.Days)
	assert.Equal(t, 60, report.NetBalance)
}

func TestTimesheetService_GetPeriodReport_ForgottenClockOutDoesNotInflateTotals(t *testing.T) {
	punchRepo := &stubPunchRepo{events: []punch.PunchEvent{
		punchOn("e1", punch.TypeClockIn, 2, 8),
		punchOn("e1", punch.TypeClockOut, 2, 16),
		// Day 3: clock_in with no clock_out, queried months later.
		punchOn("e1", punch.TypeClockIn, 3, 8),
	}}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.EmployeeRef{
		"e1": {ID: "e1", CompanyID: "co-1", FullName: "Ana Souza", ScheduleMinutes: 480, Active: true},
	}}
	service := NewTimesheetService(punchRepo, employeeRepo, config.AttendanceConfig{
		DefaultScheduleMinutes: 480,
		ReportTimezone:         "UTC",
	})

	employeeID := "e1"
	report, err := service.GetPeriodReport(reportContext(t), timesheet.PeriodReportRequest{
		EmployeeID: &employeeID,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
	})
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	open := report.Rows[1]
	assert.Equal(t, "2026-03-03", open.DateStr)
	// The dangling interval contributes nothing and the day is flagged.
	assert.Equal(t, 0, open.WorkedMinutes)
	assert.True(t, open.Incomplete)
	assert.False(t, open.InProgress)

	// Period totals hold only the closed day plus the open day's absence.
	assert.Equal(t, 480, report.Totals.WorkedMinutes)
	assert.Equal(t, 0, report.Totals.OvertimeMinutes)
	assert.Equal(t, 480, report.Totals.MissingMinutes)
	assert.Equal(t, -480, report.NetBalance)
}

func TestTimesheetService_GetPeriodReport_ValidatesRange(t *testing.T) {
	service := NewTimesheetService(&stubPunchRepo{}, &stubEmployeeRepo{}, config.AttendanceConfig{
		DefaultScheduleMinutes: 480,
		ReportTimezone:         "UTC",
	})

	_, err := service.GetPeriodReport(reportContext(t), timesheet.PeriodReportRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-01",
	})
	require.Error(t, err)
}

func TestTimesheetService_GetDailyRecord_UsesCompanyDefaultSchedule(t *testing.T) {
	punchRepo := &stubPunchRepo{events: []punch.PunchEvent{
		punchOn("e1", punch.TypeClockIn, 2, 8),
		punchOn("e1", punch.TypeClockOut, 2, 14),
	}}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.EmployeeRef{
		// No per-employee schedule: falls back to the company default.
		"e1": {ID: "e1", CompanyID: "co-1", FullName: "Ana Souza", Active: true},
	}}
	service := NewTimesheetService(punchRepo, employeeRepo, config.AttendanceConfig{
		DefaultScheduleMinutes: 420,
		ReportTimezone:         "UTC",
	})

	record, err := service.GetDailyRecord(reportContext(t), timesheet.DailyRecordRequest{
		EmployeeID: "e1",
		Date:       "2026-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 360, record.WorkedMinutes)
	assert.Equal(t, 60, record.MissingMinutes)
	require.NotNil(t, record.EmployeeName)
	assert.Equal(t, "Ana Souza", *record.EmployeeName)
}
