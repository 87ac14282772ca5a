package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/go-chi/jwtauth/v5"
)

type TimesheetServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	cfg config.AttendanceConfig
}

// GetDailyRecord implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) GetDailyRecord(ctx context.Context, req timesheet.DailyRecordRequest) (timesheet.DailyTimeRecord, error) {
	if err := req.Validate(); err != nil {
		return timesheet.DailyTimeRecord{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return timesheet.DailyTimeRecord{}, err
	}

	loc := t.location()
	day, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		return timesheet.DailyTimeRecord{}, fmt.Errorf("failed to parse date: %w", err)
	}

	emp, err := t.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return timesheet.DailyTimeRecord{}, fmt.Errorf("failed to fetch employee: %w", err)
	}

	events, err := t.PunchRepository.ListByEmployeeAndDay(ctx, req.EmployeeID, day, companyID)
	if err != nil {
		return timesheet.DailyTimeRecord{}, fmt.Errorf("failed to fetch punch events: %w", err)
	}

	record, err := Aggregate(day, events, t.scheduleFor(emp), time.Now().In(loc))
	if err != nil {
		return timesheet.DailyTimeRecord{}, fmt.Errorf("failed to aggregate daily record: %w", err)
	}

	record.EmployeeID = emp.ID
	record.EmployeeName = &emp.FullName
	return record, nil
}

// GetPeriodReport implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) GetPeriodReport(ctx context.Context, req timesheet.PeriodReportRequest) (timesheet.PeriodReport, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PeriodReport{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return timesheet.PeriodReport{}, err
	}

	loc := t.location()
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, loc)
	if err != nil {
		return timesheet.PeriodReport{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, loc)
	if err != nil {
		return timesheet.PeriodReport{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	var roster []employee.EmployeeRef
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		emp, err := t.EmployeeRepository.GetByID(ctx, *req.EmployeeID, companyID)
		if err != nil {
			return timesheet.PeriodReport{}, fmt.Errorf("failed to fetch employee: %w", err)
		}
		roster = []employee.EmployeeRef{emp}
	} else {
		roster, err = t.EmployeeRepository.ListActive(ctx, companyID, employee.RosterFilter{})
		if err != nil {
			return timesheet.PeriodReport{}, fmt.Errorf("failed to fetch roster: %w", err)
		}
	}

	now := time.Now().In(loc)
	rows := make([]timesheet.DailyTimeRecord, 0)
	for i := range roster {
		emp := &roster[i]

		events, err := t.PunchRepository.ListByEmployeeAndRange(ctx, emp.ID, start, end, companyID)
		if err != nil {
			return timesheet.PeriodReport{}, fmt.Errorf("failed to fetch punch events: %w", err)
		}

		// Only days with punches produce rows; an employee absent the whole
		// period contributes nothing to the totals.
		byDay := groupByDay(events, loc)
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			dayEvents, ok := byDay[day.Format("2006-01-02")]
			if !ok {
				continue
			}

			record, err := Aggregate(day, dayEvents, t.scheduleFor(*emp), now)
			if err != nil {
				return timesheet.PeriodReport{}, fmt.Errorf("failed to aggregate day %s: %w", day.Format("2006-01-02"), err)
			}

			record.EmployeeID = emp.ID
			name := emp.FullName
			record.EmployeeName = &name
			rows = append(rows, record)
		}
	}

	totals, netBalance := Summarize(rows)

	return timesheet.PeriodReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: now.Format(time.RFC3339),
		Rows:        rows,
		Totals:      totals,
		NetBalance:  netBalance,
	}, nil
}

func (t *TimesheetServiceImpl) scheduleFor(emp employee.EmployeeRef) int {
	if emp.ScheduleMinutes > 0 {
		return emp.ScheduleMinutes
	}
	return t.cfg.DefaultScheduleMinutes
}

func (t *TimesheetServiceImpl) location() *time.Location {
	loc, err := time.LoadLocation(t.cfg.ReportTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func groupByDay(events []punch.PunchEvent, loc *time.Location) map[string][]punch.PunchEvent {
	byDay := make(map[string][]punch.PunchEvent)
	for _, e := range events {
		if e.RecordedAt.IsZero() {
			continue
		}
		key := e.RecordedAt.In(loc).Format("2006-01-02")
		byDay[key] = append(byDay[key], e)
	}
	return byDay
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

func NewTimesheetService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	cfg config.AttendanceConfig,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		cfg:                cfg,
	}
}
