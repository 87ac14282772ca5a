package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/presence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/go-chi/jwtauth/v5"
)

type PresenceServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	cfg config.AttendanceConfig
}

// GetPresence implements presence.PresenceService.
func (p *PresenceServiceImpl) GetPresence(ctx context.Context, filter presence.PresenceFilter) (presence.PresenceResponse, error) {
	if err := filter.Validate(); err != nil {
		return presence.PresenceResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return presence.PresenceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return presence.PresenceResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	loc, err := time.LoadLocation(p.cfg.ReportTimezone)
	if err != nil {
		loc = time.UTC
	}

	day := time.Now().In(loc)
	if filter.Date != nil && *filter.Date != "" {
		day, err = time.ParseInLocation("2006-01-02", *filter.Date, loc)
		if err != nil {
			return presence.PresenceResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}

	roster, err := p.EmployeeRepository.ListActive(ctx, companyID, employee.RosterFilter{
		Department: filter.Department,
	})
	if err != nil {
		return presence.PresenceResponse{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	events, err := p.PunchRepository.ListByCompanyAndDay(ctx, companyID, day)
	if err != nil {
		return presence.PresenceResponse{}, fmt.Errorf("failed to fetch punch events: %w", err)
	}

	rows := Classify(events, roster, p.cfg.RemoteKeyword)

	// Summary counts cover the whole roster; status filter and limit only
	// narrow the returned rows.
	summary := presence.PresenceSummary{}
	for _, row := range rows {
		switch row.Status {
		case presence.StatusWorking:
			summary.Working++
		case presence.StatusBreak:
			summary.Break++
		case presence.StatusRemote:
			summary.Remote++
		case presence.StatusAbsent:
			summary.Absent++
		}
	}

	if filter.Status != nil && *filter.Status != "" {
		filtered := make([]presence.EmployeePresence, 0, len(rows))
		for _, row := range rows {
			if string(row.Status) == *filter.Status {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}

	return presence.PresenceResponse{
		Date:      day.Format("2006-01-02"),
		Summary:   summary,
		Employees: rows,
	}, nil
}

func NewPresenceService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	cfg config.AttendanceConfig,
) presence.PresenceService {
	return &PresenceServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		cfg:                cfg,
	}
}
