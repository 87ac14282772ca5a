package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/keymutex"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

const (
	appendMaxAttempts  = 3
	appendBaseInterval = 50 * time.Millisecond
)

type PunchServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	cfg   config.AttendanceConfig
	locks *keymutex.KeyMutex
}

// RegisterPunch implements punch.PunchService.
//
// The duplicate guard runs before the state machine, so a double-submit of an
// invalid action reads as "already recorded" rather than a state error. Both
// checks and the append run under a per-employee lock; two concurrent punches
// for the same employee always serialize, while other employees are
// unaffected.
func (p *PunchServiceImpl) RegisterPunch(ctx context.Context, req punch.RegisterPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return punch.PunchResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	if callerEmployeeID, ok := claims["employee_id"].(string); ok && callerEmployeeID != req.EmployeeID {
		role, _ := claims["role"].(string)
		if role != "admin" && role != "hr" {
			return punch.PunchResponse{}, punch.ErrPunchForbidden
		}
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if !emp.Active {
		return punch.PunchResponse{}, employee.ErrEmployeeInactive
	}

	recordedAt := time.Now().UTC()
	if req.ParsedRecordedAt != nil {
		recordedAt = req.ParsedRecordedAt.UTC()
	}

	lockKey := companyID + ":" + req.EmployeeID
	p.locks.Lock(lockKey)
	defer p.locks.Unlock(lockKey)

	lastRecordTime, err := p.PunchRepository.LastRecordTime(ctx, req.EmployeeID, companyID)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to fetch last record time: %w", err)
	}

	window := time.Duration(p.cfg.DebounceWindowMinutes) * time.Minute
	if dup := punch.CheckDuplicate(lastRecordTime, recordedAt, window); dup.IsDuplicate {
		return punch.PunchResponse{}, punch.NewRejection(dup.Message)
	}

	// The day window must match the one presence and timesheet reads use, so
	// the state machine sees the same calendar day the reports will. A punch
	// at 01:00 UTC can still belong to yesterday in the report timezone.
	events, err := p.PunchRepository.ListByEmployeeAndDay(ctx, req.EmployeeID, recordedAt.In(p.location()), companyID)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to fetch punch events: %w", err)
	}

	recordType := punch.RecordType(req.RecordType)
	status := punch.DayStatusOf(events)
	if check := punch.ValidateAction(status, recordType); !check.Valid {
		return punch.PunchResponse{}, punch.NewRejection(check.Message)
	}

	event := punch.PunchEvent{
		ID:              uuid.Must(uuid.NewV7()).String(),
		EmployeeID:      req.EmployeeID,
		CompanyID:       companyID,
		RecordType:      recordType,
		RecordedAt:      recordedAt,
		LocationAddress: req.LocationAddress,
		Source:          punch.Source(req.Source),
	}

	stored, err := p.appendWithRetry(ctx, event)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	statusAfter := punch.DayStatusOf(append(events, stored))

	return punch.PunchResponse{
		ID:              stored.ID,
		EmployeeID:      stored.EmployeeID,
		EmployeeName:    &emp.FullName,
		RecordType:      string(stored.RecordType),
		RecordedAt:      stored.RecordedAt.Format(time.RFC3339),
		LocationAddress: stored.LocationAddress,
		Source:          string(stored.Source),
		DayStatus:       string(statusAfter),
		CreatedAt:       stored.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (p *PunchServiceImpl) location() *time.Location {
	loc, err := time.LoadLocation(p.cfg.ReportTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// appendWithRetry retries the store conflict on (employee_id, recorded_at)
// with exponential backoff. Under the per-employee lock a conflict can only
// come from another instance, so a short retry usually resolves it.
func (p *PunchServiceImpl) appendWithRetry(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	var lastErr error
	for attempt := 0; attempt < appendMaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return punch.PunchEvent{}, ctx.Err()
			case <-time.After(appendBaseInterval << (attempt - 1)):
			}
		}

		stored, err := p.PunchRepository.Append(ctx, event)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, punch.ErrPunchConflict) {
			return punch.PunchEvent{}, fmt.Errorf("failed to append punch event: %w", err)
		}
		lastErr = err
	}
	return punch.PunchEvent{}, lastErr
}

// ListPunches implements punch.PunchService.
func (p *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchResponse, error) {
	if err := filter.Validate(); err != nil {
		return punch.ListPunchResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return punch.ListPunchResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	events, total, err := p.PunchRepository.List(ctx, filter, companyID)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punch events: %w", err)
	}

	punches := make([]punch.PunchResponse, 0, len(events))
	for _, e := range events {
		punches = append(punches, punch.PunchResponse{
			ID:              e.ID,
			EmployeeID:      e.EmployeeID,
			EmployeeName:    e.EmployeeName,
			RecordType:      string(e.RecordType),
			RecordedAt:      e.RecordedAt.Format(time.RFC3339),
			LocationAddress: e.LocationAddress,
			Source:          string(e.Source),
			CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		})
	}

	return punch.ListPunchResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Punches:    punches,
	}, nil
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	cfg config.AttendanceConfig,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		cfg:                cfg,
		locks:              keymutex.New(),
	}
}
