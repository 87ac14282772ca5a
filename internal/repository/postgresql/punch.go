package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type punchRepository struct {
	db *database.DB
}

const punchColumns = `
	p.id, p.employee_id, p.company_id, p.record_type, p.recorded_at,
	p.location_address, p.source, p.created_at
`

// Append implements punch.PunchRepository.
//
// The punch_events table carries a unique (employee_id, recorded_at)
// constraint; a violation maps to punch.ErrPunchConflict so the service can
// retry.
func (r *punchRepository) Append(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (
			id, employee_id, company_id, record_type, recorded_at,
			location_address, source
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.CompanyID,
		event.RecordType,
		event.RecordedAt,
		event.LocationAddress,
		event.Source,
	).Scan(&event.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return punch.PunchEvent{}, punch.ErrPunchConflict
		}
		return punch.PunchEvent{}, fmt.Errorf("failed to append punch event: %w", err)
	}

	return event, nil
}

// ListByEmployeeAndDay implements punch.PunchRepository.
func (r *punchRepository) ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time, companyID string) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events p
		WHERE p.employee_id = $1
		  AND p.company_id = $2
		  AND p.recorded_at >= $3
		  AND p.recorded_at < $4
		ORDER BY p.recorded_at ASC
	`

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	return scanPunchEvents(rows)
}

// ListByCompanyAndDay implements punch.PunchRepository.
func (r *punchRepository) ListByCompanyAndDay(ctx context.Context, companyID string, day time.Time) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events p
		WHERE p.company_id = $1
		  AND p.recorded_at >= $2
		  AND p.recorded_at < $3
		ORDER BY p.recorded_at ASC
	`

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	return scanPunchEvents(rows)
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events p
		WHERE p.employee_id = $1
		  AND p.company_id = $2
		  AND p.recorded_at >= $3
		  AND p.recorded_at < $4
		ORDER BY p.recorded_at ASC
	`

	rangeStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	rangeEnd := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)

	rows, err := q.Query(ctx, query, employeeID, companyID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	return scanPunchEvents(rows)
}

// LastRecordTime implements punch.PunchRepository.
func (r *punchRepository) LastRecordTime(ctx context.Context, employeeID string, companyID string) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT recorded_at
		FROM punch_events
		WHERE employee_id = $1
		  AND company_id = $2
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	var recordedAt time.Time
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(&recordedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last record time: %w", err)
	}

	return &recordedAt, nil
}

// List implements punch.PunchRepository.
func (r *punchRepository) List(ctx context.Context, filter punch.PunchFilter, companyID string) ([]punch.PunchEvent, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := "WHERE p.company_id = $1"
	args := []interface{}{companyID}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		args = append(args, *filter.EmployeeID)
		conditions += fmt.Sprintf(" AND p.employee_id = $%d", len(args))
	}
	if filter.Date != nil && *filter.Date != "" {
		args = append(args, *filter.Date)
		conditions += fmt.Sprintf(" AND p.recorded_at::date = $%d", len(args))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		conditions += fmt.Sprintf(" AND p.recorded_at::date >= $%d", len(args))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		conditions += fmt.Sprintf(" AND p.recorded_at::date <= $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM punch_events p " + conditions
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punch events: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT `+punchColumns+`, e.full_name
		FROM punch_events p
		JOIN employees e ON e.id = p.employee_id
		%s
		ORDER BY p.recorded_at DESC
		LIMIT $%d OFFSET $%d
	`, conditions, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.PunchEvent
	for rows.Next() {
		var e punch.PunchEvent
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.CompanyID, &e.RecordType, &e.RecordedAt,
			&e.LocationAddress, &e.Source, &e.CreatedAt, &e.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate punch events: %w", err)
	}

	return events, total, nil
}

func scanPunchEvents(rows pgx.Rows) ([]punch.PunchEvent, error) {
	var events []punch.PunchEvent
	for rows.Next() {
		var e punch.PunchEvent
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.CompanyID, &e.RecordType, &e.RecordedAt,
			&e.LocationAddress, &e.Source, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punch events: %w", err)
	}
	return events, nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
