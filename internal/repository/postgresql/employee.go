package postgresql

import (
	"context"
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.EmployeeRef, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, full_name, department, schedule_minutes, active,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
		  AND company_id = $2
		LIMIT 1
	`

	var emp employee.EmployeeRef
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.CompanyID, &emp.FullName, &emp.Department, &emp.ScheduleMinutes,
		&emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeRef{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeRef{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context, companyID string, filter employee.RosterFilter) ([]employee.EmployeeRef, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, full_name, department, schedule_minutes, active,
			   created_at, updated_at
		FROM employees
		WHERE company_id = $1
		  AND active = TRUE
	`
	args := []interface{}{companyID}

	if filter.Department != nil && *filter.Department != "" {
		args = append(args, *filter.Department)
		query += fmt.Sprintf(" AND department = $%d", len(args))
	}
	query += " ORDER BY full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var roster []employee.EmployeeRef
	for rows.Next() {
		var emp employee.EmployeeRef
		err := rows.Scan(
			&emp.ID, &emp.CompanyID, &emp.FullName, &emp.Department, &emp.ScheduleMinutes,
			&emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		roster = append(roster, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return roster, nil
}

// ListCompanyIDs implements employee.EmployeeRepository.
func (r *employeeRepository) ListCompanyIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT company_id
		FROM employees
		WHERE active = TRUE
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list company ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate company ids: %w", err)
	}

	return ids, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
