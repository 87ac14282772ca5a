package postgresql

import (
	"context"
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type dailyRecordRepository struct {
	db *database.DB
}

// Upsert implements timesheet.DailyRecordRepository.
//
// An existing row keeps its approval status: the nightly materialization only
// refreshes the computed minutes, never undoes an approval.
func (r *dailyRecordRepository) Upsert(ctx context.Context, record timesheet.DailyTimeRecord, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_time_records (
			employee_id, company_id, date,
			clock_in, clock_out,
			worked_minutes, overtime_minutes, missing_minutes, break_minutes,
			status, incomplete
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			worked_minutes = EXCLUDED.worked_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			missing_minutes = EXCLUDED.missing_minutes,
			break_minutes = EXCLUDED.break_minutes,
			incomplete = EXCLUDED.incomplete,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		record.EmployeeID,
		companyID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.WorkedMinutes,
		record.OvertimeMinutes,
		record.MissingMinutes,
		record.BreakMinutes,
		record.Status,
		record.Incomplete,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily time record: %w", err)
	}

	return nil
}

func NewDailyRecordRepository(db *database.DB) timesheet.DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}
