package timesheet

import "github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"

// Summarize reduces daily records into period totals and the net balance
// (overtime minus missing). Days are already floored to whole minutes, so the
// reduction is a plain field-wise sum: totals always equal the sum of the
// rows they cover. An empty input yields all zeros.
func Summarize(rows []timesheet.DailyTimeRecord) (timesheet.PeriodTotals, int) {
	totals := timesheet.PeriodTotals{}
	for _, row := range rows {
		totals.WorkedMinutes += row.WorkedMinutes
		totals.OvertimeMinutes += row.OvertimeMinutes
		totals.MissingMinutes += row.MissingMinutes
		totals.BreakMinutes += row.BreakMinutes
		totals.Days++
	}
	return totals, totals.OvertimeMinutes - totals.MissingMinutes
}
