package timesheet

import (
	"sort"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

// Aggregate computes the minute totals of one employee-day from its punch
// events.
//
// Events are paired ascending: time between an active event (clock_in or
// break_end) and the next inactive one (break_start or clock_out) counts as
// worked, time between break_start and break_end counts as break. An interval
// still open at now accrues up to now and flags the record in progress, in
// which case overtime and missing are suppressed: an unfinished day is
// neither an absence nor overtime. Open intervals never accrue past the end
// of the day: once the day is over, a missing clock_out counts only the
// closed intervals and flags the record incomplete, so a forgotten punch can
// not inflate a period total days later.
//
// Minutes are floored toward zero once per day per field, so period totals
// equal the sum of per-day values with no re-rounding. Unpaired or
// out-of-order events are skipped and flag the record incomplete instead of
// aborting. A negative scheduleMinutes or a record type outside the closed
// set is a caller bug and fails the call.
func Aggregate(day time.Time, events []punch.PunchEvent, scheduleMinutes int, now time.Time) (timesheet.DailyTimeRecord, error) {
	if scheduleMinutes < 0 {
		return timesheet.DailyTimeRecord{}, timesheet.ErrInvalidSchedule
	}

	record := timesheet.DailyTimeRecord{
		Date:    day,
		DateStr: day.Format("2006-01-02"),
		Status:  timesheet.StatusPending,
	}

	ordered := make([]punch.PunchEvent, 0, len(events))
	for _, e := range events {
		if !e.RecordType.IsValid() {
			return timesheet.DailyTimeRecord{}, punch.ErrUnknownRecordType
		}
		if e.RecordedAt.IsZero() {
			// Malformed timestamp: exclude the row, keep the day.
			record.Incomplete = true
			continue
		}
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].RecordedAt.Before(ordered[j].RecordedAt)
	})

	var (
		worked     time.Duration
		breakTime  time.Duration
		activeFrom *time.Time
		breakFrom  *time.Time
		firstIn    *time.Time
		lastOut    *time.Time
	)

	if len(ordered) > 0 {
		record.EmployeeID = ordered[0].EmployeeID
	}

	for i := range ordered {
		e := &ordered[i]
		at := e.RecordedAt

		switch e.RecordType {
		case punch.TypeClockIn:
			if firstIn == nil {
				firstIn = &at
			}
			if activeFrom != nil || breakFrom != nil {
				// clock_in while already active or on break: dirty sequence.
				record.Incomplete = true
				continue
			}
			activeFrom = &at

		case punch.TypeBreakStart:
			if activeFrom == nil {
				record.Incomplete = true
				continue
			}
			worked += at.Sub(*activeFrom)
			activeFrom = nil
			breakFrom = &at

		case punch.TypeBreakEnd:
			if breakFrom == nil {
				record.Incomplete = true
				continue
			}
			breakTime += at.Sub(*breakFrom)
			breakFrom = nil
			activeFrom = &at

		case punch.TypeClockOut:
			if breakFrom != nil {
				// Clock-out while on break: close the break at the exit.
				breakTime += at.Sub(*breakFrom)
				breakFrom = nil
				record.Incomplete = true
			}
			if activeFrom == nil {
				record.Incomplete = true
				lastOut = &at
				continue
			}
			worked += at.Sub(*activeFrom)
			activeFrom = nil
			lastOut = &at
		}
	}

	// An open interval accrues up to the query instant, but only while the
	// day itself is still running. A dangling interval on a day that already
	// ended is a forgotten punch: only the closed intervals count and the
	// record is flagged incomplete, not in progress.
	if activeFrom != nil || breakFrom != nil {
		dayEnd := day.AddDate(0, 0, 1)
		if now.Before(dayEnd) {
			if activeFrom != nil && now.After(*activeFrom) {
				worked += now.Sub(*activeFrom)
			}
			if breakFrom != nil && now.After(*breakFrom) {
				breakTime += now.Sub(*breakFrom)
			}
			record.InProgress = true
		} else {
			record.Incomplete = true
		}
	}

	record.WorkedMinutes = int(worked.Minutes())
	record.BreakMinutes = int(breakTime.Minutes())

	if !record.InProgress {
		if record.WorkedMinutes > scheduleMinutes {
			record.OvertimeMinutes = record.WorkedMinutes - scheduleMinutes
		} else {
			record.MissingMinutes = scheduleMinutes - record.WorkedMinutes
		}
	}

	if firstIn != nil {
		record.ClockIn = formatTime(*firstIn)
	}
	if lastOut != nil && !record.InProgress {
		record.ClockOut = formatTime(*lastOut)
	}

	return record, nil
}

func formatTime(t time.Time) *string {
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}
