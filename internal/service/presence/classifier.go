package presence

import (
	"sort"
	"strings"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/presence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
)

// Classify derives the live presence snapshot for every employee on the
// roster from one day's punch events.
//
// Per employee, the most recent event decides the status (clock_in/break_end
// mean working, break_start means break, clock_out means absent), while the
// reported clock-in is the true chronological first clock_in of the day, not
// the most recently seen one. If the most recent event's location contains
// remoteKeyword (case-insensitive), the status becomes remote regardless of
// record type. Employees with no events are absent with no clock-in.
//
// Events for employees missing from the roster are skipped, and events with a
// zero RecordedAt are excluded from ordering; one bad row never aborts the
// tenant's classification. Output is sorted working < break < remote < absent
// (display order only), then by employee name.
func Classify(events []punch.PunchEvent, roster []employee.EmployeeRef, remoteKeyword string) []presence.EmployeePresence {
	type dayView struct {
		latest       *punch.PunchEvent
		firstClockIn *punch.PunchEvent
	}

	onRoster := make(map[string]bool, len(roster))
	for _, emp := range roster {
		onRoster[emp.ID] = true
	}

	views := make(map[string]*dayView, len(roster))
	for i := range events {
		e := &events[i]
		if !onRoster[e.EmployeeID] {
			continue
		}
		if e.RecordedAt.IsZero() {
			continue
		}

		view := views[e.EmployeeID]
		if view == nil {
			view = &dayView{}
			views[e.EmployeeID] = view
		}

		if view.latest == nil || e.RecordedAt.After(view.latest.RecordedAt) {
			view.latest = e
		}
		if e.RecordType == punch.TypeClockIn {
			if view.firstClockIn == nil || e.RecordedAt.Before(view.firstClockIn.RecordedAt) {
				view.firstClockIn = e
			}
		}
	}

	keyword := strings.ToLower(remoteKeyword)
	result := make([]presence.EmployeePresence, 0, len(roster))
	for _, emp := range roster {
		row := presence.EmployeePresence{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Department:   emp.Department,
			Status:       presence.StatusAbsent,
		}

		if view, ok := views[emp.ID]; ok && view.latest != nil {
			row.Status = statusForRecordType(view.latest.RecordType)
			if keyword != "" && view.latest.LocationAddress != nil &&
				strings.Contains(strings.ToLower(*view.latest.LocationAddress), keyword) {
				row.Status = presence.StatusRemote
			}

			action := string(view.latest.RecordType)
			row.LastAction = &action
			row.LastActionAt = formatTime(view.latest.RecordedAt)
			if view.firstClockIn != nil {
				row.ClockIn = formatTime(view.firstClockIn.RecordedAt)
			}
		}

		result = append(result, row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		pi, pj := result[i].Status.SortPriority(), result[j].Status.SortPriority()
		if pi != pj {
			return pi < pj
		}
		return result[i].EmployeeName < result[j].EmployeeName
	})

	return result
}

func statusForRecordType(recordType punch.RecordType) presence.Status {
	switch recordType {
	case punch.TypeClockIn, punch.TypeBreakEnd:
		return presence.StatusWorking
	case punch.TypeBreakStart:
		return presence.StatusBreak
	case punch.TypeClockOut:
		return presence.StatusAbsent
	}
	return presence.StatusAbsent
}

func formatTime(t time.Time) *string {
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}
