package presence

import (
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/presence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func event(employeeID string, recordType punch.RecordType, at time.Time) punch.PunchEvent {
	return punch.PunchEvent{
		EmployeeID: employeeID,
		CompanyID:  "co-1",
		RecordType: recordType,
		RecordedAt: at,
	}
}

func rosterOf(names map[string]string) []employee.EmployeeRef {
	roster := make([]employee.EmployeeRef, 0, len(names))
	for id, name := range names {
		roster = append(roster, employee.EmployeeRef{ID: id, CompanyID: "co-1", FullName: name, Active: true})
	}
	return roster
}

func findRow(t *testing.T, rows []presence.EmployeePresence, employeeID string) presence.EmployeePresence {
	t.Helper()
	for _, row := range rows {
		if row.EmployeeID == employeeID {
			return row
		}
	}
	t.Fatalf("employee %s not in result", employeeID)
	return presence.EmployeePresence{}
}

func TestClassify_StatusFromMostRecentEvent(t *testing.T) {
	roster := rosterOf(map[string]string{"e1": "Ana", "e2": "Bruno", "e3": "Clara"})
	events := []punch.PunchEvent{
		event("e1", punch.TypeClockIn, day(8, 0)),
		event("e2", punch.TypeClockIn, day(8, 0)),
		event("e2", punch.TypeBreakStart, day(12, 0)),
		event("e3", punch.TypeClockIn, day(8, 0)),
		event("e3", punch.TypeClockOut, day(16, 0)),
	}

	rows := Classify(events, roster, "remoto")

	assert.Equal(t, presence.StatusWorking, findRow(t, rows, "e1").Status)
	assert.Equal(t, presence.StatusBreak, findRow(t, rows, "e2").Status)
	assert.Equal(t, presence.StatusAbsent, findRow(t, rows, "e3").Status)
}

func TestClassify_FirstClockInIsChronological(t *testing.T) {
	roster := rosterOf(map[string]string{"e1": "Ana"})
	// Re-entry day: two clock-ins; the reported clock-in must be the 08:00
	// one even though the 14:00 one is more recent.
	events := []punch.PunchEvent{
		event("e1", punch.TypeClockIn, day(14, 0)),
		event("e1", punch.TypeClockOut, day(12, 0)),
		event("e1", punch.TypeClockIn, day(8, 0)),
	}

	rows := Classify(events, roster, "remoto")
	row := findRow(t, rows, "e1")

	require.NotNil(t, row.ClockIn)
	assert.Equal(t, "2026-03-10 08:00:00", *row.ClockIn)
	assert.Equal(t, presence.StatusWorking, row.Status)
}

func TestClassify_RemoteKeywordOverridesStatus(t *testing.T) {
	roster := rosterOf(map[string]string{"e1": "Ana"})
	location := "Home Office - Remoto"
	events := []punch.PunchEvent{
		{
			EmployeeID:      "e1",
			CompanyID:       "co-1",
			RecordType:      punch.TypeClockIn,
			RecordedAt:      day(8, 0),
			LocationAddress: &location,
		},
	}

	rows := Classify(events, roster, "remoto")

	// clock_in would imply working; the location keyword wins.
	assert.Equal(t, presence.StatusRemote, findRow(t, rows, "e1").Status)
}

func TestClassify_NoEventsMeansAbsent(t *testing.T) {
	roster := rosterOf(map[string]string{"e1": "Ana"})

	rows := Classify(nil, roster, "remoto")
	row := findRow(t, rows, "e1")

	assert.Equal(t, presence.StatusAbsent, row.Status)
	assert.Nil(t, row.ClockIn)
	assert.Nil(t, row.LastAction)
}

func TestClassify_SkipsEventsOffRoster(t *testing.T) {
	roster := rosterOf(map[string]string{"e1": "Ana"})
	events := []punch.PunchEvent{
		event("e1", punch.TypeClockIn, day(8, 0)),
		event("ghost", punch.TypeClockIn, day(8, 0)),
	}

	rows := Classify(events, roster, "remoto")

	require.Len(t, rows, 1)
	assert.Equal(t, "e1", rows[0].EmployeeID)
}

func TestClassify_MalformedTimestampDoesNotAbort(t *testing.T) {
	roster := rosterOf(map[string]string{"e1": "Ana", "e2": "Bruno"})
	events := []punch.PunchEvent{
		event("e1", punch.TypeClockIn, day(8, 0)),
		{EmployeeID: "e1", CompanyID: "co-1", RecordType: punch.TypeClockOut}, // zero RecordedAt
		event("e2", punch.TypeClockIn, day(9, 0)),
	}

	rows := Classify(events, roster, "remoto")

	// The bad row is excluded; e1 stays working and e2 is unaffected.
	assert.Equal(t, presence.StatusWorking, findRow(t, rows, "e1").Status)
	assert.Equal(t, presence.StatusWorking, findRow(t, rows, "e2").Status)
}

func TestClassify_DisplayOrder(t *testing.T) {
	roster := rosterOf(map[string]string{"e1": "Ana", "e2": "Bruno", "e3": "Clara", "e4": "Davi"})
	location := "remoto"
	events := []punch.PunchEvent{
		event("e1", punch.TypeBreakStart, day(12, 0)),
		event("e2", punch.TypeClockIn, day(8, 0)),
		{EmployeeID: "e3", CompanyID: "co-1", RecordType: punch.TypeClockIn, RecordedAt: day(8, 0), LocationAddress: &location},
	}

	rows := Classify(events, roster, "remoto")

	require.Len(t, rows, 4)
	assert.Equal(t, presence.StatusWorking, rows[0].Status)
	assert.Equal(t, presence.StatusBreak, rows[1].Status)
	assert.Equal(t, presence.StatusRemote, rows[2].Status)
	assert.Equal(t, presence.StatusAbsent, rows[3].Status)
}

// Classification is pure: the same input yields the same output.
func TestClassify_Idempotent(t *testing.T) {
	roster := rosterOf(map[string]string{"e1": "Ana", "e2": "Bruno"})
	events := []punch.PunchEvent{
		event("e1", punch.TypeClockIn, day(8, 0)),
		event("e1", punch.TypeBreakStart, day(12, 0)),
		event("e2", punch.TypeClockIn, day(9, 30)),
	}

	first := Classify(events, roster, "remoto")
	second := Classify(events, roster, "remoto")

	assert.Equal(t, first, second)
}
