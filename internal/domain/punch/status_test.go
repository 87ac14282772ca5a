package punch

import (
	"testing"
	"time"
)

func punchAt(recordType RecordType, hour, minute int) PunchEvent {
	return PunchEvent{
		RecordType: recordType,
		RecordedAt: time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC),
	}
}

func TestDayStatusOf(t *testing.T) {
	cases := []struct {
		name   string
		events []PunchEvent
		want   DayStatus
	}{
		{"no events", nil, StatusNotStarted},
		{"after clock in", []PunchEvent{punchAt(TypeClockIn, 8, 0)}, StatusWorking},
		{"on break", []PunchEvent{punchAt(TypeClockIn, 8, 0), punchAt(TypeBreakStart, 12, 0)}, StatusOnBreak},
		{"back from break", []PunchEvent{punchAt(TypeClockIn, 8, 0), punchAt(TypeBreakStart, 12, 0), punchAt(TypeBreakEnd, 13, 0)}, StatusWorking},
		{"finished", []PunchEvent{punchAt(TypeClockIn, 8, 0), punchAt(TypeClockOut, 17, 0)}, StatusFinished},
		{"re-entry after clock out", []PunchEvent{punchAt(TypeClockIn, 8, 0), punchAt(TypeClockOut, 12, 0), punchAt(TypeClockIn, 14, 0)}, StatusWorking},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DayStatusOf(c.events); got != c.want {
				t.Errorf("DayStatusOf() = %s, want %s", got, c.want)
			}
		})
	}
}

// Order of the input slice must not matter: the derivation keys on RecordedAt.
func TestDayStatusOf_UnorderedInput(t *testing.T) {
	events := []PunchEvent{
		punchAt(TypeClockOut, 17, 0),
		punchAt(TypeClockIn, 8, 0),
		punchAt(TypeBreakEnd, 13, 0),
		punchAt(TypeBreakStart, 12, 0),
	}
	if got := DayStatusOf(events); got != StatusFinished {
		t.Errorf("DayStatusOf(unordered) = %s, want %s", got, StatusFinished)
	}
}

func TestDayStatusOf_SkipsZeroTimestamps(t *testing.T) {
	events := []PunchEvent{
		punchAt(TypeClockIn, 8, 0),
		{RecordType: TypeClockOut}, // malformed: zero RecordedAt
	}
	if got := DayStatusOf(events); got != StatusWorking {
		t.Errorf("DayStatusOf() = %s, want %s (malformed event must be ignored)", got, StatusWorking)
	}
}
