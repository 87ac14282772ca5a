package punch

import (
	"strings"
	"testing"
)

// Every combination of the four day statuses and four actions must produce a
// defined verdict.
func TestValidateAction_Totality(t *testing.T) {
	cases := []struct {
		status DayStatus
		action RecordType
		valid  bool
	}{
		{StatusNotStarted, TypeClockIn, true},
		{StatusNotStarted, TypeClockOut, false},
		{StatusNotStarted, TypeBreakStart, false},
		{StatusNotStarted, TypeBreakEnd, false},

		{StatusWorking, TypeClockIn, false},
		{StatusWorking, TypeClockOut, true},
		{StatusWorking, TypeBreakStart, true},
		{StatusWorking, TypeBreakEnd, false},

		{StatusOnBreak, TypeClockIn, false},
		{StatusOnBreak, TypeClockOut, false},
		{StatusOnBreak, TypeBreakStart, false},
		{StatusOnBreak, TypeBreakEnd, true},

		{StatusFinished, TypeClockIn, true}, // re-entry after clock-out
		{StatusFinished, TypeClockOut, false},
		{StatusFinished, TypeBreakStart, false},
		{StatusFinished, TypeBreakEnd, false},
	}

	if len(cases) != 16 {
		t.Fatalf("expected 16 combinations, have %d", len(cases))
	}

	for _, c := range cases {
		got := ValidateAction(c.status, c.action)
		if got.Valid != c.valid {
			t.Errorf("ValidateAction(%s, %s).Valid = %v, want %v", c.status, c.action, got.Valid, c.valid)
		}
		if !c.valid && got.Message == "" {
			t.Errorf("ValidateAction(%s, %s) denied without a message", c.status, c.action)
		}
	}
}

func TestValidateAction_MessageNamesStateAndAllowedActions(t *testing.T) {
	got := ValidateAction(StatusOnBreak, TypeClockOut)
	if got.Valid {
		t.Fatal("clock_out while on break should be denied")
	}
	if !strings.Contains(got.Message, "on break") {
		t.Errorf("message %q does not name the current state", got.Message)
	}
	if !strings.Contains(got.Message, "end break") {
		t.Errorf("message %q does not list the allowed action", got.Message)
	}
}
