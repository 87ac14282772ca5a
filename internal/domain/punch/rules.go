package punch

import (
	"fmt"
	"strings"
)

// ActionCheck is the outcome of validating a requested clock action against
// the current day status. When the action is denied, Message explains the
// rejection in domain terms: the current state and the actions it allows.
type ActionCheck struct {
	Valid   bool
	Message string
}

// allowedActions is the clock state machine. Each day status maps to the
// exhaustive set of actions it accepts; finished allows clock_in again to
// support re-entry after an early clock-out.
var allowedActions = map[DayStatus][]RecordType{
	StatusNotStarted: {TypeClockIn},
	StatusWorking:    {TypeBreakStart, TypeClockOut},
	StatusOnBreak:    {TypeBreakEnd},
	StatusFinished:   {TypeClockIn},
}

// actionLabels give the user-facing names of each action.
var actionLabels = map[RecordType]string{
	TypeClockIn:    "clock in",
	TypeClockOut:   "clock out",
	TypeBreakStart: "start break",
	TypeBreakEnd:   "end break",
}

// ValidateAction decides whether requestedAction is legal given the current
// day status. It is a pure function, total over all combinations of the four
// statuses and four actions.
func ValidateAction(currentStatus DayStatus, requestedAction RecordType) ActionCheck {
	allowed := allowedActions[currentStatus]
	for _, action := range allowed {
		if action == requestedAction {
			return ActionCheck{Valid: true}
		}
	}

	labels := make([]string, 0, len(allowed))
	for _, action := range allowed {
		labels = append(labels, actionLabels[action])
	}

	return ActionCheck{
		Valid: false,
		Message: fmt.Sprintf("cannot %s: your day is %s; allowed actions: %s",
			actionLabels[requestedAction], currentStatus.Label(), strings.Join(labels, ", ")),
	}
}
