package punch

import "context"

// PunchService is the write-side surface of the attendance engine.
type PunchService interface {
	// RegisterPunch runs the duplicate guard and the clock state machine
	// before appending the event. Rejections come back as *RejectionError
	// with the guard's or validator's message verbatim.
	RegisterPunch(ctx context.Context, req RegisterPunchRequest) (PunchResponse, error)

	// ListPunches retrieves raw punch events for audit screens.
	ListPunches(ctx context.Context, filter PunchFilter) (ListPunchResponse, error)
}
