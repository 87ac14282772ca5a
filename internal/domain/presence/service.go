package presence

import "context"

// PresenceService answers "who is working right now" for one tenant.
type PresenceService interface {
	GetPresence(ctx context.Context, filter PresenceFilter) (PresenceResponse, error)
}
