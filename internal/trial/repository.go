package trial

import "context"

// Repository reads and writes the whole trial state document.
// A user with no stored state gets the zero value (free, no trial).
type Repository interface {
	GetTrial(ctx context.Context, userID string) (State, error)
	SaveTrial(ctx context.Context, userID string, state State) error
}
