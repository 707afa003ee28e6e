package profile

import "context"

// Repository defines the profile and prefs store contract.
// GetProfile returns nil when no profile has been saved yet.
type Repository interface {
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	SaveProfile(ctx context.Context, userID string, user *UserProfile) error

	GetPrefs(ctx context.Context, userID string) (Prefs, error)
	SavePrefs(ctx context.Context, userID string, prefs Prefs) error
}
