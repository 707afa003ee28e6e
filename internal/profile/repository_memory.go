package profile

import "context"

type InMemoryRepository struct {
	profiles map[string]*UserProfile
	prefs    map[string]Prefs
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		profiles: make(map[string]*UserProfile),
		prefs:    make(map[string]Prefs),
	}
}

func (r *InMemoryRepository) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	return r.profiles[userID], nil
}

func (r *InMemoryRepository) SaveProfile(ctx context.Context, userID string, user *UserProfile) error {
	r.profiles[userID] = user
	return nil
}

func (r *InMemoryRepository) GetPrefs(ctx context.Context, userID string) (Prefs, error) {
	return r.prefs[userID], nil
}

func (r *InMemoryRepository) SavePrefs(ctx context.Context, userID string, prefs Prefs) error {
	r.prefs[userID] = prefs
	return nil
}
