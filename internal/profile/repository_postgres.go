package profile

import (
	"context"

	"github.com/alexshipulin/Buddy/internal/db"
)

const (
	profileKey = "buddy_user_profile"
	prefsKey   = "buddy_app_prefs"
)

type PostgresRepository struct {
	store *db.DocStore
}

func NewPostgresRepository(store *db.DocStore) *PostgresRepository {
	return &PostgresRepository{store: store}
}

func (r *PostgresRepository) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	var user *UserProfile
	if err := r.store.Get(ctx, userID, profileKey, &user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) SaveProfile(ctx context.Context, userID string, user *UserProfile) error {
	return r.store.Set(ctx, userID, profileKey, user)
}

func (r *PostgresRepository) GetPrefs(ctx context.Context, userID string) (Prefs, error) {
	var prefs Prefs
	if err := r.store.Get(ctx, userID, prefsKey, &prefs); err != nil {
		return Prefs{}, err
	}
	return prefs, nil
}

func (r *PostgresRepository) SavePrefs(ctx context.Context, userID string, prefs Prefs) error {
	return r.store.Set(ctx, userID, prefsKey, prefs)
}
