package trial

import (
	"context"

	"github.com/alexshipulin/Buddy/internal/db"
)

const trialKey = "buddy_trial_state"

type PostgresRepository struct {
	store *db.DocStore
}

func NewPostgresRepository(store *db.DocStore) *PostgresRepository {
	return &PostgresRepository{store: store}
}

func (r *PostgresRepository) GetTrial(ctx context.Context, userID string) (State, error) {
	var state State
	if err := r.store.Get(ctx, userID, trialKey, &state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (r *PostgresRepository) SaveTrial(ctx context.Context, userID string, state State) error {
	return r.store.Set(ctx, userID, trialKey, state)
}
