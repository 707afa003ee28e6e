package trial

import "context"

type InMemoryRepository struct {
	states map[string]State
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{states: make(map[string]State)}
}

func (r *InMemoryRepository) GetTrial(ctx context.Context, userID string) (State, error) {
	return r.states[userID], nil
}

func (r *InMemoryRepository) SaveTrial(ctx context.Context, userID string, state State) error {
	r.states[userID] = state
	return nil
}
