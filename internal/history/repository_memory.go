package history

import (
	"context"
	"sort"
)

type InMemoryRepository struct {
	items map[string][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string][]Item)}
}

func (r *InMemoryRepository) AddItem(ctx context.Context, userID string, item Item) error {
	r.items[userID] = append(r.items[userID], item)
	return nil
}

func (r *InMemoryRepository) ListRecent(ctx context.Context, userID string, limit int) ([]Item, error) {
	items := append([]Item(nil), r.items[userID]...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
