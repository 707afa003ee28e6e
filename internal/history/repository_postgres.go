package history

import (
	"context"
	"sort"

	"github.com/alexshipulin/Buddy/internal/db"
)

const historyKey = "buddy_history_items"

type historyDoc struct {
	Items []Item `json:"items"`
}

type PostgresRepository struct {
	store *db.DocStore
}

func NewPostgresRepository(store *db.DocStore) *PostgresRepository {
	return &PostgresRepository{store: store}
}

func (r *PostgresRepository) AddItem(ctx context.Context, userID string, item Item) error {
	var doc historyDoc
	if err := r.store.Get(ctx, userID, historyKey, &doc); err != nil {
		return err
	}
	doc.Items = append([]Item{item}, doc.Items...)
	return r.store.Set(ctx, userID, historyKey, doc)
}

func (r *PostgresRepository) ListRecent(ctx context.Context, userID string, limit int) ([]Item, error) {
	var doc historyDoc
	if err := r.store.Get(ctx, userID, historyKey, &doc); err != nil {
		return nil, err
	}

	items := doc.Items
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
