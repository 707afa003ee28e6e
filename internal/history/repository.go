package history

import "context"

// Repository appends and lists history pointer records.
// Items are immutable once appended.
type Repository interface {
	AddItem(ctx context.Context, userID string, item Item) error
	ListRecent(ctx context.Context, userID string, limit int) ([]Item, error)
}
