package chat

import (
	"context"
	"sort"

	"github.com/alexshipulin/Buddy/internal/db"
)

const chatKey = "buddy_chat_messages"

type chatDoc struct {
	Messages []Message `json:"messages"`
}

type PostgresRepository struct {
	store *db.DocStore
}

func NewPostgresRepository(store *db.DocStore) *PostgresRepository {
	return &PostgresRepository{store: store}
}

func (r *PostgresRepository) ListMessages(ctx context.Context, userID string) ([]Message, error) {
	var doc chatDoc
	if err := r.store.Get(ctx, userID, chatKey, &doc); err != nil {
		return nil, err
	}

	messages := doc.Messages
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *PostgresRepository) AddMessage(ctx context.Context, userID string, msg Message) error {
	var doc chatDoc
	if err := r.store.Get(ctx, userID, chatKey, &doc); err != nil {
		return err
	}
	doc.Messages = append(doc.Messages, msg)
	return r.store.Set(ctx, userID, chatKey, doc)
}
