package chat

import (
	"context"
	"sort"
)

type InMemoryRepository struct {
	messages map[string][]Message
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{messages: make(map[string][]Message)}
}

func (r *InMemoryRepository) ListMessages(ctx context.Context, userID string) ([]Message, error) {
	messages := append([]Message(nil), r.messages[userID]...)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *InMemoryRepository) AddMessage(ctx context.Context, userID string, msg Message) error {
	r.messages[userID] = append(r.messages[userID], msg)
	return nil
}
