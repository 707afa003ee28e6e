package chat

import "context"

// Repository stores the conversation, listed oldest-first.
type Repository interface {
	ListMessages(ctx context.Context, userID string) ([]Message, error)
	AddMessage(ctx context.Context, userID string, msg Message) error
}
