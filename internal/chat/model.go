package chat

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn. SourceKey marks seeded system messages so
// they are inserted at most once.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	SourceKey string    `json:"sourceKey,omitempty"`
}

func newID() string {
	return "chat_" + uuid.New().String()
}
