package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/alexshipulin/Buddy/internal/llm"
	"github.com/alexshipulin/Buddy/internal/profile"
)

const mockReply = "I can help you with meal planning! Add your Gemini API key to enable AI-powered responses."

// ProfileReader supplies the profile snippet used as chat context.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*profile.UserProfile, error)
}

type Service struct {
	repo     Repository
	profiles ProfileReader
	client   llm.Client
}

func NewService(repo Repository, profiles ProfileReader, client llm.Client) *Service {
	return &Service{repo: repo, profiles: profiles, client: client}
}

func (s *Service) ListMessages(ctx context.Context, userID string) ([]Message, error) {
	return s.repo.ListMessages(ctx, userID)
}

// Ask stores the user's question, asks the assistant, stores and
// returns the reply. Any model failure degrades to the mock reply.
func (s *Service) Ask(ctx context.Context, userID, message string) (string, error) {
	if message == "" {
		return "", errors.New("message is required")
	}

	userMsg := Message{
		ID:        newID(),
		Role:      RoleUser,
		Text:      message,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddMessage(ctx, userID, userMsg); err != nil {
		return "", err
	}

	reply := s.generateReply(ctx, userID, message)

	assistantMsg := Message{
		ID:        newID(),
		Role:      RoleAssistant,
		Text:      reply,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddMessage(ctx, userID, assistantMsg); err != nil {
		return "", err
	}

	return reply, nil
}

// AddSystemMessageIfMissing inserts a seeded system message at most
// once per source key.
func (s *Service) AddSystemMessageIfMissing(ctx context.Context, userID, sourceKey, text string) error {
	messages, err := s.repo.ListMessages(ctx, userID)
	if err != nil {
		return err
	}
	for _, m := range messages {
		if m.SourceKey == sourceKey {
			return nil
		}
	}

	return s.repo.AddMessage(ctx, userID, Message{
		ID:        newID(),
		Role:      RoleSystem,
		Text:      text,
		CreatedAt: time.Now(),
		SourceKey: sourceKey,
	})
}

func (s *Service) generateReply(ctx context.Context, userID, message string) string {
	if s.client == nil || !llm.HasAPIKey() {
		return mockReply
	}

	contextText := ""
	if s.profiles != nil {
		if user, err := s.profiles.GetProfile(ctx, userID); err == nil && user != nil {
			if raw, err := json.Marshal(user); err == nil {
				contextText = string(raw)
			}
		}
	}

	reply, err := s.client.Generate(ctx, llm.BuildChatPrompt(contextText, message), nil, nil)
	if err != nil {
		log.Printf("chat reply falling back to mock: %v", err)
		return mockReply
	}
	return reply
}
