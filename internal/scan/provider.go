package scan

import (
	"context"

	"github.com/alexshipulin/Buddy/internal/llm"
	"github.com/alexshipulin/Buddy/internal/profile"
)

// Provider turns captured menu images and a profile into a result.
type Provider interface {
	AnalyzeMenu(ctx context.Context, images []string, user *profile.UserProfile) (*MenuScanResult, error)
}

// NewProvider picks the strategy for this installation: the Gemini
// provider with a mock fallback when a credential is configured,
// plain mock otherwise. Provider errors never reach the user — the
// fallback keeps the product usable without a live AI backend.
func NewProvider(client llm.Client) Provider {
	if llm.HasAPIKey() {
		return &FallbackProvider{
			Primary:  NewGeminiProvider(client),
			Fallback: NewMockProvider(),
		}
	}
	return NewMockProvider()
}
