package scan

import (
	"context"
	"log"

	"github.com/alexshipulin/Buddy/internal/profile"
)

// FallbackProvider wraps the remote strategy and absorbs its failures
// into the deterministic mock, so the UI always gets a usable result.
type FallbackProvider struct {
	Primary  Provider
	Fallback Provider
}

func (p *FallbackProvider) AnalyzeMenu(ctx context.Context, images []string, user *profile.UserProfile) (*MenuScanResult, error) {
	result, err := p.Primary.AnalyzeMenu(ctx, images, user)
	if err == nil {
		return result, nil
	}

	log.Printf("menu analysis falling back to mock: %v", err)
	return p.Fallback.AnalyzeMenu(ctx, images, user)
}
