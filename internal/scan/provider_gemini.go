package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexshipulin/Buddy/internal/llm"
	"github.com/alexshipulin/Buddy/internal/profile"
)

// GeminiProvider sends the first captured image to the vision model
// with a schema-constrained prompt. A reply that fails to parse gets
// exactly one retry with the stricter prompt variant; after that the
// error surfaces to the caller (the fallback layer decides what the
// user sees).
type GeminiProvider struct {
	client llm.Client
}

func NewGeminiProvider(client llm.Client) *GeminiProvider {
	return &GeminiProvider{client: client}
}

func (p *GeminiProvider) AnalyzeMenu(ctx context.Context, images []string, user *profile.UserProfile) (*MenuScanResult, error) {
	if len(images) == 0 {
		return nil, errors.New("no menu images provided")
	}

	image, err := encodeImage(ctx, images[0])
	if err != nil {
		return nil, fmt.Errorf("encode menu image: %w", err)
	}

	prompt := llm.BuildMenuAnalysisPrompt(string(user.Goal), user.DietaryPreferences, user.Allergies)

	raw, err := p.client.Generate(ctx, prompt, image, llm.MenuGenerationConfig())
	if err != nil {
		return nil, err
	}

	analysis, parseErr := llm.ParseMenuAnalysis(raw)
	if parseErr != nil {
		// Single retry with the abbreviated "ONLY JSON" prompt.
		strict := llm.BuildStrictMenuAnalysisPrompt(string(user.Goal), user.DietaryPreferences, user.Allergies)
		raw, err = p.client.Generate(ctx, strict, image, llm.MenuGenerationConfig())
		if err != nil {
			return nil, err
		}
		analysis, parseErr = llm.ParseMenuAnalysis(raw)
		if parseErr != nil {
			return nil, errors.New("model returned invalid JSON after retry")
		}
	}

	return buildResult(images, user, analysis), nil
}

func buildResult(images []string, user *profile.UserProfile, analysis *llm.MenuAnalysis) *MenuScanResult {
	summary := summaryForGoal(user.Goal)
	if len(analysis.Warnings) > 0 {
		summary += " Note: " + strings.Join(analysis.Warnings, " ")
	}

	return &MenuScanResult{
		ID:             newID("scan"),
		CreatedAt:      time.Now(),
		InputImages:    images,
		TopPicks:       toRecommendations(analysis.TopPicks),
		Caution:        toRecommendations(analysis.Caution),
		Avoid:          toRecommendations(analysis.Avoid),
		SummaryText:    summary,
		DisclaimerFlag: true,
	}
}

func summaryForGoal(goal profile.Goal) string {
	return fmt.Sprintf("Buddy ranked dishes for %s and your preferences.", strings.ToLower(string(goal)))
}

func toRecommendations(dishes []llm.RankedDish) []DishRecommendation {
	if len(dishes) > 3 {
		dishes = dishes[:3]
	}
	recs := make([]DishRecommendation, 0, len(dishes))
	for _, d := range dishes {
		tags := d.Tags
		if len(tags) > 3 {
			tags = tags[:3]
		}
		recs = append(recs, DishRecommendation{
			Name:        d.Name,
			ReasonShort: d.Reason,
			Tags:        tags,
		})
	}
	return recs
}
