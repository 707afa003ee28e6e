package scan

import (
	"context"
	"time"

	"github.com/alexshipulin/Buddy/internal/profile"
)

// MockProvider is the deterministic offline strategy. It serves demo
// installs without a Gemini credential and backs the remote provider's
// failure path.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) AnalyzeMenu(ctx context.Context, images []string, user *profile.UserProfile) (*MenuScanResult, error) {
	return &MenuScanResult{
		ID:          newID("scan"),
		CreatedAt:   time.Now(),
		InputImages: images,
		TopPicks:    presetTopPicks(),
		Caution:     presetCaution(),
		Avoid:       presetAvoid(),
		SummaryText: presetSummary(user.Goal),
		DisclaimerFlag: true,
	}, nil
}

func presetTopPicks() []DishRecommendation {
	return []DishRecommendation{
		{Name: "Grilled salmon with greens", ReasonShort: "High protein and healthy fats.", Tags: []string{"High protein", "Omega-3", "Lower sodium"}},
		{Name: "Chicken salad", ReasonShort: "Lean protein with fiber-rich vegetables.", Tags: []string{"High protein", "Lower calories", "High fiber"}},
		{Name: "Rice bowl with tofu", ReasonShort: "Plant protein and controlled energy density.", Tags: []string{"Vegetarian-friendly", "High fiber"}},
	}
}

func presetCaution() []DishRecommendation {
	return []DishRecommendation{
		{Name: "Teriyaki chicken", ReasonShort: "Protein is good, but sauce can add sugar and sodium.", Tags: []string{"Lower sugar", "Lower sodium"}},
		{Name: "Veggie wrap", ReasonShort: "Mostly fine, though tortillas and sauces can shift macros.", Tags: []string{"Vegetarian-friendly"}},
		{Name: "Granola bowl", ReasonShort: "Looks healthy but can be calorie dense with sweeteners.", Tags: []string{"High fiber", "Lower sugar"}},
	}
}

func presetAvoid() []DishRecommendation {
	return []DishRecommendation{
		{Name: "Deep-fried combo platter", ReasonShort: "Very high energy density and low satiety quality.", Tags: []string{"Lower calories"}},
		{Name: "Loaded nachos", ReasonShort: "Portion size and toppings make goals harder to hit.", Tags: []string{"Lower sodium"}},
		{Name: "Creamy pasta alfredo", ReasonShort: "High fat and calories can conflict with your targets.", Tags: []string{"Lower calories"}},
	}
}

func presetSummary(goal profile.Goal) string {
	switch goal {
	case profile.GoalGainMuscle:
		return "Buddy ranked dishes for muscle gain and your preferences."
	case profile.GoalLoseFat:
		return "Buddy ranked dishes for fat loss and your preferences."
	default:
		return "Buddy ranked dishes for maintenance and your preferences."
	}
}
