package scan

import (
	"time"

	"github.com/google/uuid"
)

// DishRecommendation is one ranked dish with a short reason and 0-3 tags.
type DishRecommendation struct {
	Name        string   `json:"name"`
	ReasonShort string   `json:"reasonShort"`
	Tags        []string `json:"tags"`
}

// MenuScanResult is immutable once created. DisclaimerFlag is always
// true: recommendations are informational, not medical advice.
type MenuScanResult struct {
	ID             string               `json:"id"`
	CreatedAt      time.Time            `json:"createdAt"`
	InputImages    []string             `json:"inputImages"`
	TopPicks       []DishRecommendation `json:"topPicks"`
	Caution        []DishRecommendation `json:"caution"`
	Avoid          []DishRecommendation `json:"avoid"`
	SummaryText    string               `json:"summaryText"`
	DisclaimerFlag bool                 `json:"disclaimerFlag"`
}

// AnalyzeMenuOutput is what the orchestrator hands back to the client.
type AnalyzeMenuOutput struct {
	ResultID                      string `json:"resultId"`
	ShouldShowPaywallAfterResults bool   `json:"shouldShowPaywallAfterResults"`
	TrialDaysLeft                 int    `json:"trialDaysLeft"`
}

func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}
