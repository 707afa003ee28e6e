package llm

import (
	"strings"
	"testing"
)

func TestParseMenuAnalysis(t *testing.T) {
	raw := `{
		"topPicks": [{"name": "Grilled fish", "reason": "Lean protein.", "tags": ["High protein"]}],
		"caution": [],
		"avoid": [{"name": "Fried platter", "reason": "Calorie dense.", "tags": []}],
		"warnings": ["Prices cropped out."]
	}`

	analysis, err := ParseMenuAnalysis(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(analysis.TopPicks) != 1 || analysis.TopPicks[0].Name != "Grilled fish" {
		t.Fatalf("unexpected top picks: %+v", analysis.TopPicks)
	}
	if len(analysis.Warnings) != 1 {
		t.Fatalf("unexpected warnings: %+v", analysis.Warnings)
	}
}

func TestParseMenuAnalysisRejectsMarkdownFence(t *testing.T) {
	raw := "```json\n{\"topPicks\": [], \"caution\": [], \"avoid\": [], \"warnings\": []}\n```"

	_, err := ParseMenuAnalysis(raw)
	if err == nil || !strings.Contains(err.Error(), "non-json") {
		t.Fatalf("expected non-json error, got %v", err)
	}
}

func TestParseMenuAnalysisRejectsOversizedList(t *testing.T) {
	raw := `{
		"topPicks": [
			{"name": "a", "reason": "r", "tags": []},
			{"name": "b", "reason": "r", "tags": []},
			{"name": "c", "reason": "r", "tags": []},
			{"name": "d", "reason": "r", "tags": []}
		],
		"caution": [], "avoid": [], "warnings": []
	}`

	_, err := ParseMenuAnalysis(raw)
	if err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("expected schema violation, got %v", err)
	}
}

func TestParseMenuAnalysisRejectsMissingField(t *testing.T) {
	raw := `{"topPicks": [], "caution": [], "avoid": []}`

	if _, err := ParseMenuAnalysis(raw); err == nil {
		t.Fatal("expected error for missing warnings field")
	}
}

func TestParseMealPhotoAnalysis(t *testing.T) {
	raw := `{"caloriesKcal": 520, "proteinG": 34, "carbsG": 41, "fatG": 22, "description": "Chicken bowl with rice."}`

	analysis, err := ParseMealPhotoAnalysis(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.CaloriesKcal != 520 {
		t.Fatalf("unexpected calories: %v", analysis.CaloriesKcal)
	}
	if analysis.Description == "" {
		t.Fatal("expected a description")
	}
}

func TestParseMealPhotoAnalysisRejectsExtraField(t *testing.T) {
	raw := `{"caloriesKcal": 520, "proteinG": 34, "carbsG": 41, "fatG": 22, "description": "x", "confidence": 0.8}`

	if _, err := ParseMealPhotoAnalysis(raw); err == nil {
		t.Fatal("expected error for unexpected field")
	}
}
