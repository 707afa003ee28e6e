package meal

import (
	"time"

	"github.com/google/uuid"
)

type MacroTotals struct {
	CaloriesKcal float64 `json:"caloriesKcal"`
	ProteinG     float64 `json:"proteinG"`
	CarbsG       float64 `json:"carbsG"`
	FatG         float64 `json:"fatG"`
}

// MealEntry is one logged meal, from a photo or typed in.
type MealEntry struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Title     string      `json:"title"`
	Macros    MacroTotals `json:"macros"`
	Notes     string      `json:"notes,omitempty"`
	Source    string      `json:"source"`
	ImageURI  string      `json:"imageUri,omitempty"`
}

const (
	SourcePhoto = "photo"
	SourceText  = "text"
)

func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}
