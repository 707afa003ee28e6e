package llm

// RankedDish is one dish as the model reports it.
type RankedDish struct {
	Name   string   `json:"name"`
	Reason string   `json:"reason"`
	Tags   []string `json:"tags"`
}

// MenuAnalysis is the schema-constrained shape of a menu analysis reply.
type MenuAnalysis struct {
	TopPicks []RankedDish `json:"topPicks"`
	Caution  []RankedDish `json:"caution"`
	Avoid    []RankedDish `json:"avoid"`
	Warnings []string     `json:"warnings"`
}

// MealPhotoAnalysis is the schema-constrained shape of a meal photo reply.
type MealPhotoAnalysis struct {
	CaloriesKcal float64 `json:"caloriesKcal"`
	ProteinG     float64 `json:"proteinG"`
	CarbsG       float64 `json:"carbsG"`
	FatG         float64 `json:"fatG"`
	Description  string  `json:"description"`
}
