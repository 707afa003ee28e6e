package meal

import "context"

// Repository stores logged meals keyed by id.
type Repository interface {
	SaveMeal(ctx context.Context, userID string, entry *MealEntry) error
	GetMeal(ctx context.Context, userID, mealID string) (*MealEntry, error)
}
