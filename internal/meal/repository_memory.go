package meal

import "context"

type InMemoryRepository struct {
	meals map[string]map[string]*MealEntry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{meals: make(map[string]map[string]*MealEntry)}
}

func (r *InMemoryRepository) SaveMeal(ctx context.Context, userID string, entry *MealEntry) error {
	if r.meals[userID] == nil {
		r.meals[userID] = make(map[string]*MealEntry)
	}
	r.meals[userID][entry.ID] = entry
	return nil
}

func (r *InMemoryRepository) GetMeal(ctx context.Context, userID, mealID string) (*MealEntry, error) {
	return r.meals[userID][mealID], nil
}
