package meal

import (
	"context"

	"github.com/alexshipulin/Buddy/internal/db"
)

const mealsKey = "buddy_meals"

type mealsDoc struct {
	MealsByID map[string]*MealEntry `json:"mealsById"`
}

type PostgresRepository struct {
	store *db.DocStore
}

func NewPostgresRepository(store *db.DocStore) *PostgresRepository {
	return &PostgresRepository{store: store}
}

func (r *PostgresRepository) SaveMeal(ctx context.Context, userID string, entry *MealEntry) error {
	var doc mealsDoc
	if err := r.store.Get(ctx, userID, mealsKey, &doc); err != nil {
		return err
	}
	if doc.MealsByID == nil {
		doc.MealsByID = make(map[string]*MealEntry)
	}
	doc.MealsByID[entry.ID] = entry
	return r.store.Set(ctx, userID, mealsKey, doc)
}

func (r *PostgresRepository) GetMeal(ctx context.Context, userID, mealID string) (*MealEntry, error) {
	var doc mealsDoc
	if err := r.store.Get(ctx, userID, mealsKey, &doc); err != nil {
		return nil, err
	}
	return doc.MealsByID[mealID], nil
}
