package meal

import (
	"context"
	"errors"
	"time"

	"github.com/alexshipulin/Buddy/internal/history"
	"github.com/alexshipulin/Buddy/internal/llm"
)

// fallback macros when meal photo analysis is unavailable
var fallbackMacros = MacroTotals{CaloriesKcal: 450, ProteinG: 30, CarbsG: 40, FatG: 15}

type Service struct {
	repo    Repository
	history history.Repository
	client  llm.Client
}

func NewService(repo Repository, historyRepo history.Repository, client llm.Client) *Service {
	return &Service{repo: repo, history: historyRepo, client: client}
}

// AddMeal saves a meal and appends its history pointer.
func (s *Service) AddMeal(ctx context.Context, userID string, entry *MealEntry) error {
	if entry == nil || entry.Title == "" {
		return errors.New("meal title is required")
	}

	if entry.ID == "" {
		entry.ID = newID("meal")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := s.repo.SaveMeal(ctx, userID, entry); err != nil {
		return err
	}

	item := history.Item{
		ID:         newID("history"),
		Type:       history.TypeMeal,
		Title:      entry.Title,
		CreatedAt:  entry.CreatedAt,
		PayloadRef: entry.ID,
	}
	if entry.ImageURI != "" {
		item.ImageURIs = []string{entry.ImageURI}
	}
	return s.history.AddItem(ctx, userID, item)
}

func (s *Service) GetMeal(ctx context.Context, userID, mealID string) (*MealEntry, error) {
	return s.repo.GetMeal(ctx, userID, mealID)
}

// TodayMacros sums the macros of meals logged on the same UTC day.
func (s *Service) TodayMacros(ctx context.Context, userID string, now time.Time) (MacroTotals, error) {
	items, err := s.history.ListRecent(ctx, userID, 500)
	if err != nil {
		return MacroTotals{}, err
	}

	today := now.UTC().Format("2006-01-02")

	var totals MacroTotals
	for _, item := range items {
		if item.Type != history.TypeMeal {
			continue
		}
		if item.CreatedAt.UTC().Format("2006-01-02") != today {
			continue
		}

		entry, err := s.repo.GetMeal(ctx, userID, item.PayloadRef)
		if err != nil || entry == nil {
			continue
		}

		totals.CaloriesKcal += entry.Macros.CaloriesKcal
		totals.ProteinG += entry.Macros.ProteinG
		totals.CarbsG += entry.Macros.CarbsG
		totals.FatG += entry.Macros.FatG
	}
	return totals, nil
}

// AnalyzeMealPhoto estimates macros for a meal photo. One stricter
// retry on a parse failure, then deterministic fallback values — a
// broken model must not block meal logging.
func (s *Service) AnalyzeMealPhoto(ctx context.Context, image *llm.InlineImage) (MacroTotals, string) {
	if s.client == nil || image == nil {
		return fallbackMacros, "Meal logged. AI analysis unavailable."
	}

	raw, err := s.client.Generate(ctx, llm.BuildMealPhotoPrompt(), image, llm.MealGenerationConfig())
	if err != nil {
		return fallbackMacros, "Meal logged. AI analysis unavailable."
	}

	analysis, err := llm.ParseMealPhotoAnalysis(raw)
	if err != nil {
		raw, err = s.client.Generate(ctx, llm.BuildStrictMealPhotoPrompt(), image, llm.MealGenerationConfig())
		if err != nil {
			return fallbackMacros, "Meal logged. AI analysis unavailable."
		}
		analysis, err = llm.ParseMealPhotoAnalysis(raw)
		if err != nil {
			return fallbackMacros, "Meal logged. AI analysis unavailable."
		}
	}

	return MacroTotals{
		CaloriesKcal: analysis.CaloriesKcal,
		ProteinG:     analysis.ProteinG,
		CarbsG:       analysis.CarbsG,
		FatG:         analysis.FatG,
	}, analysis.Description
}
