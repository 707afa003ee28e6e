package main

import (
	"context"
	"log"
	"time"

	"github.com/alexshipulin/Buddy/internal/auth"
	"github.com/alexshipulin/Buddy/internal/chat"
	"github.com/alexshipulin/Buddy/internal/db"
	"github.com/alexshipulin/Buddy/internal/history"
	"github.com/alexshipulin/Buddy/internal/meal"
	"github.com/alexshipulin/Buddy/internal/profile"
	"github.com/alexshipulin/Buddy/internal/scan"
	"github.com/alexshipulin/Buddy/internal/trial"

	"github.com/joho/godotenv"
)

const (
	demoEmail    = "demo@buddy.app"
	demoPassword = "Demo@123"
)

// Seeds a demo account with a profile, an in-flight trial, one menu
// scan and one meal, so a fresh install has something to show.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("🌱 Seeding demo data...")

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	ctx := context.Background()
	docStore := db.NewDocStore(pgDB)

	userRepo := auth.NewPostgresUserRepository(pgDB)

	exists, _ := userRepo.ExistsByEmail(demoEmail)
	if exists {
		log.Println("Demo account already seeded, nothing to do")
		return
	}

	authService := auth.NewService(userRepo)
	user, err := authService.Register("Alex", demoEmail, demoPassword)
	if err != nil {
		log.Fatal("seed register failed:", err)
	}

	now := time.Now()
	menuTime := now.Add(-2 * time.Hour)
	mealTime := now.Add(-45 * time.Minute)

	// Profile
	profileRepo := profile.NewPostgresRepository(docStore)
	err = profileRepo.SaveProfile(ctx, user.ID, &profile.UserProfile{
		Goal:               profile.GoalMaintain,
		DietaryPreferences: []string{"Gluten-free"},
		Allergies:          []string{"Peanuts"},
		BaseParams: &profile.BaseParams{
			HeightCm:      172,
			WeightKg:      68,
			ActivityLevel: profile.ActivityMedium,
			Age:           29,
			Sex:           "Prefer not to say",
		},
	})
	if err != nil {
		log.Fatal("seed profile failed:", err)
	}

	// Trial: started two days ago, five days left
	trialRepo := trial.NewPostgresRepository(docStore)
	trialStartsAt := now.Add(-2 * 24 * time.Hour)
	trialEndsAt := now.Add(5 * 24 * time.Hour)
	err = trialRepo.SaveTrial(ctx, user.ID, trial.State{
		FirstResultAt: &menuTime,
		TrialStartsAt: &trialStartsAt,
		TrialEndsAt:   &trialEndsAt,
	})
	if err != nil {
		log.Fatal("seed trial failed:", err)
	}

	// One menu scan with history pointer
	historyRepo := history.NewPostgresRepository(docStore)
	scanRepo := scan.NewPostgresRepository(docStore)

	mockProvider := scan.NewMockProvider()
	result, _ := mockProvider.AnalyzeMenu(ctx, nil, &profile.UserProfile{Goal: profile.GoalMaintain})
	result.CreatedAt = menuTime

	if err := scanRepo.SaveResult(ctx, user.ID, result); err != nil {
		log.Fatal("seed scan result failed:", err)
	}
	err = historyRepo.AddItem(ctx, user.ID, history.Item{
		ID:         "history_seed_scan",
		Type:       history.TypeMenuScan,
		Title:      "Menu scan",
		CreatedAt:  menuTime,
		PayloadRef: result.ID,
	})
	if err != nil {
		log.Fatal("seed history failed:", err)
	}

	// One meal with history pointer
	mealRepo := meal.NewPostgresRepository(docStore)
	mealService := meal.NewService(mealRepo, historyRepo, nil)
	err = mealService.AddMeal(ctx, user.ID, &meal.MealEntry{
		CreatedAt: mealTime,
		Title:     "Chicken salad bowl",
		Macros:    meal.MacroTotals{CaloriesKcal: 520, ProteinG: 38, CarbsG: 42, FatG: 20},
		Source:    meal.SourceText,
	})
	if err != nil {
		log.Fatal("seed meal failed:", err)
	}

	// Welcome chat message
	chatRepo := chat.NewPostgresRepository(docStore)
	chatService := chat.NewService(chatRepo, profileRepo, nil)
	err = chatService.AddSystemMessageIfMissing(
		ctx,
		user.ID,
		"welcome",
		"Hi! I'm Buddy. Scan a menu or log a meal and I'll keep your macros on track.",
	)
	if err != nil {
		log.Fatal("seed chat failed:", err)
	}

	log.Printf("✅ Seeded demo account %s (user id %s)", demoEmail, user.ID)
}
