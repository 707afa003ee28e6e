package scan

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexshipulin/Buddy/internal/history"
	"github.com/alexshipulin/Buddy/internal/profile"
	"github.com/alexshipulin/Buddy/internal/trial"
)

func newTestService(profiles *profile.InMemoryRepository) (*Service, *history.InMemoryRepository, *trial.InMemoryRepository) {
	trialRepo := trial.NewInMemoryRepository()
	historyRepo := history.NewInMemoryRepository()
	service := NewService(
		profiles,
		trial.NewService(trialRepo),
		NewInMemoryRepository(),
		historyRepo,
		NewMockProvider(),
		nil,
		false,
	)
	return service, historyRepo, trialRepo
}

func TestAnalyzeMenuFullFlow(t *testing.T) {
	ctx := context.Background()

	profiles := profile.NewInMemoryRepository()
	profiles.SaveProfile(ctx, "user-1", &profile.UserProfile{
		Goal:               profile.GoalGainMuscle,
		DietaryPreferences: []string{"Vegetarian"},
		Allergies:          []string{"Peanuts"},
	})

	service, historyRepo, _ := newTestService(profiles)

	out, err := service.AnalyzeMenu(ctx, "user-1", []string{"https://example.com/menu.jpg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ResultID == "" {
		t.Fatal("expected a result id")
	}
	if !out.ShouldShowPaywallAfterResults {
		t.Fatal("expected paywall flag on the very first result")
	}
	if out.TrialDaysLeft != trial.TrialDays {
		t.Fatalf("expected %d trial days left, got %d", trial.TrialDays, out.TrialDaysLeft)
	}

	result, err := service.GetResult(ctx, "user-1", out.ResultID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected stored result")
	}
	if !result.DisclaimerFlag {
		t.Fatal("expected disclaimer flag set on every result")
	}
	for _, list := range [][]DishRecommendation{result.TopPicks, result.Caution, result.Avoid} {
		if len(list) == 0 || len(list) > 3 {
			t.Fatalf("expected 1..3 dishes per list, got %d", len(list))
		}
		for _, dish := range list {
			if len(dish.Tags) > 3 {
				t.Fatalf("expected at most 3 tags, got %d", len(dish.Tags))
			}
		}
	}
	if !strings.Contains(result.SummaryText, "muscle gain") {
		t.Fatalf("expected summary to reflect the goal, got %q", result.SummaryText)
	}

	items, err := historyRepo.ListRecent(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one history item, got %d", len(items))
	}
	if items[0].Type != history.TypeMenuScan {
		t.Fatalf("expected menu_scan item, got %s", items[0].Type)
	}
	if items[0].PayloadRef != out.ResultID {
		t.Fatal("expected history item to reference the stored result")
	}
}

func TestAnalyzeMenuPaywallOnlyOnce(t *testing.T) {
	ctx := context.Background()

	profiles := profile.NewInMemoryRepository()
	profiles.SaveProfile(ctx, "user-1", &profile.UserProfile{Goal: profile.GoalLoseFat})

	service, _, _ := newTestService(profiles)

	first, err := service.AnalyzeMenu(ctx, "user-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.ShouldShowPaywallAfterResults {
		t.Fatal("expected paywall after the first result")
	}

	second, err := service.AnalyzeMenu(ctx, "user-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ShouldShowPaywallAfterResults {
		t.Fatal("expected no paywall on later results")
	}
}

func TestAnalyzeMenuRequiresProfile(t *testing.T) {
	service, _, _ := newTestService(profile.NewInMemoryRepository())

	_, err := service.AnalyzeMenu(context.Background(), "user-1", nil)
	if err != ErrNoProfile {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestAnalyzeMenuEnforcesDailyLimit(t *testing.T) {
	ctx := context.Background()

	profiles := profile.NewInMemoryRepository()
	profiles.SaveProfile(ctx, "user-1", &profile.UserProfile{Goal: profile.GoalMaintain})

	service, _, trialRepo := newTestService(profiles)

	now := time.Now().UTC()
	startsAt := now.Add(-10 * 24 * time.Hour)
	endsAt := now.Add(-3 * 24 * time.Hour)
	trialRepo.SaveTrial(ctx, "user-1", trial.State{
		TrialStartsAt:       &startsAt,
		TrialEndsAt:         &endsAt,
		ScansUsedTodayCount: 1,
		ScansUsedTodayDate:  now.Format("2006-01-02"),
	})

	_, err := service.AnalyzeMenu(ctx, "user-1", nil)
	if err != ErrDailyScanLimitReached {
		t.Fatalf("expected ErrDailyScanLimitReached, got %v", err)
	}
}

func TestAnalyzeMenuBypassQuota(t *testing.T) {
	ctx := context.Background()

	profiles := profile.NewInMemoryRepository()
	profiles.SaveProfile(ctx, "user-1", &profile.UserProfile{Goal: profile.GoalMaintain})

	trialRepo := trial.NewInMemoryRepository()
	service := NewService(
		profiles,
		trial.NewService(trialRepo),
		NewInMemoryRepository(),
		history.NewInMemoryRepository(),
		NewMockProvider(),
		nil,
		true,
	)

	now := time.Now().UTC()
	startsAt := now.Add(-10 * 24 * time.Hour)
	endsAt := now.Add(-3 * 24 * time.Hour)
	trialRepo.SaveTrial(ctx, "user-1", trial.State{
		TrialStartsAt:       &startsAt,
		TrialEndsAt:         &endsAt,
		ScansUsedTodayCount: 1,
		ScansUsedTodayDate:  now.Format("2006-01-02"),
	})

	if _, err := service.AnalyzeMenu(ctx, "user-1", nil); err != nil {
		t.Fatalf("expected quota bypass to allow the scan, got %v", err)
	}
}
