package profile

import (
	"context"
	"testing"
)

func TestSaveProfileValidatesGoal(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	err := service.SaveProfile(ctx, "user-1", &UserProfile{Goal: "Bulk hard"})
	if err == nil {
		t.Fatal("expected error for unknown goal")
	}

	err = service.SaveProfile(ctx, "user-1", &UserProfile{
		Goal:               GoalLoseFat,
		DietaryPreferences: []string{"Vegetarian"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := service.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || stored.Goal != GoalLoseFat {
		t.Fatalf("unexpected stored profile: %+v", stored)
	}
}

func TestGetProfileNilWhenUnset(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	stored, err := service.GetProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != nil {
		t.Fatalf("expected nil profile before onboarding, got %+v", stored)
	}
}

func TestIncrementLaunchCount(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	for want := 1; want <= 3; want++ {
		count, err := service.IncrementLaunchCount(ctx, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != want {
			t.Fatalf("expected launch count %d, got %d", want, count)
		}
	}
}

func TestSetSaveScansPreference(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	if err := service.SetSaveScansPreference(ctx, "user-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prefs, err := service.GetPrefs(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !prefs.SaveScansToPhotos || !prefs.SaveScansPromptHandled {
		t.Fatalf("unexpected prefs: %+v", prefs)
	}
}

func TestMarkSignInNudgeDismissed(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	if err := service.MarkSignInNudgeDismissed(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prefs, _ := service.GetPrefs(ctx, "user-1")
	if !prefs.SignInNudgeDismissed {
		t.Fatal("expected nudge dismissal to persist")
	}
}
