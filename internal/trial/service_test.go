package trial

import (
	"context"
	"testing"
	"time"
)

func TestRegisterFirstResultIsIdempotent(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	state, isFirst, err := service.RegisterFirstResultIfNeeded(ctx, "user-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isFirst {
		t.Fatal("expected first call to report isFirstResult=true")
	}
	if state.FirstResultAt == nil || state.TrialStartsAt == nil || state.TrialEndsAt == nil {
		t.Fatal("expected trial window to be set")
	}

	wantEnd := now.Add(TrialDays * 24 * time.Hour)
	if !state.TrialEndsAt.Equal(wantEnd) {
		t.Fatalf("expected trialEndsAt %v, got %v", wantEnd, state.TrialEndsAt)
	}

	later := now.Add(3 * time.Hour)
	second, isFirst, err := service.RegisterFirstResultIfNeeded(ctx, "user-1", later)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isFirst {
		t.Fatal("expected second call to report isFirstResult=false")
	}
	if !second.TrialStartsAt.Equal(*state.TrialStartsAt) || !second.TrialEndsAt.Equal(*state.TrialEndsAt) {
		t.Fatal("expected trial window unchanged on repeated registration")
	}
}

func TestQuotaBoundaryAfterExpiredTrial(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	startsAt := now.Add(-8 * 24 * time.Hour)
	endsAt := now.Add(-24 * time.Hour)

	repo.SaveTrial(ctx, "user-1", State{
		TrialStartsAt: &startsAt,
		TrialEndsAt:   &endsAt,
	})

	// 1st scan today
	allowed, err := service.IncrementDailyScanIfAllowed(ctx, "user-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatal("expected first scan of the day to be allowed")
	}

	state, _ := repo.GetTrial(ctx, "user-1")
	if state.ScansUsedTodayCount != 1 {
		t.Fatalf("expected counter 1, got %d", state.ScansUsedTodayCount)
	}
	if state.ScansUsedTodayDate != "2025-03-10" {
		t.Fatalf("expected counter date 2025-03-10, got %s", state.ScansUsedTodayDate)
	}

	// 2nd scan the same day
	allowed, err = service.IncrementDailyScanIfAllowed(ctx, "user-1", now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatal("expected second scan of the day to be denied")
	}

	// Next day resets the counter
	nextDay := now.Add(24 * time.Hour)
	allowed, err = service.IncrementDailyScanIfAllowed(ctx, "user-1", nextDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatal("expected scan on the following day to be allowed")
	}

	state, _ = repo.GetTrial(ctx, "user-1")
	if state.ScansUsedTodayCount != 1 {
		t.Fatalf("expected counter reset to 1, got %d", state.ScansUsedTodayCount)
	}
	if state.ScansUsedTodayDate != "2025-03-11" {
		t.Fatalf("expected counter date 2025-03-11, got %s", state.ScansUsedTodayDate)
	}
}

func TestPremiumBypassesQuota(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	startsAt := now.Add(-30 * 24 * time.Hour)
	endsAt := now.Add(-23 * 24 * time.Hour)

	repo.SaveTrial(ctx, "user-1", State{
		IsPremium:           true,
		TrialStartsAt:       &startsAt,
		TrialEndsAt:         &endsAt,
		ScansUsedTodayCount: 1,
		ScansUsedTodayDate:  "2025-03-10",
	})

	for i := 0; i < 5; i++ {
		allowed, err := service.IncrementDailyScanIfAllowed(ctx, "user-1", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatal("expected premium user to always be allowed")
		}
	}

	state, _ := repo.GetTrial(ctx, "user-1")
	if state.ScansUsedTodayCount != 1 {
		t.Fatalf("expected counter untouched for premium, got %d", state.ScansUsedTodayCount)
	}
}

func TestScanAllowedBeforeTrialStarts(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	// Fresh install: no trial, not premium
	allowed, err := service.IncrementDailyScanIfAllowed(ctx, "user-1", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatal("expected scan allowed before trial ever started")
	}

	state, _ := repo.GetTrial(ctx, "user-1")
	if state.ScansUsedTodayCount != 0 {
		t.Fatal("expected no quota consumed before trial starts")
	}
}

func TestDaysLeftIsMonotonic(t *testing.T) {
	endsAt := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)
	state := State{TrialEndsAt: &endsAt}

	previous := TrialDays + 1
	now := endsAt.Add(-7 * 24 * time.Hour)
	for i := 0; i < 20; i++ {
		days := DaysLeft(state, now)
		if days > previous {
			t.Fatalf("days left increased from %d to %d", previous, days)
		}
		if days < 0 {
			t.Fatalf("days left went negative: %d", days)
		}
		previous = days
		now = now.Add(12 * time.Hour)
	}

	if DaysLeft(state, endsAt) != 0 {
		t.Fatal("expected 0 days left at trial end")
	}
	if DaysLeft(state, endsAt.Add(time.Hour)) != 0 {
		t.Fatal("expected 0 days left after trial end")
	}
}

func TestDaysLeftZeroForPremium(t *testing.T) {
	endsAt := time.Now().Add(5 * 24 * time.Hour)
	state := State{IsPremium: true, TrialEndsAt: &endsAt}

	if DaysLeft(state, time.Now()) != 0 {
		t.Fatal("expected 0 days left for premium regardless of dates")
	}
}
