package trial

import (
	"context"
	"math"
	"sync"
	"time"
)

// Service owns the trial window and the post-trial daily scan quota.
//
// The quota check-and-increment is a read-modify-write over the stored
// counter, so it runs under a mutex. Single-writer per process; callers
// must not bypass the service to mutate quota fields.
type Service struct {
	repo Repository
	mu   sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetTrial(ctx context.Context, userID string) (State, error) {
	return s.repo.GetTrial(ctx, userID)
}

func (s *Service) SaveTrial(ctx context.Context, userID string, state State) error {
	return s.repo.SaveTrial(ctx, userID, state)
}

// IncrementDailyScanIfAllowed decides whether a menu scan is permitted
// now, consuming quota when it applies. Premium users, users inside an
// active trial window, and users whose trial never started are always
// allowed with no state change. Past an expired trial the cap is one
// scan per calendar day.
func (s *Service) IncrementDailyScanIfAllowed(ctx context.Context, userID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.GetTrial(ctx, userID)
	if err != nil {
		return false, err
	}

	if state.IsPremium {
		return true, nil
	}
	if state.TrialEndsAt != nil && !now.After(*state.TrialEndsAt) {
		return true, nil
	}
	if state.TrialStartsAt == nil {
		// Not yet on a limited tier.
		return true, nil
	}

	today := dateOnly(now)
	if state.ScansUsedTodayDate != today {
		// First scan of a new day resets the counter.
		state.ScansUsedTodayDate = today
		state.ScansUsedTodayCount = 1
		return true, s.repo.SaveTrial(ctx, userID, state)
	}

	if state.ScansUsedTodayCount >= 1 {
		return false, nil
	}

	state.ScansUsedTodayCount++
	return true, s.repo.SaveTrial(ctx, userID, state)
}

// RegisterFirstResultIfNeeded records the user's first completed
// analysis and opens the trial window. Repeated calls are no-ops.
func (s *Service) RegisterFirstResultIfNeeded(ctx context.Context, userID string, now time.Time) (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.GetTrial(ctx, userID)
	if err != nil {
		return State{}, false, err
	}

	if state.FirstResultAt != nil {
		return state, false, nil
	}

	start := now
	state.FirstResultAt = &start
	if state.TrialStartsAt == nil {
		state.TrialStartsAt = &start
	}
	if state.TrialEndsAt == nil {
		end := now.Add(TrialDays * 24 * time.Hour)
		state.TrialEndsAt = &end
	}

	if err := s.repo.SaveTrial(ctx, userID, state); err != nil {
		return State{}, false, err
	}
	return state, true, nil
}

// DaysLeft returns whole trial days remaining, floored at 0.
// Premium users have no countdown.
func DaysLeft(state State, now time.Time) int {
	if state.TrialEndsAt == nil || state.IsPremium {
		return 0
	}
	remaining := state.TrialEndsAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// Upgrade marks the user premium. Called by the purchase flow.
func (s *Service) Upgrade(ctx context.Context, userID string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.GetTrial(ctx, userID)
	if err != nil {
		return State{}, err
	}

	state.IsPremium = true
	if err := s.repo.SaveTrial(ctx, userID, state); err != nil {
		return State{}, err
	}
	return state, nil
}
