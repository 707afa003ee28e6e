package profile

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *Service) SaveProfile(ctx context.Context, userID string, user *UserProfile) error {
	if user == nil {
		return errors.New("profile is required")
	}

	switch user.Goal {
	case GoalLoseFat, GoalMaintain, GoalGainMuscle:
	default:
		return errors.New("unknown goal")
	}

	return s.repo.SaveProfile(ctx, userID, user)
}

// --------------------------------------------------
// App prefs
// --------------------------------------------------

func (s *Service) GetPrefs(ctx context.Context, userID string) (Prefs, error) {
	return s.repo.GetPrefs(ctx, userID)
}

func (s *Service) IncrementLaunchCount(ctx context.Context, userID string) (int, error) {
	prefs, err := s.repo.GetPrefs(ctx, userID)
	if err != nil {
		return 0, err
	}
	prefs.LaunchCount++
	if err := s.repo.SavePrefs(ctx, userID, prefs); err != nil {
		return 0, err
	}
	return prefs.LaunchCount, nil
}

func (s *Service) MarkSignInNudgeDismissed(ctx context.Context, userID string) error {
	prefs, err := s.repo.GetPrefs(ctx, userID)
	if err != nil {
		return err
	}
	prefs.SignInNudgeDismissed = true
	return s.repo.SavePrefs(ctx, userID, prefs)
}

func (s *Service) SetSaveScansPreference(ctx context.Context, userID string, saveScans bool) error {
	prefs, err := s.repo.GetPrefs(ctx, userID)
	if err != nil {
		return err
	}
	prefs.SaveScansToPhotos = saveScans
	prefs.SaveScansPromptHandled = true
	return s.repo.SavePrefs(ctx, userID, prefs)
}
