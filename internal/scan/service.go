package scan

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexshipulin/Buddy/internal/history"
	"github.com/alexshipulin/Buddy/internal/profile"
	"github.com/alexshipulin/Buddy/internal/trial"
)

var (
	// ErrNoProfile means onboarding never completed; route the user
	// there, not to an error screen.
	ErrNoProfile = errors.New("user profile is not set")

	// ErrDailyScanLimitReached routes the user to the upgrade path.
	ErrDailyScanLimitReached = errors.New("daily menu scan limit reached")
)

// ProfileReader is the slice of the profile store the orchestrator needs.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*profile.UserProfile, error)
}

// ImageArchiver persists captured images to object storage and
// returns a durable URL. Optional; nil keeps the raw references.
type ImageArchiver interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// Service sequences one menu scan: profile gate, quota gate, provider
// call, persistence, trial registration.
type Service struct {
	profiles    ProfileReader
	trial       *trial.Service
	results     Repository
	history     history.Repository
	provider    Provider
	archiver    ImageArchiver
	bypassQuota bool
}

func NewService(
	profiles ProfileReader,
	trialService *trial.Service,
	results Repository,
	historyRepo history.Repository,
	provider Provider,
	archiver ImageArchiver,
	bypassQuota bool,
) *Service {
	return &Service{
		profiles:    profiles,
		trial:       trialService,
		results:     results,
		history:     historyRepo,
		provider:    provider,
		archiver:    archiver,
		bypassQuota: bypassQuota,
	}
}

// AnalyzeMenu is the single entry point for a scan. Nothing is
// persisted until the provider has returned a result, so a cancelled
// or failed call leaves the stores untouched.
func (s *Service) AnalyzeMenu(ctx context.Context, userID string, images []string) (*AnalyzeMenuOutput, error) {
	user, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoProfile
	}

	// Post-trial free users are limited to one scan per day.
	if !s.bypassQuota {
		allowed, err := s.trial.IncrementDailyScanIfAllowed(ctx, userID, time.Now())
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrDailyScanLimitReached
		}
	}

	result, err := s.provider.AnalyzeMenu(ctx, images, user)
	if err != nil {
		return nil, err
	}

	// Archive only after the provider succeeded; a failed scan must
	// leave no trace.
	stored := s.archiveImages(ctx, userID, images)
	result.InputImages = stored

	if err := s.results.SaveResult(ctx, userID, result); err != nil {
		return nil, err
	}

	item := history.Item{
		ID:         newID("history"),
		Type:       history.TypeMenuScan,
		Title:      "Menu scan",
		CreatedAt:  result.CreatedAt,
		PayloadRef: result.ID,
		ImageURIs:  stored,
	}
	if err := s.history.AddItem(ctx, userID, item); err != nil {
		return nil, err
	}

	state, isFirst, err := s.trial.RegisterFirstResultIfNeeded(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	// Product rule: show the paywall right after the very first
	// completed result, never on later scans.
	return &AnalyzeMenuOutput{
		ResultID:                      result.ID,
		ShouldShowPaywallAfterResults: isFirst,
		TrialDaysLeft:                 trial.DaysLeft(state, time.Now()),
	}, nil
}

// GetResult looks up a stored scan result.
func (s *Service) GetResult(ctx context.Context, userID, resultID string) (*MenuScanResult, error) {
	return s.results.GetResult(ctx, userID, resultID)
}

// archiveImages uploads inline (data URI) images to object storage and
// swaps them for durable URLs. Upload failures keep the original
// reference; archiving is best-effort.
func (s *Service) archiveImages(ctx context.Context, userID string, images []string) []string {
	if s.archiver == nil {
		return images
	}

	stored := make([]string, len(images))
	for i, ref := range images {
		stored[i] = ref
		if !strings.HasPrefix(ref, "data:") {
			continue
		}

		img, err := encodeImage(ctx, ref)
		if err != nil {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			continue
		}

		key := fmt.Sprintf("scans/%s/%s", userID, uuid.New().String())
		url, err := s.archiver.Upload(ctx, key, bytes.NewReader(data), img.MIMEType)
		if err != nil {
			log.Printf("scan image archive failed: %v", err)
			continue
		}
		stored[i] = url
	}
	return stored
}
