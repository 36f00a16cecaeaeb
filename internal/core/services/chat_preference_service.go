package services

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
)

type chatPreferenceService struct {
	BaseService
	repo  portsrepo.ChatPreferenceRepository
	guard *MutationGuard
}

// NewChatPreferenceService creates the chat preference passthrough.
func NewChatPreferenceService(repo portsrepo.ChatPreferenceRepository, guard *MutationGuard) portssvc.ChatPreferenceSvc {
	return &chatPreferenceService{repo: repo, guard: guard}
}

func (s *chatPreferenceService) GetChatPreference(ctx context.Context) (*domain.ChatPreference, error) {
	pref, err := s.repo.GetChatPreference(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get chat preference")
		return nil, err
	}
	return pref, nil
}

func (s *chatPreferenceService) UpdateChatPreference(ctx context.Context, pref domain.ChatPreference) (*domain.ChatPreference, error) {
	return Guarded(ctx, s.guard, "update", ResourceChatPreferences, func(ctx context.Context) (*domain.ChatPreference, error) {
		return s.repo.UpdateChatPreference(ctx, pref)
	})
}
