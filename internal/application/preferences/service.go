package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/MightyBhargava/LegalChain-sub001/internal/pkg/validate"
)

type Service interface {
	// Get returns the user's saved settings, or the defaults (dark mode off,
	// language "en") when nothing was ever saved.
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	Update(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) (*domain.Preferences, error)
}

type store interface {
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	Put(ctx context.Context, p *domain.Preferences) error
}

type service struct {
	repo store
}

func NewService(repo store) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Preferences{
				UserID:   userID,
				DarkMode: domain.DefaultDarkMode,
				Language: domain.DefaultLanguage,
			}, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) (*domain.Preferences, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.DarkMode != nil {
		p.DarkMode = *req.DarkMode
	}
	if req.Language != nil {
		p.Language = *req.Language
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
