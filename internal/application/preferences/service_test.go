package preferences

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

type storeMock struct{ mock.Mock }

func (m *storeMock) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.(*domain.Preferences), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *storeMock) Put(ctx context.Context, p *domain.Preferences) error {
	return m.Called(ctx, p).Error(0)
}

func TestGetReturnsDefaultsWhenUnsaved(t *testing.T) {
	ctx := context.Background()
	repo := new(storeMock)
	repo.On("Get", ctx, "u1").Return(nil, fmt.Errorf("preferences: %w", domain.ErrNotFound)).Once()

	p, err := NewService(repo).Get(ctx, "u1")

	require.NoError(t, err)
	assert.False(t, p.DarkMode)
	assert.Equal(t, "en", p.Language)
	repo.AssertExpectations(t)
}

func TestGetReturnsSavedSettings(t *testing.T) {
	ctx := context.Background()
	repo := new(storeMock)
	repo.On("Get", ctx, "u1").Return(&domain.Preferences{UserID: "u1", DarkMode: true, Language: "hi"}, nil).Once()

	p, err := NewService(repo).Get(ctx, "u1")

	require.NoError(t, err)
	assert.True(t, p.DarkMode)
	assert.Equal(t, "hi", p.Language)
}

func TestUpdateMergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	repo := new(storeMock)
	repo.On("Get", ctx, "u1").Return(nil, fmt.Errorf("preferences: %w", domain.ErrNotFound)).Once()
	repo.On("Put", ctx, mock.MatchedBy(func(p *domain.Preferences) bool {
		return p.UserID == "u1" && p.DarkMode && p.Language == "en"
	})).Return(nil).Once()

	dark := true
	p, err := NewService(repo).Update(ctx, "u1", domain.UpdatePreferencesRequest{DarkMode: &dark})

	require.NoError(t, err)
	assert.True(t, p.DarkMode)
	assert.Equal(t, "en", p.Language, "untouched fields keep their current value")
	repo.AssertExpectations(t)
}

func TestUpdateRejectsBadLanguageTag(t *testing.T) {
	repo := new(storeMock)
	bad := "not a language"

	p, err := NewService(repo).Update(context.Background(), "u1", domain.UpdatePreferencesRequest{Language: &bad})

	require.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Nil(t, p)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}
