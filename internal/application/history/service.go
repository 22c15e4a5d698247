package history

import (
	"context"
	"fmt"
	"time"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

const downloadURLTTL = 15 * time.Minute

// objectStore is the slice of the S3 store this package needs.
type objectStore interface {
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type Service interface {
	List(ctx context.Context, userID string) []domain.HistoryItem
	// DownloadURL resolves an item's download locator to a time-limited URL.
	// The client fetches in the background; completion is not tracked.
	DownloadURL(ctx context.Context, userID, historyID string) (string, error)
}

type service struct {
	stores  *core.Registry[domain.HistoryItem]
	objects objectStore
}

func NewService(stores *core.Registry[domain.HistoryItem], objects objectStore) Service {
	return &service{stores: stores, objects: objects}
}

func (s *service) List(_ context.Context, userID string) []domain.HistoryItem {
	return s.stores.For(userID).Snapshot()
}

func (s *service) DownloadURL(ctx context.Context, userID, historyID string) (string, error) {
	item, ok := s.stores.For(userID).Get(historyID)
	if !ok {
		return "", fmt.Errorf("history item %s: %w", historyID, domain.ErrNotFound)
	}
	url, err := s.objects.PresignedURL(ctx, item.DownloadKey, downloadURLTTL)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", item.DownloadKey, err)
	}
	return url, nil
}
