package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

type objectStoreMock struct{ mock.Mock }

func (m *objectStoreMock) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func newService(objects objectStore) Service {
	reg := core.NewRegistry(func(h domain.HistoryItem) string { return h.HistoryID }, core.SeedHistory)
	return NewService(reg, objects)
}

func TestListIsSeededAndStable(t *testing.T) {
	svc := newService(new(objectStoreMock))

	items := svc.List(context.Background(), "u1")

	require.Len(t, items, 3)
	assert.Equal(t, "h1", items[0].HistoryID)
	assert.Equal(t, domain.HistoryStatusActive, items[1].Status)
}

func TestDownloadURLPresignsTheItemKey(t *testing.T) {
	ctx := context.Background()
	objects := new(objectStoreMock)
	objects.On("PresignedURL", ctx, "invoices/h2.pdf", downloadURLTTL).
		Return("https://s3.example/invoices/h2.pdf?sig=abc", nil).Once()

	url, err := newService(objects).DownloadURL(ctx, "u1", "h2")

	require.NoError(t, err)
	assert.Contains(t, url, "invoices/h2.pdf")
	objects.AssertExpectations(t)
}

func TestDownloadURLUnknownItem(t *testing.T) {
	objects := new(objectStoreMock)

	url, err := newService(objects).DownloadURL(context.Background(), "u1", "h99")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, url)
	objects.AssertNotCalled(t, "PresignedURL", mock.Anything, mock.Anything, mock.Anything)
}
