package notifications

import (
	"context"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

type Service interface {
	List(ctx context.Context, userID string) []domain.Notification
	UnreadCount(ctx context.Context, userID string) int
	// ToggleRead flips one record's read flag; an unknown id is a no-op.
	ToggleRead(ctx context.Context, userID, notificationID string)
	// MarkAllRead is idempotent and one-directional.
	MarkAllRead(ctx context.Context, userID string)
	// LoadMore appends one synthetic unread item, the way the notification
	// screen's load-more action does.
	LoadMore(ctx context.Context, userID string) domain.Notification
	// Notify appends an app-generated notification (hearing scheduled, case
	// status changed). Unknown types degrade to the update type.
	Notify(ctx context.Context, userID string, n domain.Notification)
}

type service struct {
	stores *core.Registry[domain.Notification]
}

func NewService(stores *core.Registry[domain.Notification]) Service {
	return &service{stores: stores}
}

func (s *service) List(_ context.Context, userID string) []domain.Notification {
	return s.stores.For(userID).Snapshot()
}

func (s *service) UnreadCount(_ context.Context, userID string) int {
	return core.UnreadCount(s.stores.For(userID).Snapshot())
}

func (s *service) ToggleRead(_ context.Context, userID, notificationID string) {
	s.stores.For(userID).Apply(func(items []domain.Notification) []domain.Notification {
		return core.ToggleRead(items, notificationID)
	})
}

func (s *service) MarkAllRead(_ context.Context, userID string) {
	s.stores.For(userID).Apply(func(items []domain.Notification) []domain.Notification {
		return core.MarkAllRead(items)
	})
}

func (s *service) LoadMore(_ context.Context, userID string) domain.Notification {
	var appended domain.Notification
	s.stores.For(userID).Apply(func(items []domain.Notification) []domain.Notification {
		next := core.AppendNotification(items, domain.Notification{
			Type:        domain.NotificationTypeUpdate,
			Title:       "Case Update",
			Description: "New update on your case",
			TimeLabel:   "Just now",
		})
		appended = next[len(next)-1]
		return next
	})
	return appended
}

func (s *service) Notify(_ context.Context, userID string, n domain.Notification) {
	if !domain.ValidNotificationType(n.Type) {
		n.Type = domain.NotificationTypeUpdate
	}
	s.stores.For(userID).Apply(func(items []domain.Notification) []domain.Notification {
		return core.AppendNotification(items, n)
	})
}
