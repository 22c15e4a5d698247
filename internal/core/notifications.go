package core

import (
	"strconv"

	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

// ToggleRead flips the read flag on the record with the given id. An absent
// id is a no-op. Toggling twice restores the original value.
func ToggleRead(items []domain.Notification, id string) []domain.Notification {
	for i := range items {
		if items[i].NotificationID == id {
			out := make([]domain.Notification, len(items))
			copy(out, items)
			out[i].Read = !out[i].Read
			return out
		}
	}
	return items
}

// MarkAllRead sets read=true on every unread record. Idempotent, and
// one-directional: it never clears a read flag.
func MarkAllRead(items []domain.Notification) []domain.Notification {
	changed := false
	for i := range items {
		if !items[i].Read {
			changed = true
			break
		}
	}
	if !changed {
		return items
	}
	out := make([]domain.Notification, len(items))
	copy(out, items)
	for i := range out {
		out[i].Read = true
	}
	return out
}

// AppendNotification adds one new unread record to the end. When n carries no
// id, one is derived from the collection size. Count-derived ids stay unique
// because the notification collection is append-only: no delete operation
// exists in this domain.
func AppendNotification(items []domain.Notification, n domain.Notification) []domain.Notification {
	if n.NotificationID == "" {
		n.NotificationID = strconv.Itoa(len(items) + 1)
	}
	n.Read = false
	out := make([]domain.Notification, len(items), len(items)+1)
	copy(out, items)
	return append(out, n)
}

// UnreadCount is the derived unread badge value for a snapshot.
func UnreadCount(items []domain.Notification) int {
	n := 0
	for i := range items {
		if !items[i].Read {
			n++
		}
	}
	return n
}
