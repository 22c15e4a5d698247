package domain

// Notification types form a closed set; each maps to a fixed icon/color
// pairing on the client.
const (
	NotificationTypeHearing  = "hearing"
	NotificationTypeDocument = "document"
	NotificationTypeAlert    = "alert"
	NotificationTypeMessage  = "message"
	NotificationTypeUpdate   = "update"
)

// ValidNotificationType reports whether t belongs to the closed type set.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationTypeHearing, NotificationTypeDocument, NotificationTypeAlert,
		NotificationTypeMessage, NotificationTypeUpdate:
		return true
	}
	return false
}

// Notification is an alert surfaced to the user. The read flag is binary and
// independently toggleable per item; notifications are never deleted.
type Notification struct {
	NotificationID string `json:"id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	TimeLabel      string `json:"time"` // relative-time display label
	Read           bool   `json:"read"`
}
