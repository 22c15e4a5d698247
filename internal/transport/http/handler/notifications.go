package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MightyBhargava/LegalChain-sub001/internal/application/notifications"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

// NotificationHandler handles the notification feed endpoints.
type NotificationHandler struct {
	svc notifications.Service
}

func NewNotificationHandler(svc notifications.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// NotificationFeedEnvelope carries the items together with the unread badge
// count so the client renders both from one response.
type NotificationFeedEnvelope struct {
	Items       []domain.Notification `json:"items"`
	UnreadCount int                   `json:"unread_count"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, NotificationFeedEnvelope{
		Items:       h.svc.List(r.Context(), userID),
		UnreadCount: h.svc.UnreadCount(r.Context(), userID),
	})
}

// ToggleRead flips one notification's read flag. Unknown ids are accepted
// and ignored.
func (h *NotificationHandler) ToggleRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	h.svc.ToggleRead(r.Context(), userID, chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "ok"})
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	h.svc.MarkAllRead(r.Context(), userID)
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "all read"})
}

func (h *NotificationHandler) LoadMore(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusCreated, h.svc.LoadMore(r.Context(), userID))
}
