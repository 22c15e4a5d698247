package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MightyBhargava/LegalChain-sub001/internal/application/history"
)

// HistoryHandler handles the billing/consultation history endpoints.
type HistoryHandler struct {
	svc history.Service
}

func NewHistoryHandler(svc history.Service) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.List(r.Context(), userID))
}

// Download resolves the item's invoice to a time-limited URL the client
// fetches directly from object storage.
func (h *HistoryHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	url, err := h.svc.DownloadURL(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
