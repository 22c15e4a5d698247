package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MightyBhargava/LegalChain-sub001/internal/application/chat"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

// ChatHandler handles the legal-insights chat endpoints.
type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler { return &ChatHandler{svc: svc} }

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.History(r.Context(), userID))
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reply, err := h.svc.Ask(r.Context(), userID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
