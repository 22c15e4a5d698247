package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MightyBhargava/LegalChain-sub001/internal/application/hearings"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

// HearingHandler handles hearing list and scheduling endpoints.
type HearingHandler struct {
	svc hearings.Service
}

func NewHearingHandler(svc hearings.Service) *HearingHandler {
	return &HearingHandler{svc: svc}
}

func (h *HearingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.List(r.Context(), userID))
}

func (h *HearingHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateHearingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	hearing, err := h.svc.Schedule(r.Context(), userID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hearing)
}
