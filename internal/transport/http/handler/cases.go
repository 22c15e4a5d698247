package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MightyBhargava/LegalChain-sub001/internal/application/cases"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

// CaseHandler handles case list and CRUD endpoints.
type CaseHandler struct {
	svc cases.Service
}

func NewCaseHandler(svc cases.Service) *CaseHandler { return &CaseHandler{svc: svc} }

func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.List(r.Context(), userID))
}

func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	c, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.Add(r.Context(), claims.UserID, req, req.AddedByLawyer)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update replaces the whole case record. Updating an id that does not exist
// is not an error; the payload is echoed back unchanged.
func (h *CaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var c domain.Case
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.CaseID = chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, h.svc.Update(r.Context(), userID, c))
}

func (h *CaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	h.svc.Remove(r.Context(), userID, chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "case removed"})
}

func (h *CaseHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer f.Close()

	docID, err := h.svc.AttachDocument(r.Context(), userID, chi.URLParam(r, "id"),
		header.Filename, f, header.Header.Get("Content-Type"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"document_id": docID})
}

func (h *CaseHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := claimedUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	rc, err := h.svc.OpenDocument(r.Context(), userID, chi.URLParam(r, "id"), chi.URLParam(r, "docID"))
	if err != nil {
		httpError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = io.Copy(w, rc)
}
