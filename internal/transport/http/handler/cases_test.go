package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	caseapp "github.com/MightyBhargava/LegalChain-sub001/internal/application/cases"
	notifapp "github.com/MightyBhargava/LegalChain-sub001/internal/application/notifications"
	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	jwtinfra "github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/jwt"
	"github.com/MightyBhargava/LegalChain-sub001/internal/transport/http/middleware"
)

// asUser injects JWT claims the way the auth middleware does, so handlers
// can be exercised without minting real tokens.
func asUser(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := &jwtinfra.Claims{UserID: userID, DeviceID: "d1", SessionID: "s1"}
			ctx := context.WithValue(r.Context(), middleware.ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newCaseRouter() http.Handler {
	reg := core.NewRegistry(func(c domain.Case) string { return c.CaseID }, nil)
	h := NewCaseHandler(caseapp.NewService(reg, nil))

	r := chi.NewRouter()
	r.Use(asUser("u1"))
	r.Get("/cases", h.List)
	r.Post("/cases", h.Create)
	r.Get("/cases/{id}", h.Get)
	r.Put("/cases/{id}", h.Update)
	r.Delete("/cases/{id}", h.Delete)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCaseEndpoints(t *testing.T) {
	router := newCaseRouter()

	rr := doJSON(t, router, http.MethodPost, "/cases", domain.CreateCaseRequest{
		Title:      "Singh vs. State Bank",
		CaseNumber: "CRL/2341/2025",
		Status:     "Under Trial",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created domain.Case
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	require.NotEmpty(t, created.CaseID)

	rr = doJSON(t, router, http.MethodGet, "/cases/"+created.CaseID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	created.Status = "Closed"
	rr = doJSON(t, router, http.MethodPut, "/cases/"+created.CaseID, created)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/cases", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []domain.Case
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Closed", listed[0].Status)

	rr = doJSON(t, router, http.MethodDelete, "/cases/"+created.CaseID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doJSON(t, router, http.MethodGet, "/cases/"+created.CaseID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCaseValidationFailure(t *testing.T) {
	router := newCaseRouter()

	rr := doJSON(t, router, http.MethodPost, "/cases", domain.CreateCaseRequest{Title: "No Number"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = doJSON(t, router, http.MethodGet, "/cases", nil)
	var listed []domain.Case
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&listed))
	assert.Empty(t, listed, "a rejected request must not persist anything")
}

func TestNotificationFeedEnvelope(t *testing.T) {
	reg := core.NewRegistry(func(n domain.Notification) string { return n.NotificationID }, core.SeedNotifications)
	h := NewNotificationHandler(notifapp.NewService(reg))

	r := chi.NewRouter()
	r.Use(asUser("u1"))
	r.Get("/notifications", h.List)
	r.Put("/notifications/read-all", h.MarkAllRead)

	rr := doJSON(t, r, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var feed NotificationFeedEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&feed))
	assert.Len(t, feed.Items, 4)
	assert.Equal(t, 2, feed.UnreadCount)

	rr = doJSON(t, r, http.MethodPut, "/notifications/read-all", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/notifications", nil)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&feed))
	assert.Zero(t, feed.UnreadCount)
}
