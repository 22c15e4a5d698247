package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	jwtinfra "github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/jwt"
	"github.com/MightyBhargava/LegalChain-sub001/internal/transport/http/middleware"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

// AuthEnvelope wraps login/register responses.
type AuthEnvelope struct {
	Bearer       string       `json:"Bearer,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	Session      *SafeSession `json:"session,omitempty"`
	User         *SafeUser    `json:"user,omitempty"`
	IsNewUser    bool         `json:"is_new_user"`
	Error        string       `json:"error,omitempty"`
}

// SessionEnvelope wraps current-session responses.
type SessionEnvelope struct {
	Session *SafeSession `json:"session,omitempty"`
	User    *SafeUser    `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// SafeUser is the user shape exposed over the wire; credentials and
// provider identifiers stay server-side.
type SafeUser struct {
	UserID    string  `json:"id"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	FullName  string  `json:"full_name"`
	IsLawyer  bool    `json:"is_lawyer"`
	BarNumber *string `json:"bar_number,omitempty"`
}

// SafeSession strips the refresh token from session responses; it travels
// only in the AuthEnvelope that created or rotated it.
type SafeSession struct {
	SessionID string `json:"id"`
	UserID    string `json:"user_id"`
	DeviceID  string `json:"device_id"`
}

func toSafeUser(u *domain.User) *SafeUser {
	if u == nil {
		return nil
	}
	return &SafeUser{
		UserID:    u.UserID,
		Email:     u.Email,
		Phone:     u.Phone,
		FullName:  u.FullName,
		IsLawyer:  u.IsLawyer,
		BarNumber: u.BarNumber,
	}
}

func toSafeSession(s *domain.Session) *SafeSession {
	if s == nil {
		return nil
	}
	return &SafeSession{SessionID: s.SessionID, UserID: s.UserID, DeviceID: s.DeviceID}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps domain sentinel errors to HTTP status codes.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func claimsFrom(r *http.Request) (*jwtinfra.Claims, bool) {
	return middleware.ClaimsFromContext(r.Context())
}

// claimedUserID is a shorthand for handlers that only need the caller's id.
func claimedUserID(r *http.Request) (string, bool) {
	claims, ok := claimsFrom(r)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}
