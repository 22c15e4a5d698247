package domain

import "time"

// Preference defaults applied when no record exists for a user.
const (
	DefaultDarkMode = false
	DefaultLanguage = "en"
)

// Preferences holds per-user client settings. PK: user_id.
type Preferences struct {
	UserID    string    `json:"-" dynamodbav:"user_id"`
	DarkMode  bool      `json:"dark_mode" dynamodbav:"dark_mode"`
	Language  string    `json:"language" dynamodbav:"language"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type UpdatePreferencesRequest struct {
	DarkMode *bool   `json:"dark_mode"`
	Language *string `json:"language" validate:"omitempty,bcp47_language_tag"`
}
