package domain

import "time"

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn in the AI insights conversation.
type ChatMessage struct {
	MessageID string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created"`
}

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}
