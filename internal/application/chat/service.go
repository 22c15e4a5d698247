package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/ai"
	"github.com/MightyBhargava/LegalChain-sub001/internal/pkg/id"
	"github.com/MightyBhargava/LegalChain-sub001/internal/pkg/validate"
)

// FallbackReply is appended when the AI endpoint fails, answers
// unsuccessfully, or returns an empty reply.
const FallbackReply = "Sorry, I could not process your question right now. Please try again later."

// asker matches ai.Client; declared locally so tests can stub the endpoint.
type asker interface {
	Ask(ctx context.Context, question string) ai.Outcome
}

type Service interface {
	History(ctx context.Context, userID string) []domain.ChatMessage
	// Ask records the user's question, consults the AI endpoint, and applies
	// exactly one reply mutation per resolved call: the assistant's reply on
	// success, the fixed fallback message on any other outcome.
	Ask(ctx context.Context, userID string, req domain.AskRequest) (*domain.ChatMessage, error)
}

type service struct {
	stores *core.Registry[domain.ChatMessage]
	ai     asker
}

func NewService(stores *core.Registry[domain.ChatMessage], client asker) Service {
	return &service{stores: stores, ai: client}
}

func (s *service) History(_ context.Context, userID string) []domain.ChatMessage {
	return s.stores.For(userID).Snapshot()
}

func (s *service) Ask(ctx context.Context, userID string, req domain.AskRequest) (*domain.ChatMessage, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	store := s.stores.For(userID)

	question := domain.ChatMessage{
		MessageID: id.New(),
		Role:      domain.ChatRoleUser,
		Text:      req.Question,
		CreatedAt: time.Now().UTC(),
	}
	store.Apply(func(items []domain.ChatMessage) []domain.ChatMessage {
		return appendMessage(items, question)
	})

	outcome := s.ai.Ask(ctx, req.Question)

	reply := domain.ChatMessage{
		MessageID: id.New(),
		Role:      domain.ChatRoleAssistant,
		Text:      FallbackReply,
		CreatedAt: time.Now().UTC(),
	}
	if outcome.Success {
		reply.Text = outcome.Reply
	}
	store.Apply(func(items []domain.ChatMessage) []domain.ChatMessage {
		return appendMessage(items, reply)
	})
	return &reply, nil
}

func appendMessage(items []domain.ChatMessage, m domain.ChatMessage) []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(items), len(items)+1)
	copy(out, items)
	return append(out, m)
}
