package http

import (
	"context"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/ai"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/dynamo"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/google"
	jwtinfra "github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/jwt"
	s3infra "github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/s3"
)

// Registries groups the per-user in-memory collections the router serves.
// Each registry hands out one serialized store per user, so every mutation
// on a collection is applied in arrival order.
type Registries struct {
	Cases         *core.Registry[domain.Case]
	Hearings      *core.Registry[domain.Hearing]
	Notifications *core.Registry[domain.Notification]
	History       *core.Registry[domain.HistoryItem]
	Chat          *core.Registry[domain.ChatMessage]
}

// NewRegistries wires the id accessors and seed data for every collection.
// Cases, hearings and chat start empty; notifications and history start with
// the sample sets a fresh account sees.
func NewRegistries() *Registries {
	return &Registries{
		Cases:         core.NewRegistry(func(c domain.Case) string { return c.CaseID }, nil),
		Hearings:      core.NewRegistry(func(h domain.Hearing) string { return h.HearingID }, nil),
		Notifications: core.NewRegistry(func(n domain.Notification) string { return n.NotificationID }, core.SeedNotifications),
		History:       core.NewRegistry(func(h domain.HistoryItem) string { return h.HistoryID }, core.SeedHistory),
		Chat:          core.NewRegistry(func(m domain.ChatMessage) string { return m.MessageID }, nil),
	}
}

// GoogleVerifier is the slice of the Google token verifier the router needs.
type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo       *dynamo.UserRepo
	SessionRepo    *dynamo.SessionRepo
	DeviceRepo     *dynamo.DeviceRepo
	PreferenceRepo *dynamo.PreferenceRepo
	S3Store        *s3infra.Store
	AIClient       ai.Client
	GoogleVerifier GoogleVerifier
	JWTProvider    *jwtinfra.Provider
	Registries     *Registries
}
