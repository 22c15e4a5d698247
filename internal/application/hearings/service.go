package hearings

import (
	"context"
	"fmt"
	"time"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/MightyBhargava/LegalChain-sub001/internal/pkg/id"
	"github.com/MightyBhargava/LegalChain-sub001/internal/pkg/validate"
)

// notifier is the slice of the notification service this package needs.
type notifier interface {
	Notify(ctx context.Context, userID string, n domain.Notification)
}

type Service interface {
	List(ctx context.Context, userID string) []domain.Hearing
	// Schedule validates the request and persists a new hearing. Date, time
	// and court room are mandatory: when any is missing the request is
	// rejected with ErrBadRequest and no state changes at all.
	Schedule(ctx context.Context, userID string, req domain.CreateHearingRequest) (*domain.Hearing, error)
}

type service struct {
	hearings *core.Registry[domain.Hearing]
	cases    *core.Registry[domain.Case]
	notifier notifier
}

func NewService(hearings *core.Registry[domain.Hearing], cases *core.Registry[domain.Case], n notifier) Service {
	return &service{hearings: hearings, cases: cases, notifier: n}
}

func (s *service) List(_ context.Context, userID string) []domain.Hearing {
	return s.hearings.For(userID).Snapshot()
}

func (s *service) Schedule(ctx context.Context, userID string, req domain.CreateHearingRequest) (*domain.Hearing, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	h := domain.Hearing{
		HearingID: id.New(),
		CaseID:    req.CaseID,
		Date:      req.Date,
		Time:      req.Time,
		CourtRoom: req.CourtRoom,
		Purpose:   req.Purpose,
		Notes:     req.Notes,
		Reminders: req.Reminders,
		CreatedAt: time.Now().UTC(),
	}

	// Denormalize the case title/number at creation time; the copy does not
	// track later case edits. The lookup and counter bump run inside one
	// Apply so concurrent schedules for the same case cannot lose bumps.
	s.cases.For(userID).Apply(func(items []domain.Case) []domain.Case {
		c, ok := findCase(items, req.CaseID)
		if !ok {
			return items
		}
		h.CaseTitle = c.Title
		h.CaseNumber = c.CaseNumber

		c.HearingCount++
		c.NextHearing = req.Date + " " + req.Time
		c.CourtRoom = req.CourtRoom
		return core.UpdateCase(items, c)
	})

	s.hearings.For(userID).Apply(func(items []domain.Hearing) []domain.Hearing {
		out := make([]domain.Hearing, len(items), len(items)+1)
		copy(out, items)
		return append(out, h)
	})

	title := h.CaseTitle
	if title == "" {
		title = "your case"
	}
	s.notifier.Notify(ctx, userID, domain.Notification{
		Type:        domain.NotificationTypeHearing,
		Title:       "Hearing Scheduled",
		Description: fmt.Sprintf("%s on %s at %s, %s", title, h.Date, h.Time, h.CourtRoom),
		TimeLabel:   "Just now",
	})

	return &h, nil
}

func findCase(items []domain.Case, id string) (domain.Case, bool) {
	for _, c := range items {
		if c.CaseID == id {
			return c, true
		}
	}
	return domain.Case{}, false
}
