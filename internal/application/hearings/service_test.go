package hearings

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

type notifierSpy struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *notifierSpy) Notify(_ context.Context, _ string, item domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, item)
}

func newFixture() (*core.Registry[domain.Hearing], *core.Registry[domain.Case], *notifierSpy, Service) {
	hearings := core.NewRegistry(func(h domain.Hearing) string { return h.HearingID }, nil)
	cases := core.NewRegistry(func(c domain.Case) string { return c.CaseID }, nil)
	spy := &notifierSpy{}
	return hearings, cases, spy, NewService(hearings, cases, spy)
}

func TestScheduleRejectsIncompleteRequests(t *testing.T) {
	ctx := context.Background()

	for name, req := range map[string]domain.CreateHearingRequest{
		"missing date":       {CaseID: "c1", Time: "10:30", CourtRoom: "Court Room 2"},
		"missing time":       {CaseID: "c1", Date: "2026-09-14", CourtRoom: "Court Room 2"},
		"missing court room": {CaseID: "c1", Date: "2026-09-14", Time: "10:30"},
	} {
		t.Run(name, func(t *testing.T) {
			hearings, _, spy, svc := newFixture()

			h, err := svc.Schedule(ctx, "u1", req)

			require.ErrorIs(t, err, domain.ErrBadRequest)
			assert.Nil(t, h)
			assert.Zero(t, hearings.For("u1").Len(), "a rejected request must not persist anything")
			assert.Empty(t, spy.sent, "a rejected request must not notify")
		})
	}
}

func TestScheduleDenormalizesCaseAndBumpsCounter(t *testing.T) {
	ctx := context.Background()
	hearings, cases, spy, svc := newFixture()
	cases.For("u1").Replace([]domain.Case{{
		CaseID:     "c1",
		Title:      "Singh vs. State Bank",
		CaseNumber: "CRL/2341/2025",
	}})

	h, err := svc.Schedule(ctx, "u1", domain.CreateHearingRequest{
		CaseID:    "c1",
		Date:      "2026-09-14",
		Time:      "10:30",
		CourtRoom: "Court Room 2",
		Purpose:   "Evidence recording",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, h.HearingID)
	assert.Equal(t, "Singh vs. State Bank", h.CaseTitle)
	assert.Equal(t, "CRL/2341/2025", h.CaseNumber)
	assert.Equal(t, 1, hearings.For("u1").Len())

	c, ok := cases.For("u1").Get("c1")
	require.True(t, ok)
	assert.Equal(t, 1, c.HearingCount)
	assert.Equal(t, "2026-09-14 10:30", c.NextHearing)
	assert.Equal(t, "Court Room 2", c.CourtRoom)

	require.Len(t, spy.sent, 1)
	assert.Equal(t, domain.NotificationTypeHearing, spy.sent[0].Type)
	assert.Equal(t, "Hearing Scheduled", spy.sent[0].Title)
	assert.Contains(t, spy.sent[0].Description, "Singh vs. State Bank")
}

func TestConcurrentSchedulesNeverLoseCounterBumps(t *testing.T) {
	ctx := context.Background()
	hearings, cases, _, svc := newFixture()
	cases.For("u1").Replace([]domain.Case{{
		CaseID:     "c1",
		Title:      "Singh vs. State Bank",
		CaseNumber: "CRL/2341/2025",
	}})

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Schedule(ctx, "u1", domain.CreateHearingRequest{
				CaseID:    "c1",
				Date:      "2026-09-14",
				Time:      "10:30",
				CourtRoom: "Court Room 2",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c, ok := cases.For("u1").Get("c1")
	require.True(t, ok)
	assert.Equal(t, n, c.HearingCount, "every schedule must bump the counter exactly once")
	assert.Equal(t, n, hearings.For("u1").Len())
}

func TestScheduleWithUnknownCaseStillPersists(t *testing.T) {
	ctx := context.Background()
	hearings, cases, spy, svc := newFixture()

	h, err := svc.Schedule(ctx, "u1", domain.CreateHearingRequest{
		CaseID:    "missing",
		Date:      "2026-09-14",
		Time:      "10:30",
		CourtRoom: "Court Room 2",
	})
	require.NoError(t, err)

	assert.Empty(t, h.CaseTitle)
	assert.Equal(t, 1, hearings.For("u1").Len())
	assert.Zero(t, cases.For("u1").Len())
	require.Len(t, spy.sent, 1)
	assert.Contains(t, spy.sent[0].Description, "your case")
}
