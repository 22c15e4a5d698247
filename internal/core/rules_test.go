package core

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- case rules ---

func TestUpsertCase_AppendsNewID(t *testing.T) {
	out := UpsertCase(nil, domain.Case{CaseID: "1", Title: "Singh vs. State"})
	require.Len(t, out, 1)
	assert.Equal(t, "Singh vs. State", out[0].Title)
}

func TestUpsertCase_CollidingIDActsAsUpdate(t *testing.T) {
	items := []domain.Case{{CaseID: "1", Title: "old"}, {CaseID: "2"}}
	out := UpsertCase(items, domain.Case{CaseID: "1", Title: "new"})

	require.Len(t, out, 2, "no duplicate insert on id collision")
	assert.Equal(t, "new", out[0].Title)
	assert.Equal(t, "old", items[0].Title, "input collection untouched")
}

func TestUpdateCase_AbsentIDIsNoOp(t *testing.T) {
	items := []domain.Case{{CaseID: "1"}}
	out := UpdateCase(items, domain.Case{CaseID: "99", Title: "ghost"})
	assert.Equal(t, items, out)
}

func TestUpdateCase_ChangesOnlyTheMatchingRecord(t *testing.T) {
	items := []domain.Case{
		{CaseID: "1", Title: "a"},
		{CaseID: "2", Title: "b"},
		{CaseID: "3", Title: "c"},
	}
	out := UpdateCase(items, domain.Case{CaseID: "2", Title: "b2"})

	assert.Equal(t, items[0], out[0])
	assert.Equal(t, items[2], out[2])
	assert.Equal(t, "b2", out[1].Title)
}

func TestRemoveCase_AbsentIDIsNoOp(t *testing.T) {
	items := []domain.Case{{CaseID: "1"}}
	assert.Equal(t, items, RemoveCase(items, "nope"))
}

func TestRemoveCase_AddNThenRemoveAllInAnyOrder(t *testing.T) {
	const n = 10
	var items []domain.Case
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := strconv.Itoa(i)
		items = UpsertCase(items, domain.Case{CaseID: id})
		ids = append(ids, id)
	}
	require.Len(t, items, n)

	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	for _, id := range ids {
		items = RemoveCase(items, id)
	}
	assert.Empty(t, items)
}

// --- notification rules ---

func TestToggleRead_IsAnInvolution(t *testing.T) {
	items := []domain.Notification{
		{NotificationID: "1", Read: false},
		{NotificationID: "2", Read: true},
	}
	once := ToggleRead(items, "1")
	assert.True(t, once[0].Read)
	assert.Equal(t, items, ToggleRead(once, "1"))
}

func TestToggleRead_AbsentIDIsNoOp(t *testing.T) {
	items := []domain.Notification{{NotificationID: "1"}}
	assert.Equal(t, items, ToggleRead(items, "99"))
}

func TestMarkAllRead_IsIdempotentAndOneDirectional(t *testing.T) {
	items := []domain.Notification{
		{NotificationID: "1", Read: false},
		{NotificationID: "2", Read: true},
		{NotificationID: "3", Read: false},
	}
	once := MarkAllRead(items)
	assert.Zero(t, UnreadCount(once))
	assert.Equal(t, once, MarkAllRead(once))
}

func TestAppendNotification_DerivesIDFromCountAndStartsUnread(t *testing.T) {
	var items []domain.Notification
	for i := 0; i < 3; i++ {
		items = AppendNotification(items, domain.Notification{
			Type:  domain.NotificationTypeUpdate,
			Title: "New Update",
			Read:  true, // must be forced back to unread
		})
	}
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].NotificationID)
	assert.Equal(t, "3", items[2].NotificationID)
	for _, n := range items {
		assert.False(t, n.Read)
	}
}

// Scenario from the notification screen: append three, mark all read,
// toggle one back.
func TestNotificationLifecycleScenario(t *testing.T) {
	var items []domain.Notification
	for i := 0; i < 3; i++ {
		items = AppendNotification(items, domain.Notification{Type: domain.NotificationTypeAlert})
	}
	assert.Equal(t, 3, UnreadCount(items))

	items = MarkAllRead(items)
	assert.Equal(t, 0, UnreadCount(items))

	items = ToggleRead(items, "2")
	assert.Equal(t, 1, UnreadCount(items))
}

// Scenario from the case screens: add, look up, update status.
func TestCaseLifecycleScenario(t *testing.T) {
	s := New(caseID)

	s.Apply(func(items []domain.Case) []domain.Case {
		return UpsertCase(items, domain.Case{CaseID: "1", Title: "Singh vs. State", Status: "Under Trial"})
	})
	c, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Singh vs. State", c.Title)

	c.Status = "Closed"
	s.Apply(func(items []domain.Case) []domain.Case {
		return UpdateCase(items, c)
	})

	got, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Closed", got.Status)
	assert.Equal(t, 1, s.Len())
}

func TestSeedNotifications_ContinueTheCountDerivedSequence(t *testing.T) {
	items := SeedNotifications()
	next := AppendNotification(items, domain.Notification{Type: domain.NotificationTypeUpdate})
	assert.Equal(t, strconv.Itoa(len(items)+1), next[len(next)-1].NotificationID)
}
