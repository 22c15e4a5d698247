package reminders

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
)

// Due is one reminder that has come due for a hearing.
type Due struct {
	Hearing domain.Hearing
	Label   string // e.g. "in 1 day"
	SendAt  time.Time
}

type offset struct {
	enabled func(domain.ReminderConfig) bool
	lead    time.Duration
	label   string
}

var offsets = []offset{
	{func(r domain.ReminderConfig) bool { return r.OneDayBefore }, 24 * time.Hour, "in 1 day"},
	{func(r domain.ReminderConfig) bool { return r.TwoHoursBefore }, 2 * time.Hour, "in 2 hours"},
	{func(r domain.ReminderConfig) bool { return r.ThirtyMinutesBefore }, 30 * time.Minute, "in 30 minutes"},
}

// DueReminders returns the reminders for h whose send time falls in (from, to].
// Hearings with unparseable date/time yield nothing; the window boundaries
// make each reminder fire exactly once across consecutive dispatcher runs.
func DueReminders(h domain.Hearing, loc *time.Location, from, to time.Time) []Due {
	starts, err := h.StartsAt(loc)
	if err != nil {
		return nil
	}
	var due []Due
	for _, o := range offsets {
		if !o.enabled(h.Reminders) {
			continue
		}
		sendAt := starts.Add(-o.lead)
		if sendAt.After(from) && !sendAt.After(to) {
			due = append(due, Due{Hearing: h, Label: o.label, SendAt: sendAt})
		}
	}
	return due
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type deviceStore interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Device, error)
}

type pushSender interface {
	SendPush(ctx context.Context, endpointARN, message string) error
	SendSMS(ctx context.Context, phone, message string) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type notifier interface {
	Notify(ctx context.Context, userID string, n domain.Notification)
}

// Dispatcher periodically scans every user's hearings and delivers due
// reminders over push, email, and the in-app notification feed.
type Dispatcher struct {
	hearings *core.Registry[domain.Hearing]
	users    userStore
	devices  deviceStore
	push     pushSender
	mail     mailer
	notifier notifier
	loc      *time.Location

	mu      sync.Mutex
	lastRun time.Time
}

type DispatcherDeps struct {
	Hearings *core.Registry[domain.Hearing]
	Users    userStore
	Devices  deviceStore
	Push     pushSender
	Mailer   mailer
	Notifier notifier
	Location *time.Location
}

func NewDispatcher(deps DispatcherDeps) *Dispatcher {
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}
	return &Dispatcher{
		hearings: deps.Hearings,
		users:    deps.Users,
		devices:  deps.Devices,
		push:     deps.Push,
		mail:     deps.Mailer,
		notifier: deps.Notifier,
		loc:      loc,
		lastRun:  time.Now(),
	}
}

// Run delivers every reminder that came due since the previous call.
// Delivery failures are logged and skipped; they are not retried.
func (d *Dispatcher) Run(ctx context.Context) {
	d.mu.Lock()
	from := d.lastRun
	to := time.Now()
	d.lastRun = to
	d.mu.Unlock()

	d.hearings.Each(func(userID string, s *core.Store[domain.Hearing]) {
		for _, h := range s.Snapshot() {
			for _, due := range DueReminders(h, d.loc, from, to) {
				d.deliver(ctx, userID, due)
			}
		}
	})
}

// Start runs the dispatcher on every tick until ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Run(ctx)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, userID string, due Due) {
	h := due.Hearing
	title := h.CaseTitle
	if title == "" {
		title = "your case"
	}
	message := fmt.Sprintf("Hearing for %s %s: %s at %s, %s", title, due.Label, h.Date, h.Time, h.CourtRoom)

	d.notifier.Notify(ctx, userID, domain.Notification{
		Type:        domain.NotificationTypeHearing,
		Title:       "Hearing Reminder",
		Description: message,
		TimeLabel:   "Just now",
	})

	// Push delivery is optional; the in-app feed and email work without it.
	pushed := false
	if d.push != nil {
		devices, err := d.devices.ListByUser(ctx, userID)
		if err != nil {
			slog.Warn("could not list devices for reminder", "user_id", userID, "err", err)
		}
		for _, dev := range devices {
			if dev.PushToken == nil || *dev.PushToken == "" {
				continue
			}
			if err := d.push.SendPush(ctx, *dev.PushToken, message); err != nil {
				slog.Warn("push reminder failed", "user_id", userID, "device_id", dev.DeviceID, "err", err)
				continue
			}
			pushed = true
		}
	}
	if pushed {
		return
	}

	// No reachable device: try SMS, then email.
	u, err := d.users.Get(ctx, userID)
	if err != nil {
		slog.Warn("could not load user for reminder fallback", "user_id", userID, "err", err)
		return
	}
	if d.push != nil && u.Phone != nil && *u.Phone != "" {
		err := d.push.SendSMS(ctx, *u.Phone, message)
		if err == nil {
			return
		}
		slog.Warn("sms reminder failed", "user_id", userID, "err", err)
	}
	if err := d.mail.SendEmail(u.Email, "Hearing Reminder", message); err != nil {
		slog.Warn("reminder email failed", "user_id", userID, "err", err)
	}
}
