package domain

import "time"

// ReminderConfig holds the three independent reminder toggles for a hearing.
type ReminderConfig struct {
	OneDayBefore        bool `json:"one_day_before"`
	TwoHoursBefore      bool `json:"two_hours_before"`
	ThirtyMinutesBefore bool `json:"thirty_minutes_before"`
}

// Hearing represents a scheduled court appearance. The case fields are a
// denormalized copy taken at creation time, not a live reference.
type Hearing struct {
	HearingID  string         `json:"id"`
	CaseID     string         `json:"case_id"`
	CaseTitle  string         `json:"case_title"`
	CaseNumber string         `json:"case_number"`
	Date       string         `json:"date"` // YYYY-MM-DD
	Time       string         `json:"time"` // HH:MM, 24-hour
	CourtRoom  string         `json:"court_room"`
	Purpose    string         `json:"purpose,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	Reminders  ReminderConfig `json:"reminders"`
	CreatedAt  time.Time      `json:"created"`
}

// CreateHearingRequest carries the schedule form. Date, time and court room
// are mandatory; purpose and notes are optional.
type CreateHearingRequest struct {
	CaseID    string         `json:"case_id" validate:"required"`
	Date      string         `json:"date" validate:"required"`
	Time      string         `json:"time" validate:"required"`
	CourtRoom string         `json:"court_room" validate:"required"`
	Purpose   string         `json:"purpose"`
	Notes     string         `json:"notes"`
	Reminders ReminderConfig `json:"reminders"`
}

// StartsAt parses the hearing's date and time in the given location.
func (h *Hearing) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", h.Date+" "+h.Time, loc)
}
