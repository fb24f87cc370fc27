package reminders

import (
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
)

// IsOverdue reports whether an active reminder's occurrence has passed.
// Snoozing does not hide an overdue reminder.
func IsOverdue(r models.Reminder, now time.Time) bool {
	if r.Status != models.StatusActive {
		return false
	}
	at, ok := Instant(r, now.Location())
	return ok && at.Before(now)
}

// IsDueNow reports whether the occurrence falls within ±window of now.
// Date-only reminders are never due, and an active snooze suppresses it.
func IsDueNow(r models.Reminder, now time.Time, window time.Duration) bool {
	if r.Status != models.StatusActive || r.Date == "" || r.Time == "" {
		return false
	}
	if r.IsSnoozed(now) {
		return false
	}
	at, ok := Instant(r, now.Location())
	if !ok {
		return false
	}
	diff := at.Sub(now)
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

// OccurrenceKey identifies one scheduled firing of a reminder.
func OccurrenceKey(r models.Reminder) string {
	return r.ID + "|" + r.Date + "|" + r.Time
}
