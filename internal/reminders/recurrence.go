package reminders

import (
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

// Instant combines the reminder's date and time in loc. A missing time
// resolves to the end of the day. ok is false without a parseable date.
func Instant(r models.Reminder, loc *time.Location) (t time.Time, ok bool) {
	if r.Date == "" {
		return time.Time{}, false
	}
	t, err := utils.CombineDateAndTime(r.Date, r.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NextOccurrence advances the reminder's occurrence by its repeat period
// until it is strictly after now. Missed periods are skipped, not replayed.
// ok is false for repeat types without a computed schedule.
func NextOccurrence(r models.Reminder, now time.Time) (next time.Time, ok bool) {
	switch r.RepeatType {
	case models.RepeatDaily, models.RepeatWeekly, models.RepeatMonthly:
	default:
		return time.Time{}, false
	}

	base, ok := Instant(r, now.Location())
	if !ok {
		// Undated or unreadable: schedule from today at the reminder's time.
		dated := r
		dated.Date = utils.LocalDate(now)
		if base, ok = Instant(dated, now.Location()); !ok {
			dated.Time = ""
			base, _ = Instant(dated, now.Location())
		}
	}

	if r.RepeatType == models.RepeatMonthly {
		day := r.MonthDay
		if day == 0 {
			day = base.Day()
		}
		// Start one period short of now's month so old anchors don't walk.
		n := (now.Year()-base.Year())*12 + int(now.Month()-base.Month()) - 1
		if n < 1 {
			n = 1
		}
		for ; ; n++ {
			next = addMonthsClamped(base, n, day)
			if next.After(now) {
				return next, true
			}
		}
	}

	days := 1
	if r.RepeatType == models.RepeatWeekly {
		days = 7
	}
	next = base
	if skip := civilDays(base, now)/days - 1; skip > 0 {
		next = base.AddDate(0, 0, skip*days)
	}
	for {
		next = next.AddDate(0, 0, days)
		if next.After(now) {
			return next, true
		}
	}
}

// addMonthsClamped moves t forward n calendar months onto day, clamped to
// the last day of the target month.
func addMonthsClamped(t time.Time, n, day int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), 0, 0, t.Location())
	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), 0, 0, t.Location())
}

// civilDays counts calendar days from a's date to b's date.
func civilDays(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((db.Unix() - da.Unix()) / 86400)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ResetRecurring applies completion. A one-off reminder becomes completed.
// A repeating one moves to its next occurrence and stays active with the
// snooze cleared. Custom repeats have no computed schedule and stay active
// on their current occurrence.
func ResetRecurring(r models.Reminder, now time.Time) models.Reminder {
	if r.RepeatType == models.RepeatOnce {
		r.Status = models.StatusCompleted
		return r
	}

	r.Status = models.StatusActive
	next, ok := NextOccurrence(r, now)
	if !ok {
		return r
	}

	if r.RepeatType == models.RepeatMonthly && r.MonthDay == 0 {
		if base, ok := Instant(r, now.Location()); ok {
			r.MonthDay = base.Day()
		}
	}
	r.Date = utils.LocalDate(next)
	r.SnoozeUntil = nil
	return r
}
