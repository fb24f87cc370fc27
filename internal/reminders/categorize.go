package reminders

import (
	"sort"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

// Buckets partitions a collection for display. Every active reminder is in
// exactly one of Today or Upcoming; Recurring overlaps them.
type Buckets struct {
	Today     []models.Reminder `json:"today"`
	Upcoming  []models.Reminder `json:"upcoming"`
	Recurring []models.Reminder `json:"recurring"`
	Completed []models.Reminder `json:"completed"`
}

func Categorize(reminders []models.Reminder, now time.Time) Buckets {
	b := Buckets{
		Today:     []models.Reminder{},
		Upcoming:  []models.Reminder{},
		Recurring: []models.Reminder{},
		Completed: []models.Reminder{},
	}
	today := utils.LocalDate(now)

	for _, r := range reminders {
		if r.Status == models.StatusCompleted {
			b.Completed = append(b.Completed, r)
			continue
		}
		if r.RepeatType != models.RepeatOnce {
			b.Recurring = append(b.Recurring, r)
		}
		// Overdue and undated reminders fold into Today.
		if r.Date <= today {
			b.Today = append(b.Today, r)
		} else {
			b.Upcoming = append(b.Upcoming, r)
		}
	}

	sort.SliceStable(b.Today, func(i, j int) bool {
		oi, oj := IsOverdue(b.Today[i], now), IsOverdue(b.Today[j], now)
		if oi != oj {
			return oi
		}
		return sortTime(b.Today[i]) < sortTime(b.Today[j])
	})
	sort.SliceStable(b.Upcoming, byDateTime(b.Upcoming))
	sort.SliceStable(b.Recurring, byDateTime(b.Recurring))
	sort.SliceStable(b.Completed, func(i, j int) bool {
		return b.Completed[i].CreatedAt.After(b.Completed[j].CreatedAt)
	})

	return b
}

func byDateTime(list []models.Reminder) func(i, j int) bool {
	return func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return sortTime(list[i]) < sortTime(list[j])
	}
}

// sortTime places date-only reminders at the end of their day.
func sortTime(r models.Reminder) string {
	if r.Time == "" {
		return constants.DateOnlyTime
	}
	return r.Time
}
