package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateID        ConflictType = "duplicate_id"
	ConflictDuplicateReminder  ConflictType = "duplicate_reminder"
	ConflictBlankTitle         ConflictType = "blank_title"
	ConflictInvalidDateTime    ConflictType = "invalid_datetime"
	ConflictInvalidField       ConflictType = "invalid_field"
	ConflictCompletedRecurring ConflictType = "completed_recurring"
	ConflictUnscheduledCustom  ConflictType = "unscheduled_custom"
	ConflictStaleSnooze        ConflictType = "stale_snooze"
)

// StaleSnoozeAge is how long an expired snooze may linger before it is reported.
const StaleSnoozeAge = 7 * 24 * time.Hour

// Conflict represents a detected problem in the reminder collection
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Reminder titles involved
	ReminderIDs []string // IDs of reminders involved (for auto-fixing)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns the number of conflicts of type t.
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateReminders checks a stored collection for records the engine would
// silently misbehave on.
func (v *Validator) ValidateReminders(reminders []models.Reminder, now time.Time) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	idCount := make(map[string][]string)
	var idOrder []string
	for _, r := range reminders {
		if _, ok := idCount[r.ID]; !ok {
			idOrder = append(idOrder, r.ID)
		}
		idCount[r.ID] = append(idCount[r.ID], r.Title)
	}
	for _, id := range idOrder {
		if titles := idCount[id]; len(titles) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate reminder ID %q used by %d reminders", id, len(titles)),
				Items:       titles,
				ReminderIDs: []string{id},
			})
		}
	}

	// Same title on the same occurrence is almost always a double submit.
	sameSlot := make(map[string][]string)
	var slotOrder []string
	titles := make(map[string]string)
	for _, r := range reminders {
		if r.Status != models.StatusActive || strings.TrimSpace(r.Title) == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(r.Title)) + "|" + r.Date + "|" + r.Time
		if _, ok := sameSlot[key]; !ok {
			slotOrder = append(slotOrder, key)
			titles[key] = r.Title
		}
		sameSlot[key] = append(sameSlot[key], r.ID)
	}
	for _, key := range slotOrder {
		if ids := sameSlot[key]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateReminder,
				Description: fmt.Sprintf("Duplicate reminder: \"%s\" (IDs: %v)", titles[key], ids),
				Items:       []string{titles[key]},
				ReminderIDs: ids,
			})
		}
	}

	for _, r := range reminders {
		name := r.Title
		if strings.TrimSpace(name) == "" {
			name = r.ID
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBlankTitle,
				Description: fmt.Sprintf("Reminder %s has a blank title", r.ID),
				ReminderIDs: []string{r.ID},
			})
		}

		if r.Date != "" && !isValidDateFormat(r.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Reminder \"%s\" has invalid date: %s", name, r.Date),
				Items:       []string{name},
				ReminderIDs: []string{r.ID},
			})
		}
		if r.Time != "" && !isValidTimeFormat(r.Time) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Reminder \"%s\" has invalid time: %s", name, r.Time),
				Items:       []string{name},
				ReminderIDs: []string{r.ID},
			})
		}

		for _, f := range []struct {
			name  string
			value string
			ok    bool
		}{
			{"repeat type", string(r.RepeatType), r.RepeatType.Valid()},
			{"priority", string(r.Priority), r.Priority.Valid()},
			{"category", string(r.Category), r.Category.Valid()},
			{"status", string(r.Status), r.Status == models.StatusActive || r.Status == models.StatusCompleted},
		} {
			if !f.ok {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidField,
					Description: fmt.Sprintf("Reminder \"%s\" has invalid %s: %q", name, f.name, f.value),
					Items:       []string{name},
					ReminderIDs: []string{r.ID},
				})
			}
		}

		if r.IsRecurring() && r.Status == models.StatusCompleted {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictCompletedRecurring,
				Description: fmt.Sprintf("Recurring reminder \"%s\" (%s) is marked completed and will never fire again", name, r.RepeatType),
				Items:       []string{name},
				ReminderIDs: []string{r.ID},
			})
		}

		if r.RepeatType == models.RepeatCustom && r.Date == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnscheduledCustom,
				Description: fmt.Sprintf("Custom reminder \"%s\" has no date and will never be due", name),
				Items:       []string{name},
				ReminderIDs: []string{r.ID},
			})
		}

		if r.SnoozeUntil != nil && now.Sub(*r.SnoozeUntil) > StaleSnoozeAge {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictStaleSnooze,
				Description: fmt.Sprintf("Reminder \"%s\" carries a snooze that expired on %s", name, r.SnoozeUntil.Format(constants.DateFormat)),
				Items:       []string{name},
				ReminderIDs: []string{r.ID},
			})
		}
	}

	return result
}

func isValidTimeFormat(s string) bool {
	_, err := time.Parse(constants.TimeFormat, s)
	return err == nil
}

func isValidDateFormat(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

// AutoFixDuplicateReminders keeps the oldest reminder of each duplicate group
// and deletes the rest through deleteFunc.
func AutoFixDuplicateReminders(conflicts []Conflict, reminders []models.Reminder, deleteFunc func(id string) error) []FixAction {
	actions := []FixAction{}

	byID := make(map[string]models.Reminder)
	for _, r := range reminders {
		byID[r.ID] = r
	}

	for _, conflict := range conflicts {
		if conflict.Type != ConflictDuplicateReminder || len(conflict.ReminderIDs) <= 1 {
			continue
		}

		var group []models.Reminder
		for _, id := range conflict.ReminderIDs {
			if r, ok := byID[id]; ok {
				group = append(group, r)
			}
		}
		if len(group) <= 1 {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			if !group[i].CreatedAt.Equal(group[j].CreatedAt) {
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			}
			return group[i].ID < group[j].ID
		})

		keep := group[0]
		var deletedIDs, failedIDs []string
		for _, r := range group[1:] {
			if err := deleteFunc(r.ID); err == nil {
				deletedIDs = append(deletedIDs, r.ID)
			} else {
				failedIDs = append(failedIDs, r.ID)
			}
		}

		if len(deletedIDs) > 0 {
			msg := fmt.Sprintf("Removed %d duplicate reminder(s) \"%s\" (kept ID: %s, removed: %v)", len(deletedIDs), keep.Title, keep.ID, deletedIDs)
			if len(failedIDs) > 0 {
				msg += fmt.Sprintf(" (failed to remove: %v)", failedIDs)
			}
			actions = append(actions, FixAction{Action: msg, SourceConflict: conflict})
		} else if len(failedIDs) > 0 {
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Failed to remove duplicates of \"%s\": %v", keep.Title, failedIDs),
				SourceConflict: conflict,
			})
		}
	}

	return actions
}

// AutoFixReminders repairs per-reminder conflicts that have an unambiguous
// fix: completed recurring reminders are reactivated and stale snoozes are
// cleared.
func AutoFixReminders(conflicts []Conflict, reactivate, clearSnooze func(id string) error) []FixAction {
	actions := []FixAction{}

	for _, conflict := range conflicts {
		var fn func(string) error
		var verb string
		switch conflict.Type {
		case ConflictCompletedRecurring:
			fn, verb = reactivate, "Reactivated"
		case ConflictStaleSnooze:
			fn, verb = clearSnooze, "Cleared stale snooze on"
		default:
			continue
		}

		for _, id := range conflict.ReminderIDs {
			if err := fn(id); err != nil {
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Failed to fix reminder %s: %v", id, err),
					SourceConflict: conflict,
				})
				continue
			}
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("%s reminder %s", verb, id),
				SourceConflict: conflict,
			})
		}
	}

	return actions
}
