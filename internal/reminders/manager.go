package reminders

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/clock"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/suggestions"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

var (
	ErrNotFound          = errors.New("reminder not found")
	ErrInvalidRecurrence = errors.New("reminder can only be converted to daily, weekly or monthly")
)

// Manager owns the live reminder collection. Every mutation is written
// through to the store immediately; a failed write is logged and the
// in-memory state stays authoritative.
type Manager struct {
	mu            sync.Mutex
	store         storage.Provider
	clock         clock.Clock
	source        suggestions.Source
	defaultSnooze time.Duration

	reminders []models.Reminder
	dismissed []string
}

type Option func(*Manager)

func WithSuggestionSource(src suggestions.Source) Option {
	return func(m *Manager) { m.source = src }
}

func WithDefaultSnooze(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.defaultSnooze = d
		}
	}
}

// NewManager loads both records from store.
func NewManager(store storage.Provider, clk clock.Clock, opts ...Option) *Manager {
	m := &Manager{
		store:         store,
		clock:         clk,
		source:        suggestions.DefaultCatalog,
		defaultSnooze: constants.DefaultSnooze,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reload()
	return m
}

// Reload replaces the in-memory state with what the store holds.
func (m *Manager) Reload() {
	reminders := m.store.LoadReminders()
	dismissed := m.store.LoadDismissed()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders = reminders
	m.dismissed = dismissed
}

func (m *Manager) Now() time.Time {
	return m.clock.Now()
}

func (m *Manager) persist() {
	if err := m.store.SaveReminders(m.reminders); err != nil {
		logger.Error("Failed to save reminders", "error", err, "count", len(m.reminders))
	}
}

func (m *Manager) persistDismissed() {
	if err := m.store.SaveDismissed(m.dismissed); err != nil {
		logger.Error("Failed to save dismissed suggestions", "error", err)
	}
}

func (m *Manager) indexOf(id string) int {
	for i := range m.reminders {
		if m.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

// mutate applies fn to the reminder with id and persists the result.
func (m *Manager) mutate(id string, fn func(r *models.Reminder) error) (models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return models.Reminder{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated := m.reminders[i]
	if err := fn(&updated); err != nil {
		return models.Reminder{}, err
	}
	m.reminders[i] = updated
	m.persist()
	return updated, nil
}

// Create adds a reminder built from in. Blank titles are rejected with
// models.ErrEmptyTitle and nothing is stored.
func (m *Manager) Create(in models.ReminderInput) (models.Reminder, error) {
	r, err := models.NewReminder(in, m.clock.Now())
	if err != nil {
		return models.Reminder{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders = append(m.reminders, r)
	m.persist()

	logger.Debug("Created reminder", "id", r.ID, "repeat", r.RepeatType, "date", r.Date)
	return r, nil
}

// Complete acknowledges the current occurrence. One-off reminders become
// completed; repeating ones roll forward to their next occurrence.
func (m *Manager) Complete(id string) (models.Reminder, error) {
	now := m.clock.Now()
	return m.mutate(id, func(r *models.Reminder) error {
		*r = ResetRecurring(*r, now)
		logger.Debug("Completed reminder", "id", r.ID, "status", r.Status, "next", r.Date)
		return nil
	})
}

// Snooze suppresses due notifications for d, or the default when d <= 0.
func (m *Manager) Snooze(id string, d time.Duration) (models.Reminder, error) {
	if d <= 0 {
		d = m.defaultSnooze
	}
	return m.SnoozeUntil(id, m.clock.Now().Add(d))
}

func (m *Manager) SnoozeUntil(id string, until time.Time) (models.Reminder, error) {
	return m.mutate(id, func(r *models.Reminder) error {
		u := until
		r.SnoozeUntil = &u
		return nil
	})
}

// SnoozeTomorrow snoozes until 09:00 on the next day.
func (m *Manager) SnoozeTomorrow(id string) (models.Reminder, error) {
	now := m.clock.Now()
	tomorrow := utils.LocalDate(now.AddDate(0, 0, 1))
	until, err := utils.CombineDateAndTime(tomorrow, constants.SuggestionTime, now.Location())
	if err != nil {
		return models.Reminder{}, err
	}
	return m.SnoozeUntil(id, until)
}

// ClearSnooze lifts an active snooze.
func (m *Manager) ClearSnooze(id string) (models.Reminder, error) {
	return m.mutate(id, func(r *models.Reminder) error {
		r.SnoozeUntil = nil
		return nil
	})
}

// Reactivate returns a completed reminder to the active state without
// touching its schedule.
func (m *Manager) Reactivate(id string) (models.Reminder, error) {
	return m.mutate(id, func(r *models.Reminder) error {
		r.Status = models.StatusActive
		return nil
	})
}

func (m *Manager) Update(id string, patch models.ReminderPatch) (models.Reminder, error) {
	return m.mutate(id, func(r *models.Reminder) error {
		return r.Apply(patch)
	})
}

// ConvertToRecurring switches the repeat type and reactivates a completed
// reminder on its current date.
func (m *Manager) ConvertToRecurring(id string, repeat models.RepeatType) (models.Reminder, error) {
	switch repeat {
	case models.RepeatDaily, models.RepeatWeekly, models.RepeatMonthly:
	default:
		return models.Reminder{}, fmt.Errorf("%w: got %q", ErrInvalidRecurrence, repeat)
	}

	now := m.clock.Now()
	return m.mutate(id, func(r *models.Reminder) error {
		r.RepeatType = repeat
		r.Status = models.StatusActive
		if r.Date == "" {
			r.Date = utils.LocalDate(now)
		}
		r.MonthDay = 0
		r.AnchorMonthDay()
		return nil
	})
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	m.reminders = append(m.reminders[:i:i], m.reminders[i+1:]...)
	m.persist()
	return nil
}

func (m *Manager) Get(id string) (models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return models.Reminder{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return m.reminders[i], nil
}

// List returns a snapshot of the collection.
func (m *Manager) List() []models.Reminder {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Reminder, len(m.reminders))
	copy(out, m.reminders)
	return out
}

func (m *Manager) Categorize() Buckets {
	return Categorize(m.List(), m.clock.Now())
}

// Suggestions lists catalog entries not yet dismissed.
func (m *Manager) Suggestions() []suggestions.Suggestion {
	m.mu.Lock()
	dismissed := append([]string(nil), m.dismissed...)
	m.mu.Unlock()
	return suggestions.Generate(m.source, dismissed)
}

// AcceptSuggestion creates the suggestion's preset reminder and stops
// offering it.
func (m *Manager) AcceptSuggestion(id string) (models.Reminder, error) {
	s, err := suggestions.Find(m.source, id)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("%w: %s", err, id)
	}

	r, err := m.Create(s.Preset.Build(m.clock.Now()))
	if err != nil {
		return models.Reminder{}, err
	}
	m.dismiss(id)
	return r, nil
}

func (m *Manager) DismissSuggestion(id string) error {
	if _, err := suggestions.Find(m.source, id); err != nil {
		return fmt.Errorf("%w: %s", err, id)
	}
	m.dismiss(id)
	return nil
}

func (m *Manager) dismiss(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.dismissed {
		if d == id {
			return
		}
	}
	m.dismissed = append(m.dismissed, id)
	m.persistDismissed()
}

func (m *Manager) Dismissed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.dismissed...)
}
