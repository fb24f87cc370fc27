package reminderlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/reminders"
)

type AddMsg struct{}

type CompleteMsg struct {
	ID string
}

type SnoozeMsg struct {
	ID       string
	Duration time.Duration
	Tomorrow bool
}

type DeleteMsg struct {
	ID string
}

type RecurMsg struct {
	Reminder models.Reminder
}

type Item struct {
	Reminder models.Reminder
	Overdue  bool
	Snoozed  bool
}

func (i Item) Title() string {
	var b strings.Builder
	switch {
	case i.Reminder.Status == models.StatusCompleted:
		b.WriteString("✓ ")
	case i.Overdue:
		b.WriteString("⚠ ")
	case i.Reminder.Priority == models.PriorityHigh:
		b.WriteString("! ")
	}
	b.WriteString(i.Reminder.Title)
	if i.Snoozed {
		b.WriteString(" (snoozed)")
	}
	return b.String()
}

func (i Item) Description() string {
	r := i.Reminder
	when := r.Date
	if when == "" {
		when = "no date"
	}
	if r.Time != "" {
		when += " " + r.Time
	}
	desc := fmt.Sprintf("%s | %s | %s | %s", when, r.FormatRepeat(), r.Category, r.Priority)
	if r.AssignedTo != "" {
		desc += " | " + r.AssignedTo
	}
	return desc
}

func (i Item) FilterValue() string { return i.Reminder.Title }

type KeyMap struct {
	Add      key.Binding
	Complete key.Binding
	Snooze   key.Binding
	SnoozeHr key.Binding
	Tomorrow key.Binding
	Recur    key.Binding
	Delete   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c", "complete"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "snooze 10m"),
		),
		SnoozeHr: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "snooze 1h"),
		),
		Tomorrow: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "snooze to tomorrow"),
		),
		Recur: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "make recurring"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	empty string
}

func New(title, empty string, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete, keys.Snooze}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete, keys.Snooze, keys.SnoozeHr, keys.Tomorrow, keys.Recur, keys.Delete}
	}

	return Model{list: l, keys: keys, empty: empty}
}

// SetReminders replaces the items, keeping the cursor where it can.
func (m *Model) SetReminders(rs []models.Reminder, now time.Time) {
	items := make([]list.Item, len(rs))
	for i, r := range rs {
		items[i] = Item{
			Reminder: r,
			Overdue:  reminders.IsOverdue(r, now),
			Snoozed:  r.IsSnoozed(now),
		}
	}
	m.list.SetItems(items)
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Selected() (models.Reminder, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Reminder, true
	}
	return models.Reminder{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Add) {
			return m, func() tea.Msg { return AddMsg{} }
		}
		if r, ok := m.Selected(); ok {
			switch {
			case key.Matches(msg, m.keys.Complete):
				return m, func() tea.Msg { return CompleteMsg{ID: r.ID} }
			case key.Matches(msg, m.keys.Snooze):
				return m, func() tea.Msg { return SnoozeMsg{ID: r.ID} }
			case key.Matches(msg, m.keys.SnoozeHr):
				return m, func() tea.Msg { return SnoozeMsg{ID: r.ID, Duration: time.Hour} }
			case key.Matches(msg, m.keys.Tomorrow):
				return m, func() tea.Msg { return SnoozeMsg{ID: r.ID, Tomorrow: true} }
			case key.Matches(msg, m.keys.Recur):
				return m, func() tea.Msg { return RecurMsg{Reminder: r} }
			case key.Matches(msg, m.keys.Delete):
				return m, func() tea.Msg { return DeleteMsg{ID: r.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  " + m.empty + "\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
