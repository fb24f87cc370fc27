package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/reminders"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/scheduler"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/tui/components/reminderlist"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/tui/components/suggestionlist"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/validation"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateUpcoming
	StateRecurring
	StateCompleted
	StateSuggestions
	StateAdding
	StateRecur
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab.
const tabCount = 5

var tabTitles = []string{"Today", "Upcoming", "Recurring", "Completed", "Suggestions"}

// toastDuration is how long a toast stays in the status line.
const toastDuration = 8 * time.Second

type ReminderFormModel struct {
	Title       string
	Description string
	Date        string
	Time        string
	Repeat      models.RepeatType
	Priority    models.Priority
	Category    models.Category
	AssignedTo  string
}

type RecurFormModel struct {
	Repeat models.RepeatType
}

type Model struct {
	mgr    *reminders.Manager
	sched  *scheduler.Scheduler
	toasts <-chan notifier.Notification

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	lists       [4]reminderlist.Model
	suggestions suggestionlist.Model

	form         *huh.Form
	reminderForm *ReminderFormModel
	recurForm    *RecurFormModel
	recurID      string

	toast        string
	toastExpires time.Time
	status       string

	deleteID          string
	validationWarning string

	quitting bool
	width    int
	height   int
}

// tickMsg drives the scheduler from inside the program loop.
type tickMsg time.Time

// NewModel builds the dashboard. sched and toasts may be nil, in which case
// no notifications are polled.
func NewModel(mgr *reminders.Manager, sched *scheduler.Scheduler, toasts <-chan notifier.Notification) Model {
	m := Model{
		mgr:    mgr,
		sched:  sched,
		toasts: toasts,
		state:  StateToday,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		lists: [4]reminderlist.Model{
			reminderlist.New("Today", "Nothing due today.", 0, 0),
			reminderlist.New("Upcoming", "Nothing upcoming.", 0, 0),
			reminderlist.New("Recurring", "No recurring reminders.", 0, 0),
			reminderlist.New("Completed", "Nothing completed yet.", 0, 0),
		},
		suggestions: suggestionlist.New(0, 0),
	}
	m.refresh()
	return m
}

// Run starts the dashboard and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if m.sched == nil {
		return nil
	}
	// First poll happens immediately.
	return func() tea.Msg { return tickMsg(m.mgr.Now()) }
}

func (m Model) tick() tea.Cmd {
	if m.sched == nil {
		return nil
	}
	return tea.Tick(m.sched.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refresh recomputes buckets, suggestions and the validation banner.
func (m *Model) refresh() {
	now := m.mgr.Now()
	b := m.mgr.Categorize()
	m.lists[StateToday].SetReminders(b.Today, now)
	m.lists[StateUpcoming].SetReminders(b.Upcoming, now)
	m.lists[StateRecurring].SetReminders(b.Recurring, now)
	m.lists[StateCompleted].SetReminders(b.Completed, now)
	m.suggestions.SetSuggestions(m.mgr.Suggestions())

	result := validation.New().ValidateReminders(m.mgr.List(), now)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s), run 'rebill validate'", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

// drainToasts shows the newest pending notification.
func (m *Model) drainToasts(now time.Time) {
	if m.toasts == nil {
		return
	}
	for {
		select {
		case n := <-m.toasts:
			m.toast = notifier.Render(n)
			m.toastExpires = now.Add(toastDuration)
		default:
			if !m.toastExpires.IsZero() && now.After(m.toastExpires) {
				m.toast = ""
				m.toastExpires = time.Time{}
			}
			return
		}
	}
}

func (m *Model) resize() {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	w, _ := docStyle.GetFrameSize()
	for i := range m.lists {
		m.lists[i].SetSize(m.width-w, h)
	}
	m.suggestions.SetSize(m.width-w, h)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateSuggestions {
		return append(keys, m.keys.Accept, m.keys.Dismiss)
	}
	return append(keys, m.keys.Add, m.keys.Complete, m.keys.Snooze)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	if m.state == StateSuggestions {
		actions = []key.Binding{m.keys.Accept, m.keys.Dismiss}
	} else {
		actions = []key.Binding{m.keys.Add, m.keys.Complete, m.keys.Snooze, m.keys.Recur, m.keys.Delete}
	}
	return [][]key.Binding{global, navigation, actions}
}
