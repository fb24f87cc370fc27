package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/tui/components/reminderlist"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/tui/components/suggestionlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tickMsg:
		if m.sched != nil {
			if fired := m.sched.Tick(); len(fired) > 0 {
				m.refresh()
			}
		}
		m.drainToasts(time.Time(msg))
		return m, m.tick()
	}

	switch m.state {
	case StateAdding, StateRecur:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case reminderlist.AddMsg:
		m.reminderForm = &ReminderFormModel{
			Repeat:   models.RepeatOnce,
			Priority: models.PriorityMedium,
			Category: models.CategoryCustom,
		}
		m.form = NewReminderForm(m.reminderForm)
		m.previousState = m.state
		m.state = StateAdding
		return m, m.form.Init()

	case reminderlist.CompleteMsg:
		r, err := m.mgr.Complete(msg.ID)
		m.report(err, "Completed %q", r.Title)
		return m, nil

	case reminderlist.SnoozeMsg:
		var r models.Reminder
		var err error
		switch {
		case msg.Tomorrow:
			r, err = m.mgr.SnoozeTomorrow(msg.ID)
		default:
			r, err = m.mgr.Snooze(msg.ID, msg.Duration)
		}
		if err == nil && r.SnoozeUntil != nil {
			m.report(nil, "Snoozed %q until %s", r.Title, r.SnoozeUntil.Format("Jan 2 15:04"))
		} else {
			m.report(err, "Snoozed %q", r.Title)
		}
		return m, nil

	case reminderlist.RecurMsg:
		m.recurID = msg.Reminder.ID
		m.recurForm = &RecurFormModel{Repeat: models.RepeatDaily}
		m.form = NewRecurForm(m.recurForm)
		m.previousState = m.state
		m.state = StateRecur
		return m, m.form.Init()

	case reminderlist.DeleteMsg:
		m.deleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case suggestionlist.AcceptMsg:
		r, err := m.mgr.AcceptSuggestion(msg.ID)
		m.report(err, "Added %q", r.Title)
		return m, nil

	case suggestionlist.DismissMsg:
		err := m.mgr.DismissSuggestion(msg.ID)
		m.report(err, "Suggestion dismissed")
		return m, nil
	}

	var cmd tea.Cmd
	if m.state == StateSuggestions {
		m.suggestions, cmd = m.suggestions.Update(msg)
	} else {
		m.lists[m.state], cmd = m.lists[m.state].Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAdding {
			r, err := m.mgr.Create(m.reminderForm.Input())
			m.report(err, "Added %q", r.Title)
		} else {
			r, err := m.mgr.ConvertToRecurring(m.recurID, m.recurForm.Repeat)
			m.report(err, "%q now repeats %s", r.Title, r.FormatRepeat())
		}
		m.state = m.previousState
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "y", "Y":
		err := m.mgr.Delete(m.deleteID)
		m.report(err, "Reminder deleted")
		m.deleteID = ""
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.deleteID = ""
		m.state = m.previousState
	}
	return m, nil
}

// report sets the status line and refreshes the lists after a mutation.
func (m *Model) report(err error, format string, args ...any) {
	if err != nil {
		logger.Warn("Dashboard action failed", "error", err)
		m.status = dangerStyle.Render("Error: " + err.Error())
		return
	}
	m.status = fmt.Sprintf(format, args...)
	m.refresh()
}
