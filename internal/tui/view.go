package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday, StateUpcoming, StateRecurring, StateCompleted:
		content = docStyle.Render(m.lists[m.state].View())
	case StateSuggestions:
		content = docStyle.Render(m.suggestions.View())
	case StateAdding, StateRecur:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.toast != "" {
		parts = append(parts, m.toast)
	}
	if m.validationWarning != "" {
		parts = append(parts, warningStyle.Render(m.validationWarning))
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= tabCount {
		active = m.previousState
	}

	var tabs []string
	for i, title := range tabTitles {
		if i < len(m.lists) {
			title = fmt.Sprintf("%s (%d)", title, m.lists[i].Len())
		} else {
			title = fmt.Sprintf("%s (%d)", title, m.suggestions.Len())
		}
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	title := m.deleteID
	if r, err := m.mgr.Get(m.deleteID); err == nil {
		title = r.Title
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q?", title)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
