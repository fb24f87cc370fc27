package suggestionlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/suggestions"
)

type AcceptMsg struct {
	ID string
}

type DismissMsg struct {
	ID string
}

type Item struct {
	Suggestion suggestions.Suggestion
}

func (i Item) Title() string       { return i.Suggestion.Icon + " " + i.Suggestion.Title }
func (i Item) Description() string { return i.Suggestion.Message }
func (i Item) FilterValue() string { return i.Suggestion.Title }

type KeyMap struct {
	Accept  key.Binding
	Dismiss key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter", "accept"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Accept, keys.Dismiss}
	}
	return Model{list: l, keys: keys}
}

func (m *Model) SetSuggestions(ss []suggestions.Suggestion) {
	items := make([]list.Item, len(ss))
	for i, s := range ss {
		items[i] = Item{Suggestion: s}
	}
	m.list.SetItems(items)
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if i, ok := m.list.SelectedItem().(Item); ok {
			switch {
			case key.Matches(msg, m.keys.Accept):
				return m, func() tea.Msg { return AcceptMsg{ID: i.Suggestion.ID} }
			case key.Matches(msg, m.keys.Dismiss):
				return m, func() tea.Msg { return DismissMsg{ID: i.Suggestion.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No suggestions right now."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
