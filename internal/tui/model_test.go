package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/clock"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/reminders"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/scheduler"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/tui/components/reminderlist"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/tui/components/suggestionlist"
)

func newTestModel(t *testing.T) (Model, *reminders.Manager, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2024, 6, 12, 8, 59, 50, 0, time.UTC))
	mgr := reminders.NewManager(storage.NewMemory(), clk)
	toast := notifier.NewChannelToast(4)
	sched := scheduler.New(clk, mgr, toast)
	m := NewModel(mgr, sched, toast.C())
	return m, mgr, clk
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func TestTabCycling(t *testing.T) {
	m, _, _ := newTestModel(t)

	tab := tea.KeyMsg{Type: tea.KeyTab}
	for i := 1; i <= tabCount; i++ {
		m = update(t, m, tab)
		if want := SessionState(i % tabCount); m.state != want {
			t.Fatalf("after %d tabs state = %d, want %d", i, m.state, want)
		}
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != StateSuggestions {
		t.Errorf("shift+tab from Today = %d, want Suggestions", m.state)
	}
}

func TestCompleteRefreshesBuckets(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	r, err := mgr.Create(models.ReminderInput{Title: "Count cash", Date: "2024-06-12", Time: "18:00"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	m.refresh()
	if got := m.lists[StateToday].Len(); got != 1 {
		t.Fatalf("Today has %d items, want 1", got)
	}

	m = update(t, m, reminderlist.CompleteMsg{ID: r.ID})
	if got := m.lists[StateToday].Len(); got != 0 {
		t.Errorf("Today has %d items after complete, want 0", got)
	}
	if got := m.lists[StateCompleted].Len(); got != 1 {
		t.Errorf("Completed has %d items, want 1", got)
	}
	if !strings.Contains(m.status, "Count cash") {
		t.Errorf("status = %q, want it to name the reminder", m.status)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	r, _ := mgr.Create(models.ReminderInput{Title: "Pay rent", Date: "2024-06-12"})
	m.refresh()

	m = update(t, m, reminderlist.DeleteMsg{ID: r.ID})
	if m.state != StateConfirmDelete {
		t.Fatalf("state = %d, want confirm delete", m.state)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.state != StateToday {
		t.Errorf("state after cancel = %d, want Today", m.state)
	}
	if _, err := mgr.Get(r.ID); err != nil {
		t.Fatalf("reminder removed after cancel: %v", err)
	}

	m = update(t, m, reminderlist.DeleteMsg{ID: r.ID})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if _, err := mgr.Get(r.ID); err == nil {
		t.Error("reminder still present after confirming delete")
	}
}

func TestSnoozeTomorrow(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	r, _ := mgr.Create(models.ReminderInput{Title: "Call supplier", Date: "2024-06-12", Time: "10:00"})

	m = update(t, m, reminderlist.SnoozeMsg{ID: r.ID, Tomorrow: true})
	got, _ := mgr.Get(r.ID)
	if got.SnoozeUntil == nil {
		t.Fatal("SnoozeUntil not set")
	}
	want := time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC)
	if !got.SnoozeUntil.Equal(want) {
		t.Errorf("SnoozeUntil = %v, want %v", got.SnoozeUntil, want)
	}
	if !strings.Contains(m.status, "Snoozed") {
		t.Errorf("status = %q", m.status)
	}
}

func TestTickShowsToast(t *testing.T) {
	m, mgr, clk := newTestModel(t)
	if _, err := mgr.Create(models.ReminderInput{Title: "Open till", Date: "2024-06-12", Time: "09:00"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	m = update(t, m, tickMsg(clk.Now()))
	if !strings.Contains(m.toast, "Open till") {
		t.Fatalf("toast = %q, want it to mention the reminder", m.toast)
	}

	// Same occurrence on the next poll does not re-fire; the toast expires.
	clk.Advance(toastDuration + time.Second)
	m = update(t, m, tickMsg(clk.Now()))
	if m.toast != "" {
		t.Errorf("toast = %q after expiry, want empty", m.toast)
	}
}

func TestDismissSuggestion(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	ss := mgr.Suggestions()
	if len(ss) == 0 {
		t.Skip("no suggestions for this date")
	}
	before := m.suggestions.Len()

	m = update(t, m, suggestionlist.DismissMsg{ID: ss[0].ID})
	if got := m.suggestions.Len(); got != before-1 {
		t.Errorf("suggestions = %d after dismiss, want %d", got, before-1)
	}
}

func TestValidationWarning(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	in := models.ReminderInput{Title: "Restock rice", Date: "2024-06-12", Time: "11:00"}
	mgr.Create(in)
	mgr.Create(in)
	m.refresh()

	if m.validationWarning == "" {
		t.Error("expected a validation warning for duplicate reminders")
	}
}
