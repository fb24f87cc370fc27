package reminders

import (
	"errors"
	"testing"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/clock"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/suggestions"
)

func newTestManager(t *testing.T, now string) (*Manager, *storage.MemoryStore, *clock.Fake) {
	t.Helper()
	mem := storage.NewMemoryStore()
	clk := clock.NewFake(at(now))
	return NewManager(storage.New(mem), clk), mem, clk
}

func TestManager_CreateWritesThrough(t *testing.T) {
	m, mem, clk := newTestManager(t, "2024-06-12T09:00:00")

	r, err := m.Create(models.ReminderInput{Title: "  Pay rent  ", Date: "2024-06-15"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if r.Title != "Pay rent" || r.RepeatType != models.RepeatOnce || r.Priority != models.PriorityMedium {
		t.Errorf("Create() = %+v, want trimmed title and defaults", r)
	}

	// A second manager over the same backend sees the write.
	reloaded := NewManager(storage.New(mem), clk)
	got, err := reloaded.Get(r.ID)
	if err != nil {
		t.Fatalf("Get() after reload error = %v", err)
	}
	if got.Title != "Pay rent" {
		t.Errorf("reloaded title = %q", got.Title)
	}
}

func TestManager_CreateRejectsBlankTitle(t *testing.T) {
	m, _, _ := newTestManager(t, "2024-06-12T09:00:00")

	if _, err := m.Create(models.ReminderInput{Title: "   "}); !errors.Is(err, models.ErrEmptyTitle) {
		t.Errorf("Create() error = %v, want ErrEmptyTitle", err)
	}
	if n := len(m.List()); n != 0 {
		t.Errorf("List() has %d reminders after rejected create", n)
	}
}

func TestManager_SaveFailureKeepsMemoryState(t *testing.T) {
	m, mem, _ := newTestManager(t, "2024-06-12T09:00:00")
	mem.FailWrites = errors.New("disk full")

	r, err := m.Create(models.ReminderInput{Title: "Count cash"})
	if err != nil {
		t.Fatalf("Create() error = %v, want nil despite failed save", err)
	}
	if _, err := m.Get(r.ID); err != nil {
		t.Errorf("Get() error = %v, reminder should stay in memory", err)
	}
}

func TestManager_NotFound(t *testing.T) {
	m, _, _ := newTestManager(t, "2024-06-12T09:00:00")

	checks := map[string]error{}
	_, checks["Complete"] = m.Complete("missing")
	_, checks["Snooze"] = m.Snooze("missing", 0)
	_, checks["Update"] = m.Update("missing", models.ReminderPatch{})
	_, checks["Get"] = m.Get("missing")
	checks["Delete"] = m.Delete("missing")

	for op, err := range checks {
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%s() error = %v, want ErrNotFound", op, err)
		}
	}
}

func TestManager_CompleteRollsDaily(t *testing.T) {
	m, _, _ := newTestManager(t, "2024-06-12T09:00:30")

	r, _ := m.Create(models.ReminderInput{Title: "Open till", Date: "2024-06-10", Time: "09:00", RepeatType: models.RepeatDaily})
	got, err := m.Complete(r.ID)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got.Date != "2024-06-13" || got.Status != models.StatusActive {
		t.Errorf("Complete() = %s/%s, want 2024-06-13/active", got.Date, got.Status)
	}
}

func TestManager_SnoozeDefault(t *testing.T) {
	m, _, clk := newTestManager(t, "2024-06-12T09:00:00")
	r, _ := m.Create(models.ReminderInput{Title: "Call supplier", Date: "2024-06-12", Time: "09:00"})

	got, err := m.Snooze(r.ID, 0)
	if err != nil {
		t.Fatalf("Snooze() error = %v", err)
	}
	want := clk.Now().Add(10 * time.Minute)
	if got.SnoozeUntil == nil || !got.SnoozeUntil.Equal(want) {
		t.Errorf("SnoozeUntil = %v, want %v", got.SnoozeUntil, want)
	}
	if IsDueNow(got, clk.Now(), time.Minute) {
		t.Error("snoozed reminder should not be due")
	}

	clk.Advance(11 * time.Minute)
	got, _ = m.Get(r.ID)
	if got.IsSnoozed(clk.Now()) {
		t.Error("snooze should have expired")
	}
}

func TestManager_SnoozeTomorrow(t *testing.T) {
	m, _, _ := newTestManager(t, "2024-06-12T17:30:00")
	r, _ := m.Create(models.ReminderInput{Title: "Stock count"})

	got, err := m.SnoozeTomorrow(r.ID)
	if err != nil {
		t.Fatalf("SnoozeTomorrow() error = %v", err)
	}
	if want := at("2024-06-13T09:00:00"); got.SnoozeUntil == nil || !got.SnoozeUntil.Equal(want) {
		t.Errorf("SnoozeUntil = %v, want %v", got.SnoozeUntil, want)
	}
}

func TestManager_Update(t *testing.T) {
	m, _, _ := newTestManager(t, "2024-06-12T09:00:00")
	r, _ := m.Create(models.ReminderInput{Title: "File GST"})

	title := "File GSTR-3B"
	priority := models.PriorityHigh
	got, err := m.Update(r.ID, models.ReminderPatch{Title: &title, Priority: &priority})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Title != title || got.Priority != priority {
		t.Errorf("Update() = %+v", got)
	}

	blank := " "
	if _, err := m.Update(r.ID, models.ReminderPatch{Title: &blank}); !errors.Is(err, models.ErrEmptyTitle) {
		t.Errorf("Update() blank title error = %v, want ErrEmptyTitle", err)
	}
	if stored, _ := m.Get(r.ID); stored.Title != title {
		t.Errorf("rejected update changed title to %q", stored.Title)
	}
}

func TestManager_ConvertToRecurring(t *testing.T) {
	m, _, _ := newTestManager(t, "2024-06-12T09:00:00")
	r, _ := m.Create(models.ReminderInput{Title: "Pay electricity", Date: "2024-05-31"})
	if _, err := m.Complete(r.ID); err != nil {
		t.Fatal(err)
	}

	got, err := m.ConvertToRecurring(r.ID, models.RepeatMonthly)
	if err != nil {
		t.Fatalf("ConvertToRecurring() error = %v", err)
	}
	if got.Status != models.StatusActive || got.RepeatType != models.RepeatMonthly || got.MonthDay != 31 {
		t.Errorf("ConvertToRecurring() = %+v", got)
	}

	undated, _ := m.Create(models.ReminderInput{Title: "Sweep store"})
	got, _ = m.ConvertToRecurring(undated.ID, models.RepeatDaily)
	if got.Date != "2024-06-12" {
		t.Errorf("undated conversion Date = %q, want today", got.Date)
	}

	for _, repeat := range []models.RepeatType{models.RepeatOnce, models.RepeatCustom, "yearly"} {
		if _, err := m.ConvertToRecurring(r.ID, repeat); !errors.Is(err, ErrInvalidRecurrence) {
			t.Errorf("ConvertToRecurring(%q) error = %v, want ErrInvalidRecurrence", repeat, err)
		}
	}
}

func TestManager_Delete(t *testing.T) {
	m, mem, clk := newTestManager(t, "2024-06-12T09:00:00")
	a, _ := m.Create(models.ReminderInput{Title: "a"})
	b, _ := m.Create(models.ReminderInput{Title: "b"})

	if err := m.Delete(a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	list := NewManager(storage.New(mem), clk).List()
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("after delete List() = %v", ids(list))
	}
}

func TestManager_Suggestions(t *testing.T) {
	m, mem, clk := newTestManager(t, "2024-06-12T15:00:00")
	total := len(suggestions.DefaultCatalog)

	if got := len(m.Suggestions()); got != total {
		t.Fatalf("Suggestions() = %d, want %d", got, total)
	}

	r, err := m.AcceptSuggestion("sug-low-stock-khari")
	if err != nil {
		t.Fatalf("AcceptSuggestion() error = %v", err)
	}
	if r.Title != "Reorder khari from supplier" || r.Date != "2024-06-13" || r.Time != "09:00" {
		t.Errorf("accepted reminder = %+v", r)
	}
	if r.Priority != models.PriorityHigh || r.Category != models.CategoryInventory {
		t.Errorf("accepted reminder priority/category = %s/%s", r.Priority, r.Category)
	}

	if err := m.DismissSuggestion("sug-gst-filing"); err != nil {
		t.Fatalf("DismissSuggestion() error = %v", err)
	}
	if err := m.DismissSuggestion("sug-gst-filing"); err != nil {
		t.Fatalf("second DismissSuggestion() error = %v", err)
	}
	if got := m.Dismissed(); len(got) != 2 {
		t.Errorf("Dismissed() = %v, want 2 unique ids", got)
	}

	for _, s := range m.Suggestions() {
		if s.ID == "sug-low-stock-khari" || s.ID == "sug-gst-filing" {
			t.Errorf("Suggestions() still offers %s", s.ID)
		}
	}

	if err := m.DismissSuggestion("sug-unknown"); !errors.Is(err, suggestions.ErrNotFound) {
		t.Errorf("DismissSuggestion(unknown) error = %v, want suggestions.ErrNotFound", err)
	}

	reloaded := NewManager(storage.New(mem), clk)
	if got := len(reloaded.Suggestions()); got != total-2 {
		t.Errorf("reloaded Suggestions() = %d, want %d", got, total-2)
	}
}

func TestManager_Categorize(t *testing.T) {
	m, _, _ := newTestManager(t, "2024-06-12T09:00:00")
	_, _ = m.Create(models.ReminderInput{Title: "today", Date: "2024-06-12", Time: "18:00"})
	_, _ = m.Create(models.ReminderInput{Title: "later", Date: "2024-06-20"})

	b := m.Categorize()
	if len(b.Today) != 1 || len(b.Upcoming) != 1 {
		t.Errorf("Categorize() today=%d upcoming=%d, want 1/1", len(b.Today), len(b.Upcoming))
	}
}
