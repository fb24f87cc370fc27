package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/clock"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage/sqlite"
)

// TestIntegrationBackupRestoreWorkflow backs up a real reminder store,
// mutates it, restores, and checks the reminders come back.
func TestIntegrationBackupRestoreWorkflow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rebill.db")
	now := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

	open := func() *storage.Store {
		s := storage.New(sqlite.NewStore(dbPath))
		if err := s.Init(); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		return s
	}

	store := open()
	r, err := models.NewReminder(models.ReminderInput{Title: "Pay rent", Date: "2024-06-15"}, now)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveReminders([]models.Reminder{r}); err != nil {
		t.Fatalf("SaveReminders failed: %v", err)
	}
	store.Close()

	clk := clock.NewFake(now)
	mgr := NewManager(dbPath).WithClock(clk)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	clk.Advance(time.Minute)

	store = open()
	if err := store.SaveReminders(nil); err != nil {
		t.Fatal(err)
	}
	if got := store.LoadReminders(); len(got) != 0 {
		t.Fatalf("expected empty store before restore, got %d", len(got))
	}
	store.Close()

	if _, err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	store = open()
	defer store.Close()
	got := store.LoadReminders()
	if len(got) != 1 || got[0].ID != r.ID || got[0].Title != "Pay rent" {
		t.Errorf("restored reminders = %+v", got)
	}
}
