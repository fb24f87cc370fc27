package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/clock"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE records (name TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO records (name, value) VALUES ('reminders', '[]'), ('dismissed_suggestions', '[]')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return dbPath
}

func countRows(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		t.Fatalf("failed to query database: %v", err)
	}
	return count
}

func newTestManager(dbPath string) (*Manager, *clock.Fake) {
	clk := clock.NewFake(time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC))
	return NewManager(dbPath).WithClock(clk), clk
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr, _ := newTestManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if want := filepath.Join(mgr.GetBackupDir(), "rebill-20240612-0900.db"); backupPath != want {
		t.Errorf("backup path = %s, want %s", backupPath, want)
	}
	if got := countRows(t, backupPath); got != 2 {
		t.Errorf("expected 2 rows in backup, got %d", got)
	}
}

func TestCreateBackup_MissingDatabase(t *testing.T) {
	mgr, _ := newTestManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr, clk := newTestManager(dbPath)

	for i := 0; i < constants.MaxBackups+5; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		clk.Advance(time.Hour)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}

	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted correctly: backup %d is newer than backup %d", i, i-1)
		}
	}
	// The five oldest hours were rotated out.
	if oldest := backups[len(backups)-1].Timestamp; oldest.Hour() != 14 {
		t.Errorf("oldest remaining backup = %v, want 14:00", oldest)
	}
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr, clk := newTestManager(dbPath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups initially, got %d", len(backups))
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		clk.Advance(time.Minute)
	}
	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("expected 3 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Path == "" || b.Size == 0 || b.Timestamp.IsZero() {
			t.Errorf("incomplete backup info: %+v", b)
		}
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr, _ := newTestManager(dbPath)

	// Same clock reading every time forces the seconds and counter fallbacks.
	paths := make(map[string]bool)
	for i := 0; i < 5; i++ {
		backupPath, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		name := filepath.Base(backupPath)
		if paths[name] {
			t.Errorf("duplicate backup filename: %s", name)
		}
		paths[name] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 5 {
		t.Errorf("ListBackups() = %d, want all 5 parsed", len(backups))
	}
}

func TestParseBackupName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		want string
	}{
		{name: "rebill-20240612-0900.db", ok: true, want: "2024-06-12 09:00:00"},
		{name: "rebill-20240612-090015.db", ok: true, want: "2024-06-12 09:00:15"},
		{name: "rebill-20240612-090015-3.db", ok: true, want: "2024-06-12 09:00:15"},
		{name: "daylit-20240612-0900.db", ok: false},
		{name: "rebill-garbage.db", ok: false},
		{name: "rebill-20240612-0900.sqlite", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseBackupName(tt.name)
			if ok != tt.ok {
				t.Fatalf("parseBackupName() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Format("2006-01-02 15:04:05") != tt.want {
				t.Errorf("parseBackupName() = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr, clk := newTestManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	clk.Advance(time.Minute)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO records (name, value) VALUES ('extra', '[]')"); err != nil {
		t.Fatalf("failed to insert data: %v", err)
	}
	db.Close()

	if got := countRows(t, dbPath); got != 3 {
		t.Fatalf("expected 3 rows before restore, got %d", got)
	}

	safety, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	if got := countRows(t, dbPath); got != 2 {
		t.Errorf("expected 2 rows after restore, got %d", got)
	}
	if safety == "" {
		t.Fatal("expected a safety backup path")
	}
	if got := countRows(t, safety); got != 3 {
		t.Errorf("safety backup has %d rows, want 3", got)
	}
}

func TestRestoreBackup_Invalid(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr, _ := newTestManager(dbPath)

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(mgr.GetBackupDir(), "invalid.db")
	if err := os.WriteFile(invalid, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(invalid); err == nil {
		t.Error("expected error for corrupt backup")
	}
	if got := countRows(t, dbPath); got != 2 {
		t.Errorf("database changed after failed restore: %d rows", got)
	}
}
