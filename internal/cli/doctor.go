package cli

import (
	"fmt"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/backup"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/keyring"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/validation"
)

type DoctorCmd struct{}

// schemaVersioner is implemented by the SQL backends.
type schemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		ctx.printf("❌ Database reachable: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version and migrations
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			ctx.printf("❌ Schema version: FAIL\n")
			ctx.printf("   Error: %v\n", err)
			hasError = true
		} else {
			ctx.printf("✓ Schema version: OK\n")
		}
	}

	// Check 3: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		ctx.printf("⚠ Backups present: WARNING\n")
		ctx.printf("   %v\n", err)
	} else {
		ctx.printf("✓ Backups present: OK\n")
	}

	// Check 4: Validation passes (only if DB is reachable)
	if dbReachable {
		if err := checkValidation(ctx); err != nil {
			ctx.printf("⚠ Data validation: WARNING\n")
			ctx.printf("   %v\n", err)
		} else {
			ctx.printf("✓ Data validation: OK\n")
		}
	} else {
		ctx.printf("⊘ Data validation: SKIPPED (database not reachable)\n")
	}

	// Check 5: Desktop notifications (warning only)
	if err := checkDesktop(ctx); err != nil {
		ctx.printf("⚠ Desktop notifications: WARNING\n")
		ctx.printf("   %v\n", err)
	} else {
		ctx.printf("✓ Desktop notifications: OK\n")
	}

	// Check 6: Keyring (informational)
	if keyring.IsAvailable() {
		ctx.printf("✓ OS keyring: available\n")
	} else {
		ctx.printf("ℹ OS keyring: not available\n")
	}

	// Check 7: Clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		ctx.printf("❌ Clock/timezone: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Clock/timezone: OK\n")
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sv, ok := ctx.Store.Backend().(schemaVersioner)
	if !ok {
		// Document and file stores have no schema
		return nil
	}

	current, latest, err := sv.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	path, ok := ctx.SQLitePath()
	if !ok {
		return fmt.Errorf("file backups only apply to SQLite stores")
	}

	backups, err := backup.NewManager(path).ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'rebill backup create'")
	}
	return nil
}

func checkValidation(ctx *Context) error {
	result := validation.New().ValidateReminders(ctx.Manager().List(), ctx.Clock.Now())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found, run 'rebill validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkDesktop(ctx *Context) error {
	if ctx.Config != nil && (!ctx.Config.Notifications.Enabled || !ctx.Config.Notifications.Desktop) {
		return fmt.Errorf("disabled in config")
	}
	return notifier.NewDesktop(0).Available()
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.Clock.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if ctx.Config != nil {
		if _, err := ctx.Config.Location(); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", ctx.Config.Timezone, err)
		}
	}

	if now.Location() == time.UTC {
		ctx.printf("   Note: timezone is UTC\n")
	}
	return nil
}
