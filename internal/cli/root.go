package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/backup"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/clock"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/config"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/reminders"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/scheduler"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage/sqlite"
)

type Context struct {
	Config *config.Config
	Store  *storage.Store
	Clock  clock.Clock
	// Out receives command output; nil means stdout.
	Out io.Writer

	mgr *reminders.Manager
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Manager returns the reminder manager over the loaded store, building it on
// first use.
func (c *Context) Manager() *reminders.Manager {
	if c.mgr == nil {
		opts := []reminders.Option{}
		if c.Config != nil {
			opts = append(opts, reminders.WithDefaultSnooze(c.Config.Reminders.DefaultSnooze))
		}
		c.mgr = reminders.NewManager(c.Store, c.Clock, opts...)
	}
	return c.mgr
}

// Notifier builds the delivery chain from config. Desktop notifications are
// layered over toast when enabled.
func (c *Context) Notifier(toast notifier.Notifier) *notifier.Dispatch {
	if c.Config != nil && !c.Config.Notifications.Enabled {
		return notifier.NewDispatch(nil, nil)
	}
	if c.Config == nil || !c.Config.Notifications.Desktop {
		return notifier.NewDispatch(toast, nil)
	}
	return notifier.NewDispatch(toast, notifier.NewDesktop(c.Config.Notifications.DurationMs))
}

// Scheduler wires the manager to n with the configured timing. Delivered
// notifications are recorded when the backend keeps history.
func (c *Context) Scheduler(n notifier.Notifier) *scheduler.Scheduler {
	opts := []scheduler.Option{scheduler.WithHistory(c.Store)}
	if c.Config != nil {
		opts = append(opts,
			scheduler.WithInterval(c.Config.Scheduler.Interval),
			scheduler.WithWindow(c.Config.Scheduler.DueWindow),
		)
	}
	return scheduler.New(c.Clock, c.Manager(), n, opts...)
}

// SQLitePath returns the database file when the store is SQLite.
func (c *Context) SQLitePath() (string, bool) {
	if s, ok := c.Store.Backend().(*sqlite.Store); ok {
		return s.GetConfigPath(), true
	}
	return "", false
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	path, ok := c.SQLitePath()
	if !ok {
		return
	}
	mgr := backup.NewManager(path).WithClock(c.Clock)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func formatWhen(r models.Reminder) string {
	switch {
	case r.Date == "" && r.Time == "":
		return "-"
	case r.Time == "":
		return r.Date
	case r.Date == "":
		return r.Time
	}
	return r.Date + " " + r.Time
}

func formatReminderLine(r models.Reminder, now time.Time) string {
	var flags []string
	if reminders.IsOverdue(r, now) {
		flags = append(flags, "overdue")
	}
	if r.IsSnoozed(now) {
		flags = append(flags, "snoozed until "+r.SnoozeUntil.In(now.Location()).Format("Jan 2 "+constants.TimeFormat))
	}
	if r.IsRecurring() {
		flags = append(flags, r.FormatRepeat())
	}

	line := fmt.Sprintf("%s  %-16s  %-6s  %-9s  %s", shortID(r.ID), formatWhen(r), r.Priority, r.Category, r.Title)
	if r.AssignedTo != "" {
		line += " @" + r.AssignedTo
	}
	if len(flags) > 0 {
		line += " [" + strings.Join(flags, ", ") + "]"
	}
	return line
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands a unique ID prefix, as printed by list, to the full ID.
func resolveID(mgr *reminders.Manager, prefix string) (string, error) {
	if _, err := mgr.Get(prefix); err == nil {
		return prefix, nil
	}
	var match string
	for _, r := range mgr.List() {
		if strings.HasPrefix(r.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("ambiguous reminder id %q", prefix)
			}
			match = r.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", reminders.ErrNotFound, prefix)
	}
	return match, nil
}
