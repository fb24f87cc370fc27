package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage"
)

// NotifyCmd sends a one-off notification through the configured channels.
type NotifyCmd struct {
	Message string `arg:"" help:"Text to send." default:"rebill test notification"`
	DryRun  bool   `help:"Print the notification instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	n := notifier.Notification{Title: c.Message, At: ctx.Clock.Now()}
	if c.DryRun {
		ctx.println("[DryRun] " + n.Text())
		return nil
	}

	d := ctx.Notifier(notifier.NewWriterToast(ctx.out()))
	if err := d.Notify(n); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	ctx.printf("Desktop notifications: %s\n", d.Permission())
	return nil
}

// HistoryCmd lists recently delivered notifications.
type HistoryCmd struct {
	Limit int `short:"n" help:"Number of entries to show." default:"20"`
}

func (c *HistoryCmd) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}
	return nil
}

func (c *HistoryCmd) Run(ctx *Context) error {
	recs, err := ctx.Store.RecentNotifications(c.Limit)
	if errors.Is(err, storage.ErrNoHistory) {
		ctx.println("This store does not keep notification history.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read notification history: %w", err)
	}
	if len(recs) == 0 {
		ctx.println("No notifications sent yet.")
		return nil
	}

	mgr := ctx.Manager()
	for _, rec := range recs {
		title := rec.ReminderID
		if r, err := mgr.Get(rec.ReminderID); err == nil {
			title = r.Title
		}
		occurrence := strings.ReplaceAll(strings.TrimPrefix(rec.Occurrence, rec.ReminderID+"|"), "|", " ")
		ctx.printf("%s  %-16s  %s\n", rec.SentAt.In(ctx.Clock.Now().Location()).Format("2006-01-02 15:04:05"), occurrence, title)
	}
	return nil
}
