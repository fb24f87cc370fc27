package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
)

// WatchCmd runs the scheduler in the foreground, printing toasts to stdout.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(sigCtx, ctx)
}

func (c *WatchCmd) run(runCtx context.Context, ctx *Context) error {
	n := ctx.Notifier(notifier.NewWriterToast(ctx.out()))
	ctx.printf("Watching reminders (desktop: %s). Press Ctrl+C to stop.\n", n.RequestPermission())

	sched := ctx.Scheduler(n)
	logger.Info("Watch started", "interval", sched.Interval)
	sched.Run(runCtx)
	logger.Info("Watch stopped")
	return nil
}
