package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/api"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
)

// ServeCmd exposes the manager over HTTP and runs the scheduler alongside.
type ServeCmd struct {
	Addr string `help:"Listen address. Defaults to server.addr from config."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := c.Addr
	if addr == "" && ctx.Config != nil {
		addr = ctx.Config.Server.Addr
	}

	sched := ctx.Scheduler(ctx.Notifier(notifier.NewWriterToast(ctx.out())))
	sched.Start(sigCtx)
	defer sched.Stop()

	ctx.printf("Serving reminders on http://%s\n", addr)
	return api.NewServer(ctx.Manager()).ListenAndServe(sigCtx, addr)
}
