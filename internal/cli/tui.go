package cli

import (
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	toast := notifier.NewChannelToast(16)
	sched := ctx.Scheduler(ctx.Notifier(toast))
	return tui.Run(tui.NewModel(ctx.Manager(), sched, toast.C()))
}
