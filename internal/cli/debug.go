package cli

import (
	"encoding/json"
	"fmt"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
)

type DebugCmd struct {
	DBPath        DebugDBPathCmd        `cmd:"" help:"Show database path."`
	DumpReminders DebugDumpRemindersCmd `cmd:"" help:"Dump all reminders as JSON."`
	DumpConfig    DebugDumpConfigCmd    `cmd:"" help:"Dump the effective configuration as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if _, ok := ctx.SQLitePath(); !ok {
		path = maskPassword(path)
	}

	// Output in machine-readable format
	return ctx.printJSON(map[string]string{"path": path})
}

type DebugDumpRemindersCmd struct {
	Dismissed bool `help:"Also include dismissed suggestion IDs."`
}

func (cmd *DebugDumpRemindersCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	if !cmd.Dismissed {
		return ctx.printJSON(mgr.List())
	}
	return ctx.printJSON(map[string]any{
		constants.RecordReminders:            mgr.List(),
		constants.RecordDismissedSuggestions: mgr.Dismissed(),
	})
}

type DebugDumpConfigCmd struct{}

func (cmd *DebugDumpConfigCmd) Run(ctx *Context) error {
	if ctx.Config == nil {
		return fmt.Errorf("no configuration loaded")
	}
	cfg := *ctx.Config
	cfg.Store = maskPassword(cfg.Store)
	return ctx.printJSON(cfg)
}

func (c *Context) printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	c.println(string(jsonBytes))
	return nil
}
