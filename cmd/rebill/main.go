package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/cli"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/clock"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/config"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	apperrors "github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/errors"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/keyring"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage/sqlite"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"${config_file}"`
	Store   string `help:"Store target: SQLite path, JSON directory, postgres:// or mongodb:// URL, or keyring[:name]. Credentials must NOT be embedded; store them with 'rebill keyring set' instead."`
	Verbose bool   `short:"v" help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize rebill storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Reminder cli.ReminderCmd `cmd:"" aliases:"r" help:"Manage reminders."`
	Suggest  cli.SuggestCmd  `cmd:"" help:"Smart suggestions."`
	Watch    cli.WatchCmd    `cmd:"" help:"Run the notification scheduler in the foreground."`
	Serve    cli.ServeCmd    `cmd:"" help:"Serve the HTTP API and run the scheduler."`
	Notify   cli.NotifyCmd   `cmd:"" help:"Send a test notification."`
	History  cli.HistoryCmd  `cmd:"" help:"Show recently delivered notifications."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate cli.ValidateCmd `cmd:"" help:"Check reminders for conflicts."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage database backups."`
	Keyring  cli.KeyringCmd  `cmd:"" help:"Manage connection strings in the OS keyring."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Smart reminders for the shop counter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
	)

	apperrors.Fatal(run(ctx))
}

func run(ctx *kong.Context) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if CLI.Store != "" {
		cfg.Store = CLI.Store
	}
	if CLI.Verbose {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(utils.ExpandPath(CLI.Config)),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	appCtx := &cli.Context{
		Config: cfg,
		Clock:  clock.New(loc),
	}

	command := ctx.Command()
	if strings.HasPrefix(command, "keyring") {
		return ctx.Run(appCtx)
	}

	store, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()
	appCtx.Store = store

	// Init creates the schema itself; everything else needs a loaded store.
	if command != "init" {
		if err := store.Load(); err != nil {
			if errors.Is(err, sqlite.ErrNotInitialized) {
				return apperrors.WithHint(err, "run 'rebill init' to create the database")
			}
			return err
		}
	}

	return ctx.Run(appCtx)
}

// openStore resolves keyring references before choosing a backend. Only a
// connection string that came from the keyring may carry credentials.
func openStore(target string) (*storage.Store, error) {
	resolved, fromKeyring, err := keyring.ResolveTarget(target)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, apperrors.WithHint(err, "store the connection string with 'rebill keyring set'")
	}
	if err != nil {
		return nil, err
	}
	var opts []storage.OpenOption
	if fromKeyring {
		opts = append(opts, storage.AllowCredentials())
	}
	return storage.Open(resolved, opts...)
}
