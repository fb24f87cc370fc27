package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/keyring"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage/mongo"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage/postgres"
)

// KeyringSetCmd stores a database connection string in the OS keyring
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL or MongoDB connection string to store."`
	Name             string `help:"Keyring entry name. Use --store keyring:<name> to select it."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	var err error
	switch {
	case strings.HasPrefix(cmd.ConnectionString, "mongodb://"), strings.HasPrefix(cmd.ConnectionString, "mongodb+srv://"):
		_, err = mongo.ValidateURI(cmd.ConnectionString)
		if errors.Is(err, mongo.ErrEmbeddedCredentials) {
			err = nil
		}
	case strings.HasPrefix(cmd.ConnectionString, "postgres://"),
		strings.HasPrefix(cmd.ConnectionString, "postgresql://"),
		strings.Contains(cmd.ConnectionString, "host="):
		_, err = postgres.ValidateConnString(cmd.ConnectionString)
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			err = nil
		}
	default:
		return errors.New("connection string must be a PostgreSQL or MongoDB connection string")
	}
	if err != nil {
		return fmt.Errorf("invalid connection string: %w", err)
	}

	if err := keyring.SetConnectionString(cmd.Name, cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	target := keyring.TargetPrefix
	if cmd.Name != "" {
		target += ":" + cmd.Name
	}
	ctx.println("✓ Connection string stored successfully in OS keyring")
	ctx.printf("  Use it with --store %s\n", target)
	return nil
}

// KeyringDeleteCmd removes a stored connection string
type KeyringDeleteCmd struct {
	Name string `help:"Keyring entry name."`
}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	err := keyring.DeleteConnectionString(cmd.Name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	ctx.println("✓ Connection string deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct {
	Name string `help:"Keyring entry name."`
}

func (cmd *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		ctx.println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	ctx.println("✓ OS keyring is available")

	connStr, err := keyring.GetConnectionString(cmd.Name)
	switch {
	case err == nil:
		ctx.printf("✓ Connection string is stored in keyring: %s\n", maskPassword(connStr))
	case errors.Is(err, keyring.ErrNotFound):
		ctx.println("ℹ No connection string stored in keyring")
	default:
		return err
	}
	return nil
}

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a connection string."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove a stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Show keyring availability." default:"1"`
}

// maskPassword masks passwords in connection strings for display
func maskPassword(connStr string) string {
	if idx := strings.Index(connStr, "://"); idx != -1 {
		remaining := connStr[idx+3:]
		// The last @ separates user info from host
		if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
			userInfo := remaining[:atIdx]
			if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
				return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
			}
		}
		return connStr
	}

	// DSN format (host=... user=... password=...)
	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		masked := make([]string, 0, len(parts))
		for _, part := range parts {
			if strings.HasPrefix(part, "password=") {
				masked = append(masked, "password=****")
			} else {
				masked = append(masked, part)
			}
		}
		return strings.Join(masked, " ")
	}

	return connStr
}
