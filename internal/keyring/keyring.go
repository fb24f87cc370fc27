package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
)

// TargetPrefix marks a configured store target whose real connection string
// lives in the OS keyring: "keyring" or "keyring:<account>".
const TargetPrefix = "keyring"

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func account(name string) string {
	if name == "" {
		return constants.DefaultKeyringUser
	}
	return name
}

// GetConnectionString returns the connection string stored under account,
// or ErrNotFound. An empty account selects the default entry.
func GetConnectionString(name string) (string, error) {
	connStr, err := keyring.Get(constants.AppName, account(name))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

func SetConnectionString(name, connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, account(name), connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func DeleteConnectionString(name string) error {
	err := keyring.Delete(constants.AppName, account(name))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort probe: a read that fails with anything other
// than "not found" means there is no usable keyring.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// IsKeyringTarget reports whether target refers to a keyring entry.
func IsKeyringTarget(target string) bool {
	return target == TargetPrefix || strings.HasPrefix(target, TargetPrefix+":")
}

// ResolveTarget swaps a keyring reference for the stored connection string.
// Other targets are returned unchanged with fromKeyring false.
func ResolveTarget(target string) (resolved string, fromKeyring bool, err error) {
	if !IsKeyringTarget(target) {
		return target, false, nil
	}
	name := strings.TrimPrefix(strings.TrimPrefix(target, TargetPrefix), ":")
	connStr, err := GetConnectionString(name)
	if err != nil {
		return "", true, fmt.Errorf("resolve store %q: %w", target, err)
	}
	return connStr, true, nil
}
