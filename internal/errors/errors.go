package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
)

// HintError carries a suggestion printed under the error message.
type HintError struct {
	Err  error
	Hint string
}

func (e *HintError) Error() string { return e.Err.Error() }

func (e *HintError) Unwrap() error { return e.Err }

// WithHint attaches a user-facing hint to err. A nil err stays nil.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &HintError{Err: err, Hint: hint}
}

// Format renders err with the "Error: " prefix and, if present, its hint.
func Format(err error) string {
	if err == nil {
		return ""
	}
	var h *HintError
	if stderrors.As(err, &h) && h.Hint != "" {
		return fmt.Sprintf("Error: %v\nHint: %s", err, h.Hint)
	}
	return fmt.Sprintf("Error: %v", err)
}

func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err and exits with status 1. It does nothing for a nil error.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
