// Package errors provides domain-specific error types for sshkit.
//
// These types carry structured context (callback ranges, config fields)
// that helps callers decide how to handle failures and provides better
// diagnostics than plain string wrapping.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrEmpty is returned when popping from an empty sequence.
	ErrEmpty = errors.New("sequence is empty")

	// ErrRangeOverflow is returned when a callback entry's range would
	// wrap past the end of the 8-bit message type space.
	ErrRangeOverflow = errors.New("callback range exceeds message type space")

	// ErrCallbacksVersion is returned when a callback slot struct was
	// not initialized, or was built against a newer library version.
	ErrCallbacksVersion = errors.New("unrecognized callbacks struct version")

	// ErrNoAuthCallback is returned when an authentication prompt is
	// requested but no auth slot is set on the session.
	ErrNoAuthCallback = errors.New("no auth callback registered")
)

// ── Structured error types ───────────────────────────────────────────

// EntryError reports a rejected callback chain entry with its range.
type EntryError struct {
	Start uint8 // first message type the entry claimed
	Count int   // number of consecutive types claimed
	Err   error // underlying error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("callback entry [%d, %d+%d): %v", e.Start, e.Start, e.Count, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: %s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// WrapEntry creates an EntryError for the given range.
func WrapEntry(start uint8, count int, err error) *EntryError {
	return &EntryError{Start: start, Count: count, Err: err}
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use sshkit/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
