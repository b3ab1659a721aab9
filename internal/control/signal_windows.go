//go:build windows

package control

import (
	"context"
	"runtime"
	"time"
)

// Signals is unavailable on Windows, which has no user-defined signals.
type Signals struct{}

// NewSignals always fails on Windows.
func NewSignals() (*Signals, error) {
	return nil, errUnsupportedPlatform.Fmt(runtime.GOOS)
}

// Wait implements Inbox.
func (s *Signals) Wait(
	_ context.Context,
	_ time.Duration,
) (Event, bool, error) {
	return 0, false, errUnsupportedPlatform.Fmt(runtime.GOOS)
}

// Close is a no-op.
func (s *Signals) Close() error {
	return nil
}

// Send always fails on Windows.
func Send(_ int, _ Event) error {
	return errUnsupportedPlatform.Fmt(runtime.GOOS)
}
