// Package control delivers the external events that steer the timer.
package control

import (
	"context"
	"time"

	"github.com/ayoisaiah/pomod/internal/apperr"
)

// Event is an external control request.
type Event int

const (
	// Toggle starts a stopped timer or stops a running one.
	Toggle Event = iota + 1
	// Reset discards the timer and all of its progress.
	Reset
)

var (
	// ErrUnexpectedEvent is returned when the control channel delivers
	// something other than a known event.
	ErrUnexpectedEvent = &apperr.Error{
		Message: "received unexpected control event: %v",
	}

	errUnsupportedPlatform = &apperr.Error{
		Message: "signal control is not supported on %s",
	}
)

func (e Event) String() string {
	switch e {
	case Toggle:
		return "toggle"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

func (e Event) valid() bool {
	return e == Toggle || e == Reset
}

// Inbox is a bounded-wait source of control events.
type Inbox interface {
	// Wait blocks until an event arrives, the timeout elapses, or ctx is
	// done. ok is false on timeout.
	Wait(ctx context.Context, timeout time.Duration) (e Event, ok bool, err error)
}

// Chan is an Inbox fed by a Go channel. It is used where events come from
// inside the process.
type Chan <-chan Event

// Wait implements Inbox.
func (c Chan) Wait(
	ctx context.Context,
	timeout time.Duration,
) (Event, bool, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return 0, false, ctx.Err()
	case <-t.C:
		return 0, false, nil
	case e := <-c:
		if !e.valid() {
			return 0, false, ErrUnexpectedEvent.Fmt(int(e))
		}

		return e, true, nil
	}
}
