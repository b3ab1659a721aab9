//go:build !windows

package control

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// signalBuffer holds pending signals between two waits. signal.Notify
// drops a signal when the channel is full.
const signalBuffer = 8

var signalEvents = map[os.Signal]Event{
	syscall.SIGUSR1: Toggle,
	syscall.SIGUSR2: Reset,
}

var eventSignals = map[Event]syscall.Signal{
	Toggle: syscall.SIGUSR1,
	Reset:  syscall.SIGUSR2,
}

// Signals is an Inbox backed by process signals: SIGUSR1 toggles the timer
// and SIGUSR2 resets it.
type Signals struct {
	ch chan os.Signal
}

// NewSignals starts relaying SIGUSR1 and SIGUSR2 to the returned inbox.
// Close must be called to restore the default signal behaviour.
func NewSignals() (*Signals, error) {
	s := &Signals{
		ch: make(chan os.Signal, signalBuffer),
	}

	signal.Notify(s.ch, syscall.SIGUSR1, syscall.SIGUSR2)

	return s, nil
}

// Wait implements Inbox.
func (s *Signals) Wait(
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
	case sig := <-s.ch:
		e, err := fromSignal(sig)
		if err != nil {
			return 0, false, err
		}

		return e, true, nil
	}
}

// Close stops relaying signals.
func (s *Signals) Close() error {
	signal.Stop(s.ch)

	return nil
}

// Send delivers e to the process identified by pid.
func Send(pid int, e Event) error {
	sig, ok := eventSignals[e]
	if !ok {
		return ErrUnexpectedEvent.Fmt(e)
	}

	return syscall.Kill(pid, sig)
}

func fromSignal(sig os.Signal) (Event, error) {
	e, ok := signalEvents[sig]
	if !ok {
		return 0, ErrUnexpectedEvent.Fmt(sig)
	}

	return e, nil
}
