// Package timer drives the Pomodoro cycle: it accounts elapsed time between
// polls, moves from one phase to the next, and announces each transition.
package timer

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/pomod/internal/interval"
)

const (
	notifySummary = "pomod: time is up"
	notifyBody    = "next up: %s"
)

// Notifier delivers a user-visible notification.
type Notifier interface {
	Notify(summary, body string) error
}

// TransitionFunc is called after the timer moves from one phase to another
// while running.
type TransitionFunc func(from, to interval.State)

// Option configures a Timer.
type Option func(*Timer)

// Timer represents the Pomodoro timer. It is not safe for concurrent use;
// a single owner is expected to call its methods.
type Timer struct {
	clock        Clock
	notifier     Notifier
	onTransition []TransitionFunc

	startedAt    time.Time
	lastPoll     time.Time
	remaining    Remaining
	state        interval.State
	breakCounter int
	running      bool
}

// Snapshot is a copy of the observable timer state.
type Snapshot struct {
	State        interval.State
	Remaining    Remaining
	BreakCounter int
	Running      bool
}

// WithClock sets the clock used to measure elapsed time.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithNotifier sets where transition notifications are sent.
func WithNotifier(n Notifier) Option {
	return func(t *Timer) {
		t.notifier = n
	}
}

// OnTransition registers fn to run after every transition that happens
// during Poll.
func OnTransition(fn TransitionFunc) Option {
	return func(t *Timer) {
		t.onTransition = append(t.onTransition, fn)
	}
}

// New creates a stopped timer that has not begun its first phase.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock:     SystemClock{},
		state:     interval.Uninitialized,
		remaining: Left(interval.Uninitialized.Duration()),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.lastPoll = t.clock.Now()

	return t
}

// Start resumes the countdown. The very first start also begins the first
// work interval; later starts pick up where Stop left off.
func (t *Timer) Start() {
	if t.running {
		return
	}

	if t.startedAt.IsZero() {
		t.startedAt = t.clock.Now()
		t.beginNextState()
	}

	t.running = true
}

// Stop freezes the countdown.
func (t *Timer) Stop() {
	if !t.running {
		return
	}

	t.running = false
}

// Toggle starts a stopped timer and stops a running one.
func (t *Timer) Toggle() {
	if t.running {
		t.Stop()
		return
	}

	t.Start()
}

// beginNextState advances to the following phase and refills the remaining
// time.
func (t *Timer) beginNextState() {
	t.state = t.state.Next(&t.breakCounter)
	t.remaining = Left(t.state.Duration())
}

// Poll accounts for the time elapsed since the previous poll. When the
// previous poll found the phase exhausted, Poll begins the next phase and
// sends a notification instead. A stopped timer only records the poll.
//
// The returned error wraps ErrInvariant or ErrNotify. In both cases the
// timer has already moved to the next phase.
func (t *Timer) Poll() error {
	now := t.clock.Now()

	defer func() {
		t.lastPoll = now
	}()

	if !t.running {
		return nil
	}

	if !t.remaining.IsExhausted() {
		t.remaining = t.remaining.Sub(now.Sub(t.lastPoll))
		return nil
	}

	from := t.state

	t.beginNextState()

	if t.state == interval.Uninitialized {
		return ErrInvariant.Fmt(from, t.state)
	}

	var err error

	if t.notifier != nil {
		err = t.notifier.Notify(
			notifySummary,
			fmt.Sprintf(notifyBody, t.state.Name()),
		)
		if err != nil {
			err = ErrNotify.Wrap(err)
		}
	}

	for _, fn := range t.onTransition {
		fn(from, t.state)
	}

	return err
}

// State returns the current phase.
func (t *Timer) State() interval.State {
	return t.state
}

// Remaining returns the time left in the current phase.
func (t *Timer) Remaining() Remaining {
	return t.remaining
}

// Running reports whether time is being consumed.
func (t *Timer) Running() bool {
	return t.running
}

// StartedAt returns when the timer was first started, or the zero time if
// it never was.
func (t *Timer) StartedAt() time.Time {
	return t.startedAt
}

// BreakCounter returns the position within the current break cycle.
func (t *Timer) BreakCounter() int {
	return t.breakCounter
}

// Snapshot returns a copy of the observable state.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		State:        t.state,
		Remaining:    t.remaining,
		BreakCounter: t.breakCounter,
		Running:      t.running,
	}
}
