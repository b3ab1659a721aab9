// Package daemon runs the host loop: it waits for control events, advances
// the timer, and prints the status line on every tick.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ayoisaiah/pomod/internal/apperr"
	"github.com/ayoisaiah/pomod/internal/control"
	"github.com/ayoisaiah/pomod/internal/hook"
	"github.com/ayoisaiah/pomod/internal/interval"
	"github.com/ayoisaiah/pomod/internal/status"
	"github.com/ayoisaiah/pomod/timer"
)

// DefaultTick is the longest the loop waits for a control event before it
// polls the timer and prints the status line again.
const DefaultTick = 500 * time.Millisecond

var errWriteStatus = &apperr.Error{
	Message: "unable to write status line",
}

// Daemon owns the timer and drives it from a single goroutine.
type Daemon struct {
	inbox       control.Inbox
	out         io.Writer
	clock       timer.Clock
	logger      *slog.Logger
	timer       *timer.Timer
	cmd         *hook.Command
	glyphs      status.Glyphs
	statusPath  string
	timerOpts   []timer.Option
	transitions []interval.State
	hooks       sync.WaitGroup
	tick        time.Duration
	strict      bool
}

// Option configures a Daemon.
type Option func(*Daemon)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Daemon) {
		d.logger = l
	}
}

// WithClock sets the clock shared by the timer and the status file.
func WithClock(c timer.Clock) Option {
	return func(d *Daemon) {
		d.clock = c
	}
}

// WithTick sets how long each iteration waits for a control event.
func WithTick(tick time.Duration) Option {
	return func(d *Daemon) {
		d.tick = tick
	}
}

// WithGlyphs overrides the icons printed in the status line.
func WithGlyphs(g status.Glyphs) Option {
	return func(d *Daemon) {
		d.glyphs = g
	}
}

// WithStatusFile mirrors every status line into a JSON file at path.
func WithStatusFile(path string) Option {
	return func(d *Daemon) {
		d.statusPath = path
	}
}

// WithSessionCmd runs cmd after every phase transition.
func WithSessionCmd(cmd *hook.Command) Option {
	return func(d *Daemon) {
		d.cmd = cmd
	}
}

// WithNotifier sets where transition notifications go. When strict is
// true, a notification that cannot be delivered stops the daemon;
// otherwise the failure is logged and the loop carries on.
func WithNotifier(n timer.Notifier, strict bool) Option {
	return func(d *Daemon) {
		d.timerOpts = append(d.timerOpts, timer.WithNotifier(n))
		d.strict = strict
	}
}

// New creates a daemon reading events from inbox and writing status lines
// to out.
func New(inbox control.Inbox, out io.Writer, opts ...Option) *Daemon {
	d := &Daemon{
		inbox:  inbox,
		out:    out,
		clock:  timer.SystemClock{},
		logger: slog.New(slog.DiscardHandler),
		tick:   DefaultTick,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.timer = d.newTimer()

	return d
}

func (d *Daemon) newTimer() *timer.Timer {
	opts := append(
		[]timer.Option{
			timer.WithClock(d.clock),
			timer.OnTransition(d.transitioned),
		},
		d.timerOpts...,
	)

	return timer.New(opts...)
}

// Timer returns the timer currently owned by the daemon. A reset replaces
// it.
func (d *Daemon) Timer() *timer.Timer {
	return d.timer
}

// Run ticks until ctx is done or a fatal error occurs. Cancellation is a
// clean exit.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.InfoContext(
		ctx,
		"daemon started",
		slog.Duration("tick", d.tick),
		slog.String("session_cmd", d.cmd.String()),
	)

	defer d.Close()

	for {
		err := d.Tick(ctx)
		if err == nil {
			continue
		}

		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			d.logger.Info("daemon stopped")
			return nil
		}

		d.logger.Error("daemon failed", slog.Any("error", err))

		return err
	}
}

// Tick runs a single iteration of the loop.
func (d *Daemon) Tick(ctx context.Context) error {
	e, ok, err := d.inbox.Wait(ctx, d.tick)
	if err != nil {
		return err
	}

	if ok {
		if err = d.apply(e); err != nil {
			return err
		}
	}

	if err = d.poll(); err != nil {
		return err
	}

	d.runHooks(ctx)

	return d.emit()
}

// Close waits for running session commands and removes the status file.
func (d *Daemon) Close() {
	d.hooks.Wait()

	if d.statusPath != "" {
		_ = os.Remove(d.statusPath)
	}
}

func (d *Daemon) apply(e control.Event) error {
	switch e {
	case control.Toggle:
		d.timer.Toggle()
	case control.Reset:
		d.timer = d.newTimer()
		d.transitions = nil
	default:
		return control.ErrUnexpectedEvent.Fmt(e)
	}

	d.logger.Info(
		"control event",
		slog.String("event", e.String()),
		slog.Bool("running", d.timer.Running()),
		slog.String("state", d.timer.State().String()),
	)

	return nil
}

func (d *Daemon) poll() error {
	err := d.timer.Poll()
	if err == nil {
		return nil
	}

	if errors.Is(err, timer.ErrNotify) && !d.strict {
		d.logger.Warn("notification failed", slog.Any("error", err))
		return nil
	}

	return err
}

func (d *Daemon) transitioned(from, to interval.State) {
	d.logger.Info(
		"phase changed",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int("break_counter", d.timer.BreakCounter()),
	)

	d.transitions = append(d.transitions, to)
}

// runHooks starts the session command for each transition of the last
// poll. Commands run in the background so a slow one cannot stall the
// status line.
func (d *Daemon) runHooks(ctx context.Context) {
	transitions := d.transitions
	d.transitions = nil

	if d.cmd == nil {
		return
	}

	for _, next := range transitions {
		d.hooks.Add(1)

		go func() {
			defer d.hooks.Done()

			if err := d.cmd.Run(ctx, next); err != nil {
				d.logger.Warn("session command failed", slog.Any("error", err))
			}
		}()
	}
}

func (d *Daemon) emit() error {
	snap := d.timer.Snapshot()
	glyph := d.glyphs.Glyph(snap.State)

	_, err := fmt.Fprintln(d.out, status.Line(glyph, snap.Remaining))
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	if d.statusPath == "" {
		return nil
	}

	err = status.WriteFile(d.statusPath, status.New(snap, glyph, d.clock.Now()))
	if err != nil {
		d.logger.Warn("unable to write status file", slog.Any("error", err))
	}

	return nil
}
