// Package notify delivers desktop notifications when a phase ends.
package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/pomod/internal/apperr"
)

var errDelivery = &apperr.Error{
	Message: "unable to display notification",
}

// Func adapts an ordinary function to the timer's Notifier interface.
type Func func(summary, body string) error

// Notify calls f.
func (f Func) Notify(summary, body string) error {
	return f(summary, body)
}

// Discard drops every notification. It is used when notifications are
// disabled.
var Discard = Func(func(_, _ string) error {
	return nil
})

// Desktop shows notifications through the platform notification service
// and optionally plays a sound alongside them.
type Desktop struct {
	send   func(title, message, appIcon string) error
	sound  *Sound
	logger *slog.Logger
	icon   string
}

// DesktopOption configures a Desktop notifier.
type DesktopOption func(*Desktop)

// WithIcon sets the path to the icon shown in notifications.
func WithIcon(path string) DesktopOption {
	return func(d *Desktop) {
		d.icon = path
	}
}

// WithSound plays s after each notification.
func WithSound(s *Sound) DesktopOption {
	return func(d *Desktop) {
		d.sound = s
	}
}

// WithLogger sets the logger used to report sound playback problems.
func WithLogger(l *slog.Logger) DesktopOption {
	return func(d *Desktop) {
		d.logger = l
	}
}

// NewDesktop returns a notifier backed by beeep.
func NewDesktop(opts ...DesktopOption) *Desktop {
	d := &Desktop{
		send:   beeep.Notify,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Notify displays a notification with the given summary and body.
func (d *Desktop) Notify(summary, body string) error {
	err := d.send(summary, body, d.icon)

	if d.sound != nil {
		if perr := d.sound.Play(); perr != nil {
			d.logger.Warn("unable to play sound", slog.Any("error", perr))
		}
	}

	if err != nil {
		return errDelivery.Wrap(err)
	}

	return nil
}
