// Package interval defines the phases of a Pomodoro cycle and the
// transitions between them.
package interval

import (
	"time"

	"github.com/ayoisaiah/pomod/internal/apperr"
)

// State is the phase of the Pomodoro cycle that is currently active.
type State int

const (
	// Uninitialized is the placeholder before the timer is first started.
	Uninitialized State = iota
	Work
	ShortBreak
	LongBreak
)

// CycleLength is the number of work intervals in a break cycle. The break
// after the last work interval of a cycle is a long one.
const CycleLength = 4

const (
	workDuration       = 25 * time.Minute
	shortBreakDuration = 5 * time.Minute
	longBreakDuration  = 30 * time.Minute
)

var errUnknownState = &apperr.Error{
	Message: "unknown interval state: %q",
}

// States lists every variant in declaration order.
var States = []State{Uninitialized, Work, ShortBreak, LongBreak}

// Duration returns the fixed length of the phase.
func (s State) Duration() time.Duration {
	switch s {
	case ShortBreak:
		return shortBreakDuration
	case LongBreak:
		return longBreakDuration
	default:
		return workDuration
	}
}

// Glyph returns the icon shown in front of the countdown. The icons live in
// the private use area and render with a Nerd Font.
func (s State) Glyph() string {
	switch s {
	case Work:
		return "\ue003"
	case ShortBreak:
		return "\ue005"
	case LongBreak:
		return "\ue006"
	default:
		return "\ue002"
	}
}

// Name returns the human-readable phase name used in notifications.
// Uninitialized has no name.
func (s State) Name() string {
	switch s {
	case Work:
		return "pomodoro"
	case ShortBreak:
		return "short break"
	case LongBreak:
		return "long break"
	default:
		return ""
	}
}

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Work:
		return "work"
	case ShortBreak:
		return "short_break"
	case LongBreak:
		return "long_break"
	default:
		return "unknown"
	}
}

// Next returns the phase that follows s. Leaving Work advances the break
// counter modulo CycleLength; the break is long when the counter was on the
// last slot of the cycle.
func (s State) Next(breakCounter *int) State {
	switch s {
	case Work:
		next := ShortBreak
		if *breakCounter >= CycleLength-1 {
			next = LongBreak
		}

		*breakCounter = (*breakCounter + 1) % CycleLength

		return next
	default:
		return Work
	}
}

// Parse converts the output of String back into a State.
func Parse(name string) (State, error) {
	for _, s := range States {
		if s.String() == name {
			return s, nil
		}
	}

	return Uninitialized, errUnknownState.Fmt(name)
}
