package timer

import "github.com/ayoisaiah/pomod/internal/apperr"

var (
	// ErrInvariant is returned when a transition lands on a state the cycle
	// must never return to. It indicates a logic defect.
	ErrInvariant = &apperr.Error{
		Message: "invalid transition from %s to %s",
	}

	// ErrNotify is returned by Poll when the notification for a transition
	// could not be delivered. The transition itself has already happened.
	ErrNotify = &apperr.Error{
		Message: "unable to deliver notification",
	}
)
