package timer

import "time"

// Remaining is the time left in the current phase. A phase is either Left
// with some duration or Exhausted, in which case the next poll begins the
// following phase.
type Remaining struct {
	left      time.Duration
	exhausted bool
}

// Left returns a Remaining holding d.
func Left(d time.Duration) Remaining {
	return Remaining{left: d}
}

// Exhausted returns a Remaining for a phase that has run out.
func Exhausted() Remaining {
	return Remaining{exhausted: true}
}

// IsExhausted reports whether the phase has run out.
func (r Remaining) IsExhausted() bool {
	return r.exhausted
}

// Duration returns the time left, or zero when exhausted.
func (r Remaining) Duration() time.Duration {
	if r.exhausted {
		return 0
	}

	return r.left
}

// Sub subtracts elapsed from r. The result is Exhausted once elapsed reaches
// the time left; it never goes negative.
func (r Remaining) Sub(elapsed time.Duration) Remaining {
	if elapsed < 0 {
		elapsed = 0
	}

	if r.exhausted || elapsed >= r.left {
		return Exhausted()
	}

	return Left(r.left - elapsed)
}

func (r Remaining) String() string {
	if r.exhausted {
		return "exhausted"
	}

	return r.left.String()
}
