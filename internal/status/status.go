// Package status renders the status bar line and the status file read by
// `pomod status`.
package status

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/pomod/internal/apperr"
	"github.com/ayoisaiah/pomod/internal/interval"
	"github.com/ayoisaiah/pomod/internal/osutil"
	"github.com/ayoisaiah/pomod/timer"
)

var errReadStatus = &apperr.Error{
	Message: "unable to read status file",
}

// Glyphs overrides the icon shown for a phase.
type Glyphs map[interval.State]string

// Glyph returns the icon for s, falling back to the built-in one.
func (g Glyphs) Glyph(s interval.State) string {
	if glyph, ok := g[s]; ok {
		return glyph
	}

	return s.Glyph()
}

// Status is the state of the daemon as of its last tick.
type Status struct {
	UpdatedAt        time.Time `json:"updated_at"`
	State            string    `json:"state"`
	Glyph            string    `json:"glyph"`
	RemainingSeconds int       `json:"remaining_seconds"`
	BreakCounter     int       `json:"break_counter"`
	Running          bool      `json:"running"`
}

// Clock formats d as MM:SS. Minutes are not wrapped into hours.
func Clock(d time.Duration) string {
	total := int(d / time.Second)

	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Line formats the status bar line for a phase: its glyph followed by the
// time left. An exhausted phase reads 00:00.
func Line(glyph string, r timer.Remaining) string {
	return glyph + " " + Clock(r.Duration())
}

// New builds a Status from a timer snapshot.
func New(snap timer.Snapshot, glyph string, now time.Time) Status {
	return Status{
		UpdatedAt:        now,
		State:            snap.State.String(),
		Glyph:            glyph,
		RemainingSeconds: int(snap.Remaining.Duration() / time.Second),
		BreakCounter:     snap.BreakCounter,
		Running:          snap.Running,
	}
}

// Remaining returns the time left as of UpdatedAt.
func (s Status) Remaining() time.Duration {
	return time.Duration(s.RemainingSeconds) * time.Second
}

// Phase returns the parsed phase of the status.
func (s Status) Phase() (interval.State, error) {
	return interval.Parse(s.State)
}

// WriteFile stores s at path. The file is replaced atomically so that
// readers never observe a partial write.
func WriteFile(path string, s Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)

	if err = os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(b); err != nil {
		_ = f.Close()
		return err
	}

	if err = f.Close(); err != nil {
		return err
	}

	err = os.Rename(f.Name(), path)

	return err
}

// ReadFile loads the status stored at path.
func ReadFile(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadStatus.Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errReadStatus.Wrap(err)
	}

	return &s, nil
}
