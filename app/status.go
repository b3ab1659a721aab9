package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomod/internal/config"
	"github.com/ayoisaiah/pomod/internal/interval"
	"github.com/ayoisaiah/pomod/internal/pathutil"
	"github.com/ayoisaiah/pomod/internal/pidfile"
	"github.com/ayoisaiah/pomod/internal/status"
	"github.com/ayoisaiah/pomod/internal/ui"
)

// statusAction handles the status command and prints the status of the
// running daemon. Nothing is printed when no daemon is running.
func statusAction(ctx *cli.Context) error {
	paths, err := pathutil.New()
	if err != nil {
		return err
	}

	if _, err = pidfile.Read(paths.PIDFilePath()); err != nil {
		if errors.Is(err, pidfile.ErrNotRunning) {
			return nil
		}

		return err
	}

	s, err := status.ReadFile(paths.StatusFilePath())
	if err != nil {
		// the daemon has not completed its first tick yet
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	return printStatus(config.Stdout, s, time.Now())
}

// printStatus writes a styled, human-readable version of s. The time left
// is adjusted for the time since the daemon last wrote the file.
func printStatus(w io.Writer, s *status.Status, now time.Time) error {
	phase, err := s.Phase()
	if err != nil {
		return err
	}

	remaining := s.Remaining()

	if s.Running {
		remaining -= now.Sub(s.UpdatedAt)
		remaining = max(remaining, 0)
	}

	label := phase.Name()
	if label == "" {
		label = "not started"
	}

	text := fmt.Sprintf(
		"%s %s %s",
		s.Glyph,
		ui.Render(ui.PhaseStyle(phase), "["+label+"]"),
		ui.Bold(status.Clock(remaining)),
	)

	if phase != interval.Uninitialized {
		text += " " + ui.Dim(
			fmt.Sprintf("%d/%d", s.BreakCounter, interval.CycleLength),
		)
	}

	if !s.Running {
		text += " " + ui.Dim("(paused)")
	}

	_, err = fmt.Fprintln(w, text)

	return err
}
