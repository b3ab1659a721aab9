// Package hook runs the user's session command after each phase transition.
package hook

import (
	"context"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomod/internal/apperr"
	"github.com/ayoisaiah/pomod/internal/interval"
)

const envState = "POMOD_STATE"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse session command",
	}

	errRunCmd = &apperr.Error{
		Message: "session command %q failed",
	}
)

// Command is a parsed session command.
type Command struct {
	name string
	args []string
	raw  string
}

// Parse splits cmd using shell quoting rules. An empty cmd yields a nil
// Command, which is valid and does nothing when run.
func Parse(cmd string) (*Command, error) {
	if cmd == "" {
		return nil, nil
	}

	words, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	if len(words) == 0 {
		return nil, nil
	}

	return &Command{
		name: words[0],
		args: words[1:],
		raw:  cmd,
	}, nil
}

// Run executes the command for a transition into next and waits for it to
// exit. The new phase is exported as POMOD_STATE.
func (c *Command) Run(ctx context.Context, next interval.State) error {
	if c == nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Env = append(os.Environ(), envState+"="+next.String())

	if err := cmd.Run(); err != nil {
		return errRunCmd.Fmt(c.raw).Wrap(err)
	}

	return nil
}

func (c *Command) String() string {
	if c == nil {
		return ""
	}

	return c.raw
}
