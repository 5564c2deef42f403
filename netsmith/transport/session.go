package transport

import (
	"context"
	"strings"

	"github.com/netsmith-ops/netsmith/netsmith/command"
)

// applySequence wraps cmds in a configuration session and submits the
// whole unit in one Run call, so the sequence is atomic per submission
// from the caller's point of view. Command content passes through
// untouched.
func applySequence(ctx context.Context, runner CommandRunner, cmds []command.Command) error {
	if len(cmds) == 0 {
		return nil
	}

	lines := make([]string, 0, len(cmds)+2)
	lines = append(lines, "configure terminal")
	for _, c := range cmds {
		lines = append(lines, string(c))
	}
	lines = append(lines, "end")

	script := strings.Join(lines, " ; ")
	if _, err := runner.Run(ctx, script); err != nil {
		return &TransportError{Command: script, Err: err}
	}
	return nil
}
