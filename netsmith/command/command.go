// Package command turns attribute deltas into ordered device command
// sequences. Commands are opaque past this point; nothing downstream
// inspects their content.
package command

import (
	"github.com/netsmith-ops/netsmith/netsmith/diff"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

// Command is one configuration line understood by the device CLI.
type Command string

// Synthesizer converts one identifier's delta into the exact command
// sequence implementing it. exists reports whether the identifier is
// already configured on the device; creating a missing identifier
// emits its scoping command even when no attributes were proposed.
// For an existing identifier an empty delta yields an empty sequence,
// not a command with no effect.
type Synthesizer interface {
	Synthesize(id resource.ID, state resource.State, delta diff.Delta, exists bool) []Command
}

// Concatenate joins per-identifier sequences into one submission unit.
// Identifier order follows order (ascending, as classified); each
// identifier's internal command order is preserved.
func Concatenate(order []resource.ID, perID map[resource.ID][]Command) []Command {
	var out []Command
	for _, id := range order {
		out = append(out, perID[id]...)
	}
	return out
}
