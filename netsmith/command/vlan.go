package command

import (
	"fmt"

	"github.com/netsmith-ops/netsmith/netsmith/diff"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

// VLANSynthesizer builds VLAN configuration sequences. The scoping
// command ("vlan N") always precedes attribute commands; reordering
// would change device semantics.
type VLANSynthesizer struct{}

func (VLANSynthesizer) Synthesize(id resource.ID, state resource.State, delta diff.Delta, exists bool) []Command {
	if state == resource.StateAbsent {
		return []Command{Command(fmt.Sprintf("no vlan %s", id))}
	}
	if exists && delta.Empty() {
		return nil
	}

	cmds := []Command{Command(fmt.Sprintf("vlan %s", id))}
	for _, c := range delta {
		switch c.Key {
		case resource.VLANName:
			cmds = append(cmds, Command(fmt.Sprintf("name %v", c.Value)))
		case resource.VLANState:
			cmds = append(cmds, Command(fmt.Sprintf("state %v", c.Value)))
		case resource.VLANAdminState:
			if c.Value == "down" {
				cmds = append(cmds, Command("shutdown"))
			} else {
				cmds = append(cmds, Command("no shutdown"))
			}
		}
	}
	return cmds
}
