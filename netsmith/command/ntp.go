package command

import (
	"fmt"

	"github.com/netsmith-ops/netsmith/netsmith/diff"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

// NTPOptionsSynthesizer builds NTP option sequences. NTP options are
// device-global, so there is no scoping command. Disabling is always
// explicit ("no ntp master"); the delta already carries the inverted
// booleans for absent operations.
type NTPOptionsSynthesizer struct{}

func (NTPOptionsSynthesizer) Synthesize(_ resource.ID, _ resource.State, delta diff.Delta, _ bool) []Command {
	var cmds []Command

	master, hasMaster := delta.Get(resource.NTPMaster)
	stratum, hasStratum := delta.Get(resource.NTPStratum)

	switch {
	case hasMaster && master == false:
		cmds = append(cmds, Command("no ntp master"))
	case hasMaster || hasStratum:
		if hasStratum {
			cmds = append(cmds, Command(fmt.Sprintf("ntp master %v", stratum)))
		} else {
			cmds = append(cmds, Command("ntp master"))
		}
	}

	if logging, ok := delta.Get(resource.NTPLogging); ok {
		if logging == true {
			cmds = append(cmds, Command("ntp logging"))
		} else {
			cmds = append(cmds, Command("no ntp logging"))
		}
	}
	return cmds
}
