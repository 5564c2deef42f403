package transport

import (
	"context"
	"strconv"
	"strings"

	"github.com/netsmith-ops/netsmith/netsmith/command"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

// NTPOptionsTransport reads and writes device-global NTP options.
type NTPOptionsTransport struct {
	Runner CommandRunner
}

// FetchState reads the NTP lines from the running configuration. The
// singleton always exists; options the config does not mention report
// as disabled.
func (t *NTPOptionsTransport) FetchState(ctx context.Context, _ resource.ID) (resource.AttributeMap, error) {
	show := "show running-config ntp"
	out, err := t.Runner.Run(ctx, show)
	if err != nil {
		return nil, &TransportError{Command: show, Err: err}
	}

	attrs := resource.AttributeMap{
		resource.NTPMaster:  false,
		resource.NTPLogging: false,
	}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "ntp" {
			continue
		}
		switch fields[1] {
		case "master":
			attrs[resource.NTPMaster] = true
			if len(fields) >= 3 {
				if stratum, err := strconv.Atoi(fields[2]); err == nil {
					attrs[resource.NTPStratum] = stratum
				}
			}
		case "logging":
			attrs[resource.NTPLogging] = true
		}
	}
	return attrs, nil
}

// ApplyCommands submits cmds inside one configuration session.
func (t *NTPOptionsTransport) ApplyCommands(ctx context.Context, cmds []command.Command) error {
	return applySequence(ctx, t.Runner, cmds)
}
