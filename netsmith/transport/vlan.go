package transport

import (
	"context"
	"strconv"
	"strings"

	"github.com/netsmith-ops/netsmith/netsmith/command"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

// VLANTransport reads and writes VLAN configuration through a device
// CLI session.
type VLANTransport struct {
	Runner CommandRunner
}

// FetchState queries one VLAN. A nil map means the VLAN is not
// configured on the device.
func (t *VLANTransport) FetchState(ctx context.Context, id resource.ID) (resource.AttributeMap, error) {
	show := "show vlan id " + id.String()
	out, err := t.Runner.Run(ctx, show)
	if err != nil {
		if notFound(out) {
			return nil, nil
		}
		return nil, &TransportError{Command: show, Err: err}
	}
	if notFound(out) {
		return nil, nil
	}
	return parseVLANTable(out, id), nil
}

// ApplyCommands submits cmds inside one configuration session.
func (t *VLANTransport) ApplyCommands(ctx context.Context, cmds []command.Command) error {
	return applySequence(ctx, t.Runner, cmds)
}

func notFound(out string) bool {
	return strings.Contains(strings.ToLower(out), "not found in current vlan database") ||
		strings.Contains(strings.ToLower(out), "vlan not found")
}

// parseVLANTable extracts the row for id from "show vlan id" output.
// The row layout is: <id> <name> <status> [ports...], where status is
// one of active, suspended, act/lshut, sus/lshut.
func parseVLANTable(out string, id resource.ID) resource.AttributeMap {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		rowID, err := strconv.Atoi(fields[0])
		if err != nil || resource.ID(rowID) != id {
			continue
		}

		attrs := resource.AttributeMap{resource.VLANName: fields[1]}
		switch fields[2] {
		case "active":
			attrs[resource.VLANState] = "active"
			attrs[resource.VLANAdminState] = "up"
		case "suspended":
			attrs[resource.VLANState] = "suspend"
			attrs[resource.VLANAdminState] = "up"
		case "act/lshut":
			attrs[resource.VLANState] = "active"
			attrs[resource.VLANAdminState] = "down"
		case "sus/lshut":
			attrs[resource.VLANState] = "suspend"
			attrs[resource.VLANAdminState] = "down"
		}
		return attrs
	}
	return nil
}
