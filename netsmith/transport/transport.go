// Package transport carries device state in and command sequences out.
// It owns the SSH session to the device CLI and the parsing of show
// output into attribute maps; everything above it sees only the
// Transport interface.
package transport

import (
	"context"
	"fmt"

	"github.com/netsmith-ops/netsmith/netsmith/command"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

// Transport is what a reconciler needs from the device: the observed
// state of one resource instance and a way to submit commands.
type Transport interface {
	// FetchState returns the observed attributes for id, or a nil map
	// when the resource does not exist on the device.
	FetchState(ctx context.Context, id resource.ID) (resource.AttributeMap, error)

	// ApplyCommands submits one ordered command sequence. The sequence
	// is all-or-nothing from the caller's perspective.
	ApplyCommands(ctx context.Context, cmds []command.Command) error
}

// TransportError wraps a failure talking to the device together with
// the command text that was being attempted.
type TransportError struct {
	Command string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: command %q failed: %v", e.Command, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
