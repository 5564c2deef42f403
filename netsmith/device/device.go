// Package device wires per-resource reconcilers for one network device
// behind a single handle.
package device

import (
	"context"
	"fmt"

	"github.com/netsmith-ops/netsmith/logger"
	"github.com/netsmith-ops/netsmith/netsmith/reconciler"
	"github.com/netsmith-ops/netsmith/netsmith/transport"
)

// Device is one reachable network device and the reconcilers for every
// resource kind it supports.
type Device struct {
	Name     string
	Hostname string

	credentials transport.Credentials
	dialer      transport.SSHDialer
	commandRate float64
	log         logger.Logger

	reconcilers map[string]*reconciler.Reconciler
}

// Reconcile routes a request to the reconciler for kind.
func (d *Device) Reconcile(ctx context.Context, kind string, req reconciler.Request) (*reconciler.Report, error) {
	r, ok := d.reconcilers[kind]
	if !ok {
		return nil, fmt.Errorf("device %s: unsupported resource kind %q", d.Name, kind)
	}
	return r.Reconcile(ctx, req)
}

// Kinds lists the resource kinds this device supports.
func (d *Device) Kinds() []string {
	kinds := make([]string, 0, len(d.reconcilers))
	for k := range d.reconcilers {
		kinds = append(kinds, k)
	}
	return kinds
}
