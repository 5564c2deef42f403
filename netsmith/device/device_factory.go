package device

import (
	"errors"

	"github.com/netsmith-ops/netsmith/logger"
	"github.com/netsmith-ops/netsmith/netsmith/command"
	"github.com/netsmith-ops/netsmith/netsmith/guard"
	"github.com/netsmith-ops/netsmith/netsmith/reconciler"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
	"github.com/netsmith-ops/netsmith/netsmith/transport"
)

// NewDevice builds a Device and wires a reconciler for every supported
// resource kind: transport, synthesizer and guard set per kind.
func NewDevice(name, hostname string, options ...DeviceOption) (*Device, error) {
	if hostname == "" {
		return nil, errors.New("device: hostname is required")
	}

	d := &Device{
		Name:     name,
		Hostname: hostname,
		log:      logger.New(),
	}
	for _, option := range options {
		option(d)
	}

	runner := transport.NewSSHRunner(hostname, d.credentials, d.commandRate)
	runner.Log = d.log
	if d.dialer != nil {
		runner.Dialer = d.dialer
	}

	vlan, err := reconciler.New(
		resource.VLANDefinition{},
		command.VLANSynthesizer{},
		&transport.VLANTransport{Runner: runner},
		guard.VLANInvocationRules(),
		guard.VLANTargetRules(),
		d.log,
	)
	if err != nil {
		return nil, err
	}

	ntp, err := reconciler.New(
		resource.NTPOptionsDefinition{},
		command.NTPOptionsSynthesizer{},
		&transport.NTPOptionsTransport{Runner: runner},
		guard.NTPOptionsInvocationRules(),
		guard.NTPOptionsTargetRules(),
		d.log,
	)
	if err != nil {
		return nil, err
	}

	d.reconcilers = map[string]*reconciler.Reconciler{
		resource.VLANDefinition{}.Kind():       vlan,
		resource.NTPOptionsDefinition{}.Kind(): ntp,
	}
	return d, nil
}
