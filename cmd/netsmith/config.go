package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netsmith-ops/netsmith/netsmith/reconciler"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

// SpecFile is the desired-state document. Attributes are declared as
// typed fields here, at the boundary; free-form attribute maps are not
// accepted.
type SpecFile struct {
	Devices map[string]DeviceSpec `yaml:"devices"`
}

// DeviceSpec declares the desired resources of one device.
type DeviceSpec struct {
	VLANs      []VLANSpec      `yaml:"vlans"`
	NTPOptions *NTPOptionsSpec `yaml:"ntp_options"`
}

// VLANSpec declares desired state for one VLAN range expression.
type VLANSpec struct {
	IDs        string  `yaml:"ids"`
	State      string  `yaml:"state"`
	Name       *string `yaml:"name"`
	VLANState  *string `yaml:"vlan_state"`
	AdminState *string `yaml:"admin_state"`
}

// NTPOptionsSpec declares desired device-global NTP options.
type NTPOptionsSpec struct {
	State   string `yaml:"state"`
	Master  *bool  `yaml:"master"`
	Stratum *int   `yaml:"stratum"`
	Logging *bool  `yaml:"logging"`
}

// LoadSpec reads and parses the desired-state file.
func LoadSpec(path string) (*SpecFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec SpecFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &spec, nil
}

// namedRequest pairs a resource kind with the request targeting it.
type namedRequest struct {
	Kind    string
	Request reconciler.Request
}

// Requests converts a device's declarations into reconciler requests.
// Omitted optional fields stay out of the attribute map entirely so the
// reconciler leaves them untouched.
func (d DeviceSpec) Requests(dryRun bool) []namedRequest {
	var reqs []namedRequest

	for _, v := range d.VLANs {
		attrs := resource.AttributeMap{}
		if v.Name != nil {
			attrs[resource.VLANName] = *v.Name
		}
		if v.VLANState != nil {
			attrs[resource.VLANState] = *v.VLANState
		}
		if v.AdminState != nil {
			attrs[resource.VLANAdminState] = *v.AdminState
		}
		reqs = append(reqs, namedRequest{
			Kind: resource.VLANDefinition{}.Kind(),
			Request: reconciler.Request{
				IDs:        v.IDs,
				Attributes: attrs,
				State:      stateOrPresent(v.State),
				DryRun:     dryRun,
			},
		})
	}

	if d.NTPOptions != nil {
		attrs := resource.AttributeMap{}
		if d.NTPOptions.Master != nil {
			attrs[resource.NTPMaster] = *d.NTPOptions.Master
		}
		if d.NTPOptions.Stratum != nil {
			attrs[resource.NTPStratum] = *d.NTPOptions.Stratum
		}
		if d.NTPOptions.Logging != nil {
			attrs[resource.NTPLogging] = *d.NTPOptions.Logging
		}
		reqs = append(reqs, namedRequest{
			Kind: resource.NTPOptionsDefinition{}.Kind(),
			Request: reconciler.Request{
				Attributes: attrs,
				State:      stateOrPresent(d.NTPOptions.State),
				DryRun:     dryRun,
			},
		})
	}
	return reqs
}

func stateOrPresent(s string) resource.State {
	if s == "" {
		return resource.StatePresent
	}
	return resource.State(s)
}
