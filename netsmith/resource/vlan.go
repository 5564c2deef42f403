package resource

import "github.com/netsmith-ops/netsmith/netsmith/rangeexpr"

// VLAN identifier domain and platform limits.
const (
	MinVLANID = 1
	MaxVLANID = 4094

	// ProtectedVLANID is the default VLAN; the device refuses to delete
	// it and so do we, before any command is built.
	ProtectedVLANID = 1

	// MaxAdminDownVLANID is the highest VLAN that accepts an
	// administrative shutdown. Extended-range VLANs above it cannot be
	// shut down.
	MaxAdminDownVLANID = 1005
)

// VLAN attribute names.
const (
	VLANName       = "name"
	VLANState      = "vlan_state"
	VLANAdminState = "admin_state"
)

var vlanSchema = Schema{
	Fields: []Field{
		{Name: VLANName, Type: StringField, SingleValued: true},
		{Name: VLANState, Type: EnumField, Enum: []string{"active", "suspend"}},
		{Name: VLANAdminState, Type: EnumField, Enum: []string{"up", "down"}},
	},
}

// VLANDefinition describes layer-2 VLANs keyed by tag.
type VLANDefinition struct{}

func (VLANDefinition) Kind() string { return "vlan" }

func (VLANDefinition) Schema() Schema { return vlanSchema }

// Targets expands a VLAN range expression such as "2-10,20,50-60".
func (VLANDefinition) Targets(expr string) ([]ID, error) {
	values, err := rangeexpr.Parse(expr, MinVLANID, MaxVLANID)
	if err != nil {
		return nil, err
	}
	ids := make([]ID, len(values))
	for i, v := range values {
		ids[i] = ID(v)
	}
	return ids, nil
}
