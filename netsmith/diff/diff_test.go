package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

func TestComputeAgainstMissingResource(t *testing.T) {
	schema := resource.VLANDefinition{}.Schema()
	desired := resource.AttributeMap{
		resource.VLANName:       "uplink",
		resource.VLANAdminState: "up",
	}

	delta := Compute(schema, desired, nil, resource.StatePresent)

	// Empty observed map means the resource does not exist yet: the
	// full desired map is the delta, in schema field order.
	assert.Equal(t, Delta{
		{Key: resource.VLANName, Value: "uplink"},
		{Key: resource.VLANAdminState, Value: "up"},
	}, delta)
}

func TestComputeOnlyChangedKeys(t *testing.T) {
	schema := resource.VLANDefinition{}.Schema()
	desired := resource.AttributeMap{
		resource.VLANName:       "uplink",
		resource.VLANState:      "active",
		resource.VLANAdminState: "down",
	}
	observed := resource.AttributeMap{
		resource.VLANName:       "uplink",
		resource.VLANState:      "active",
		resource.VLANAdminState: "up",
	}

	delta := Compute(schema, desired, observed, resource.StatePresent)

	assert.Equal(t, Delta{{Key: resource.VLANAdminState, Value: "down"}}, delta)
}

func TestComputeOmittedKeysUntouched(t *testing.T) {
	schema := resource.VLANDefinition{}.Schema()
	desired := resource.AttributeMap{resource.VLANState: "suspend"}
	observed := resource.AttributeMap{
		resource.VLANName:  "legacy",
		resource.VLANState: "active",
	}

	delta := Compute(schema, desired, observed, resource.StatePresent)

	// The observed name differs from nothing: it was not proposed, so
	// it must not be reset.
	assert.Equal(t, Delta{{Key: resource.VLANState, Value: "suspend"}}, delta)
}

func TestComputeIdempotent(t *testing.T) {
	schema := resource.VLANDefinition{}.Schema()
	attrs := resource.AttributeMap{
		resource.VLANName:       "uplink",
		resource.VLANState:      "active",
		resource.VLANAdminState: "up",
	}

	delta := Compute(schema, attrs, attrs.Clone(), resource.StatePresent)

	assert.True(t, delta.Empty())
}

func TestComputeInvertsBooleansUnderAbsent(t *testing.T) {
	schema := resource.NTPOptionsDefinition{}.Schema()
	desired := resource.AttributeMap{resource.NTPMaster: true}
	observed := resource.AttributeMap{resource.NTPMaster: true}

	delta := Compute(schema, desired, observed, resource.StateAbsent)

	// Removing an enabling option means actively disabling it, not a
	// missing-key no-op.
	assert.Equal(t, Delta{{Key: resource.NTPMaster, Value: false}}, delta)
}

func TestComputeAbsentAlreadyDisabled(t *testing.T) {
	schema := resource.NTPOptionsDefinition{}.Schema()
	desired := resource.AttributeMap{resource.NTPMaster: true}
	observed := resource.AttributeMap{resource.NTPMaster: false}

	delta := Compute(schema, desired, observed, resource.StateAbsent)

	assert.True(t, delta.Empty())
}

func TestComputeClearsDependentWhenPrimaryDisabled(t *testing.T) {
	schema := resource.NTPOptionsDefinition{}.Schema()
	desired := resource.AttributeMap{
		resource.NTPMaster:  true,
		resource.NTPStratum: 8,
	}
	observed := resource.AttributeMap{
		resource.NTPMaster:  true,
		resource.NTPStratum: 8,
	}

	delta := Compute(schema, desired, observed, resource.StateAbsent)

	// master flips to false, so the stratum value is cleared from the
	// delta rather than compared.
	assert.Equal(t, Delta{{Key: resource.NTPMaster, Value: false}}, delta)
}

func TestComputeNormalizesIntegerShapes(t *testing.T) {
	schema := resource.NTPOptionsDefinition{}.Schema()
	desired := resource.AttributeMap{
		resource.NTPMaster:  true,
		resource.NTPStratum: 8,
	}
	observed := resource.AttributeMap{
		resource.NTPMaster:  true,
		resource.NTPStratum: int64(8),
	}

	delta := Compute(schema, desired, observed, resource.StatePresent)

	assert.True(t, delta.Empty())
}

func TestDeltaGet(t *testing.T) {
	d := Delta{{Key: "a", Value: 1}}

	v, ok := d.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = d.Get("b")
	assert.False(t, ok)
}
