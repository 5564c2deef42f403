package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVLANTargets(t *testing.T) {
	ids, err := VLANDefinition{}.Targets("2-4,20")

	assert.NoError(t, err)
	assert.Equal(t, []ID{2, 3, 4, 20}, ids)
}

func TestVLANTargetsOutOfDomain(t *testing.T) {
	_, err := VLANDefinition{}.Targets("4095")
	assert.Error(t, err)
}

func TestNTPOptionsTargets(t *testing.T) {
	ids, err := NTPOptionsDefinition{}.Targets("")

	assert.NoError(t, err)
	assert.Equal(t, []ID{NTPOptionsID}, ids)

	_, err = NTPOptionsDefinition{}.Targets("1-3")
	assert.Error(t, err)
}

func TestSchemaValidateUnknownAttribute(t *testing.T) {
	err := VLANDefinition{}.Schema().Validate(AttributeMap{"mtu": 9000})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	assert.Equal(t, "mtu", verr.Field)
}

func TestSchemaValidateEnum(t *testing.T) {
	schema := VLANDefinition{}.Schema()

	assert.NoError(t, schema.Validate(AttributeMap{VLANAdminState: "down"}))

	err := schema.Validate(AttributeMap{VLANAdminState: "disabled"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestSchemaValidateStratumBounds(t *testing.T) {
	schema := NTPOptionsDefinition{}.Schema()

	assert.NoError(t, schema.Validate(AttributeMap{NTPMaster: true, NTPStratum: 15}))
	assert.NoError(t, schema.Validate(AttributeMap{NTPMaster: true, NTPStratum: 1}))

	err := schema.Validate(AttributeMap{NTPMaster: true, NTPStratum: 16})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	assert.Equal(t, NTPStratum, verr.Field)
}

func TestSchemaValidateDependency(t *testing.T) {
	schema := NTPOptionsDefinition{}.Schema()

	err := schema.Validate(AttributeMap{NTPStratum: 8})

	var derr *DependencyError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DependencyError, got %v", err)
	}
	assert.Equal(t, NTPStratum, derr.Field)
	assert.Equal(t, NTPMaster, derr.Requires)
}

func TestSchemaValidateTypeMismatch(t *testing.T) {
	schema := NTPOptionsDefinition{}.Schema()

	var verr *ValidationError
	assert.True(t, errors.As(schema.Validate(AttributeMap{NTPMaster: "yes"}), &verr))
	assert.True(t, errors.As(schema.Validate(AttributeMap{NTPMaster: true, NTPStratum: "eight"}), &verr))
}

func TestAttributeMapClone(t *testing.T) {
	var nilMap AttributeMap
	assert.Nil(t, nilMap.Clone())

	m := AttributeMap{"a": 1}
	c := m.Clone()
	c["a"] = 2
	assert.Equal(t, 1, m["a"])
}

func TestFieldEqualNormalizesInts(t *testing.T) {
	f := Field{Name: "n", Type: IntField, Min: 1, Max: 100}

	assert.True(t, f.Equal(8, int64(8)))
	assert.True(t, f.Equal(float64(8), 8))
	assert.False(t, f.Equal(8, 9))
}
