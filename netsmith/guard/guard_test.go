package guard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

func TestProtectedRemoval(t *testing.T) {
	rule := ProtectedRemoval{Protected: resource.ProtectedVLANID}

	err := rule.Check(resource.StateAbsent, []resource.ID{1, 2}, nil)

	var v *Violation
	if !errors.As(err, &v) {
		t.Fatalf("expected *Violation, got %v", err)
	}
	assert.Equal(t, "protected-identifier-removal", v.Rule)
}

func TestProtectedRemovalIgnoresPresent(t *testing.T) {
	rule := ProtectedRemoval{Protected: resource.ProtectedVLANID}

	assert.NoError(t, rule.Check(resource.StatePresent, []resource.ID{1}, nil))
	assert.NoError(t, rule.Check(resource.StateAbsent, []resource.ID{2, 3}, nil))
}

func TestSingleValuedAttribute(t *testing.T) {
	rule := SingleValuedAttribute{Field: resource.VLANName}
	attrs := resource.AttributeMap{resource.VLANName: "uplink"}

	err := rule.Check(resource.StatePresent, []resource.ID{2, 3}, attrs)

	var v *Violation
	if !errors.As(err, &v) {
		t.Fatalf("expected *Violation, got %v", err)
	}
	assert.Equal(t, "single-valued-attribute-on-multi-target", v.Rule)
}

func TestSingleValuedAttributeSingleTarget(t *testing.T) {
	rule := SingleValuedAttribute{Field: resource.VLANName}
	attrs := resource.AttributeMap{resource.VLANName: "uplink"}

	assert.NoError(t, rule.Check(resource.StatePresent, []resource.ID{2}, attrs))
	assert.NoError(t, rule.Check(resource.StatePresent, []resource.ID{2, 3}, resource.AttributeMap{}))
}

func TestAdminDownThresholdBoundary(t *testing.T) {
	rule := AdminDownThreshold{
		Field: resource.VLANAdminState,
		Down:  "down",
		Max:   resource.MaxAdminDownVLANID,
	}
	attrs := resource.AttributeMap{resource.VLANAdminState: "down"}

	// 1005 is the last identifier that accepts a shutdown; 1006 is not.
	assert.NoError(t, rule.Check(resource.StatePresent, 1005, attrs))

	err := rule.Check(resource.StatePresent, 1006, attrs)
	var v *Violation
	if !errors.As(err, &v) {
		t.Fatalf("expected *Violation, got %v", err)
	}
	assert.Equal(t, "admin-down-above-threshold", v.Rule)
}

func TestAdminDownThresholdIgnoresUp(t *testing.T) {
	rule := AdminDownThreshold{
		Field: resource.VLANAdminState,
		Down:  "down",
		Max:   resource.MaxAdminDownVLANID,
	}

	assert.NoError(t, rule.Check(resource.StatePresent, 2000, resource.AttributeMap{resource.VLANAdminState: "up"}))
	assert.NoError(t, rule.Check(resource.StatePresent, 2000, resource.AttributeMap{}))
}
