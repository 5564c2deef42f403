// Package guard holds resource-specific preconditions that forbid an
// operation regardless of what the diff would say. All guards run
// before any command is built; a violation never leaves partial
// commands behind.
package guard

import (
	"fmt"

	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

// Violation is a named precondition failure. Rule carries the stable
// rule name, Detail the offending identifier or value.
type Violation struct {
	Rule   string
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("guard %s: %s", v.Rule, v.Detail)
}

// InvocationRule checks input shared across all targeted identifiers.
// A violation aborts the invocation before any per-identifier work.
type InvocationRule interface {
	Name() string
	Check(state resource.State, targets []resource.ID, attrs resource.AttributeMap) error
}

// TargetRule checks a single identifier before it is diffed.
type TargetRule interface {
	Name() string
	Check(state resource.State, id resource.ID, attrs resource.AttributeMap) error
}

// ProtectedRemoval forbids removing a protected identifier, whatever
// the device currently holds.
type ProtectedRemoval struct {
	Protected resource.ID
}

func (ProtectedRemoval) Name() string { return "protected-identifier-removal" }

func (r ProtectedRemoval) Check(state resource.State, targets []resource.ID, _ resource.AttributeMap) error {
	if state != resource.StateAbsent {
		return nil
	}
	for _, id := range targets {
		if id == r.Protected {
			return &Violation{
				Rule:   r.Name(),
				Detail: fmt.Sprintf("identifier %s cannot be removed", id),
			}
		}
	}
	return nil
}

// SingleValuedAttribute forbids applying a single-valued attribute,
// such as a name, to more than one identifier at once.
type SingleValuedAttribute struct {
	Field string
}

func (SingleValuedAttribute) Name() string { return "single-valued-attribute-on-multi-target" }

func (r SingleValuedAttribute) Check(state resource.State, targets []resource.ID, attrs resource.AttributeMap) error {
	if state != resource.StatePresent || len(targets) <= 1 {
		return nil
	}
	if _, ok := attrs[r.Field]; ok {
		return &Violation{
			Rule:   r.Name(),
			Detail: fmt.Sprintf("attribute %q cannot be applied to %d identifiers", r.Field, len(targets)),
		}
	}
	return nil
}

// AdminDownThreshold forbids an administrative shutdown on identifiers
// above a platform threshold.
type AdminDownThreshold struct {
	Field string
	Down  string
	Max   resource.ID
}

func (AdminDownThreshold) Name() string { return "admin-down-above-threshold" }

func (r AdminDownThreshold) Check(_ resource.State, id resource.ID, attrs resource.AttributeMap) error {
	v, ok := attrs[r.Field]
	if !ok || v != r.Down {
		return nil
	}
	if id > r.Max {
		return &Violation{
			Rule:   r.Name(),
			Detail: fmt.Sprintf("%s=%s is not allowed for identifier %s (maximum %s)", r.Field, r.Down, id, r.Max),
		}
	}
	return nil
}

// VLANInvocationRules returns the invocation-wide guards for VLANs.
func VLANInvocationRules() []InvocationRule {
	return []InvocationRule{
		ProtectedRemoval{Protected: resource.ProtectedVLANID},
		SingleValuedAttribute{Field: resource.VLANName},
	}
}

// VLANTargetRules returns the per-identifier guards for VLANs.
func VLANTargetRules() []TargetRule {
	return []TargetRule{
		AdminDownThreshold{
			Field: resource.VLANAdminState,
			Down:  "down",
			Max:   resource.MaxAdminDownVLANID,
		},
	}
}

// NTPOptionsInvocationRules returns the invocation-wide guards for NTP
// options. Value bounds are enforced by the schema; there are no
// operation-level guards today.
func NTPOptionsInvocationRules() []InvocationRule { return nil }

// NTPOptionsTargetRules returns the per-identifier guards for NTP
// options.
func NTPOptionsTargetRules() []TargetRule { return nil }
