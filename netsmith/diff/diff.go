// Package diff computes the minimal attribute-level change set between
// a desired and an observed attribute map.
package diff

import "github.com/netsmith-ops/netsmith/netsmith/resource"

// Change is one attribute that must move to a new value.
type Change struct {
	Key   string
	Value interface{}
}

// Delta is the ordered change set for one resource instance. Order
// follows the schema's field order so command synthesis stays
// deterministic. An empty delta means the device already matches.
type Delta []Change

// Empty reports whether no change is required.
func (d Delta) Empty() bool { return len(d) == 0 }

// Get returns the desired value for key, if the delta carries it.
func (d Delta) Get(key string) (interface{}, bool) {
	for _, c := range d {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

// Compute diffs desired against observed, key by key in schema order.
// Only keys present in desired participate; omitted keys are left
// untouched, never reset. An empty observed map stands for a resource
// that does not exist yet, so the whole desired map becomes the delta.
//
// Under state=absent every boolean desired value is flipped before
// differencing: removing a boolean-enabling option is expressed to the
// device as explicitly disabling it, not as deleting a record. When a
// boolean field lands false, any field depending on it is cleared from
// the delta instead of compared.
func Compute(schema resource.Schema, desired, observed resource.AttributeMap, state resource.State) Delta {
	effective := desired
	if state == resource.StateAbsent {
		effective = invertBooleans(schema, desired)
	}

	var delta Delta
	for _, f := range schema.Fields {
		want, ok := effective[f.Name]
		if !ok {
			continue
		}
		if f.DependsOn != "" && primaryDisabled(schema, effective, f.DependsOn) {
			continue
		}
		if have, ok := observed[f.Name]; ok && f.Equal(want, have) {
			continue
		}
		delta = append(delta, Change{Key: f.Name, Value: want})
	}
	return delta
}

// invertBooleans returns a copy of attrs with every boolean field
// flipped. Non-boolean fields pass through unchanged.
func invertBooleans(schema resource.Schema, attrs resource.AttributeMap) resource.AttributeMap {
	out := attrs.Clone()
	for _, name := range schema.BoolFields() {
		if v, ok := out[name]; ok {
			if b, ok := v.(bool); ok {
				out[name] = !b
			}
		}
	}
	return out
}

func primaryDisabled(schema resource.Schema, attrs resource.AttributeMap, primary string) bool {
	v, ok := attrs[primary]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && !b
}
