package resource

import (
	"fmt"
	"sort"
)

// ID identifies one instance of a device resource, e.g. a VLAN tag.
// IDs are comparable and totally ordered so that range expansion and
// diffing stay deterministic.
type ID int

func (id ID) String() string {
	return fmt.Sprintf("%d", int(id))
}

// State is the requested disposition of a resource.
type State string

const (
	StatePresent State = "present"
	StateAbsent  State = "absent"
)

// Valid reports whether s is a known state keyword.
func (s State) Valid() bool {
	return s == StatePresent || s == StateAbsent
}

// AttributeMap holds the desired or observed attributes of one resource
// instance. Maps are never mutated after construction; operations that
// change attributes build new maps.
type AttributeMap map[string]interface{}

// Clone returns a shallow copy of the map. Clone of a nil map is nil,
// which preserves the "not present" meaning of a nil fetch result.
func (m AttributeMap) Clone() AttributeMap {
	if m == nil {
		return nil
	}
	out := make(AttributeMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// FieldType enumerates the value types a schema field can carry.
type FieldType int

const (
	StringField FieldType = iota
	BoolField
	IntField
	EnumField
)

// Field declares one attribute of a resource schema.
type Field struct {
	Name string
	Type FieldType

	// Enum lists the legal values for EnumField fields.
	Enum []string

	// Min and Max bound IntField values, inclusive.
	Min, Max int

	// DependsOn names a BoolField that must be supplied alongside this
	// field. When the named field lands false the dependent value is
	// cleared instead of compared.
	DependsOn string

	// SingleValued marks a field that cannot be applied to more than
	// one identifier at a time, e.g. a VLAN name.
	SingleValued bool
}

// Schema is the fixed set of attributes a resource kind accepts. Field
// order is the order deltas and commands are emitted in.
type Schema struct {
	Fields []Field
}

// Field returns the declaration for name, or false when the schema does
// not know the attribute.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// BoolFields returns the names of all boolean fields in schema order.
func (s Schema) BoolFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Type == BoolField {
			names = append(names, f.Name)
		}
	}
	return names
}

// Validate checks attrs against the schema: unknown keys, value types,
// enum membership, integer bounds and cross-field dependencies. It
// returns a *ValidationError or *DependencyError describing the first
// problem found, keys checked in schema order.
func (s Schema) Validate(attrs AttributeMap) error {
	for name := range attrs {
		if _, ok := s.Field(name); !ok {
			return &ValidationError{Field: name, Reason: "unknown attribute"}
		}
	}

	for _, f := range s.Fields {
		v, ok := attrs[f.Name]
		if !ok {
			continue
		}
		if err := f.validateValue(v); err != nil {
			return err
		}
		if f.DependsOn != "" {
			if _, ok := attrs[f.DependsOn]; !ok {
				return &DependencyError{Field: f.Name, Requires: f.DependsOn}
			}
		}
	}
	return nil
}

func (f Field) validateValue(v interface{}) error {
	switch f.Type {
	case StringField:
		if _, ok := v.(string); !ok {
			return &ValidationError{Field: f.Name, Value: v, Reason: "expected a string"}
		}
	case BoolField:
		if _, ok := v.(bool); !ok {
			return &ValidationError{Field: f.Name, Value: v, Reason: "expected a boolean"}
		}
	case IntField:
		n, ok := toInt(v)
		if !ok {
			return &ValidationError{Field: f.Name, Value: v, Reason: "expected an integer"}
		}
		if n < f.Min || n > f.Max {
			return &ValidationError{
				Field:  f.Name,
				Value:  v,
				Reason: fmt.Sprintf("must be between %d and %d", f.Min, f.Max),
			}
		}
	case EnumField:
		str, ok := v.(string)
		if !ok {
			return &ValidationError{Field: f.Name, Value: v, Reason: "expected a string"}
		}
		for _, e := range f.Enum {
			if str == e {
				return nil
			}
		}
		return &ValidationError{
			Field:  f.Name,
			Value:  v,
			Reason: fmt.Sprintf("must be one of %v", f.Enum),
		}
	}
	return nil
}

// toInt accepts the integer shapes YAML and JSON decoders produce.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// Equal compares two attribute values for a given field. Integers are
// normalized first so that decoder-dependent shapes compare equal.
func (f Field) Equal(a, b interface{}) bool {
	if f.Type == IntField {
		an, aok := toInt(a)
		bn, bok := toInt(b)
		if aok && bok {
			return an == bn
		}
	}
	return a == b
}

// Definition binds a resource kind to its schema and identifier domain.
type Definition interface {
	// Kind names the resource type, e.g. "vlan".
	Kind() string

	// Schema returns the fixed attribute schema for the kind.
	Schema() Schema

	// Targets expands an identifier expression into the covered IDs,
	// deduplicated and sorted ascending. Singleton resources accept an
	// empty expression.
	Targets(expr string) ([]ID, error)
}

// SortIDs sorts ids ascending in place and returns them.
func SortIDs(ids []ID) []ID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
