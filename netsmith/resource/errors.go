package resource

import "fmt"

// ValidationError reports an attribute value that is malformed or out of
// its declared range.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid attribute %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid attribute %q (value %v): %s", e.Field, e.Value, e.Reason)
}

// DependencyError reports an attribute supplied without the companion
// attribute it depends on.
type DependencyError struct {
	Field    string
	Requires string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("attribute %q requires %q to be supplied", e.Field, e.Requires)
}
