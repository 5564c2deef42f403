// Package classify partitions a proposed identifier set against the
// identifiers already present on the device.
package classify

import "github.com/netsmith-ops/netsmith/netsmith/resource"

// Classification splits the proposed identifiers into the ones missing
// from the device (Delta) and the ones already configured (Common).
// Both slices are sorted ascending.
type Classification struct {
	// Delta holds proposed identifiers absent from the device; under
	// "present" these are created.
	Delta []resource.ID

	// Common holds proposed identifiers the device already has; under
	// "absent" these are removed, under "present" they are candidates
	// for attribute-level modification only.
	Common []resource.ID
}

// Partition computes proposed − existing and proposed ∩ existing. The
// classifier decides identifier existence only; attribute equality for
// Common identifiers is the diff engine's call.
func Partition(proposed, existing []resource.ID) Classification {
	present := make(map[resource.ID]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}

	var c Classification
	for _, id := range proposed {
		if _, ok := present[id]; ok {
			c.Common = append(c.Common, id)
		} else {
			c.Delta = append(c.Delta, id)
		}
	}
	resource.SortIDs(c.Delta)
	resource.SortIDs(c.Common)
	return c
}

// Targets returns the identifiers an operation acts on: the missing
// ones for "present", the already-configured ones for "absent".
func (c Classification) Targets(state resource.State) []resource.ID {
	if state == resource.StateAbsent {
		return c.Common
	}
	return c.Delta
}
