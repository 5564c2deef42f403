package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netsmith-ops/netsmith/netsmith/resource"
)

func ids(values ...int) []resource.ID {
	out := make([]resource.ID, len(values))
	for i, v := range values {
		out[i] = resource.ID(v)
	}
	return out
}

func TestPartition(t *testing.T) {
	c := Partition(ids(2, 3, 4, 20, 50), ids(20, 50, 99))

	assert.Equal(t, ids(2, 3, 4), c.Delta)
	assert.Equal(t, ids(20, 50), c.Common)
}

func TestPartitionEmptyExisting(t *testing.T) {
	c := Partition(ids(5, 6), nil)

	assert.Equal(t, ids(5, 6), c.Delta)
	assert.Empty(t, c.Common)
}

func TestPartitionAllPresent(t *testing.T) {
	c := Partition(ids(5, 6), ids(5, 6))

	assert.Empty(t, c.Delta)
	assert.Equal(t, ids(5, 6), c.Common)
}

func TestTargets(t *testing.T) {
	c := Partition(ids(2, 3, 20), ids(20))

	assert.Equal(t, ids(2, 3), c.Targets(resource.StatePresent))
	assert.Equal(t, ids(20), c.Targets(resource.StateAbsent))
}
