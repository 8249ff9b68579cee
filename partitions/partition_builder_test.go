package partitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockPartition(t *testing.T) {
	pb := &PartitionBuilder{NumElements: 10, NumPartitions: 3, Strategy: BlockPartition}
	layout, err := pb.BuildPartitions()
	require.NoError(t, err)

	assert.Equal(t, 3, layout.NumPartitions)
	assert.Equal(t, 4, layout.KpartMax)
	assert.Equal(t, []int{0, 1, 2, 3}, layout.Partitions[0].Elements)
	assert.Equal(t, []int{4, 5, 6, 7}, layout.Partitions[1].Elements)
	assert.Equal(t, []int{8, 9}, layout.Partitions[2].Elements)
	assert.Equal(t, 1, layout.GetPartition(5))
	assert.Equal(t, -1, layout.GetPartition(10))
}

func TestRoundRobinPartition(t *testing.T) {
	pb := &PartitionBuilder{NumElements: 7, NumPartitions: 3, Strategy: RoundRobin}
	layout, err := pb.BuildPartitions()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3, 6}, layout.Partitions[0].Elements)
	assert.Equal(t, []int{1, 4}, layout.Partitions[1].Elements)
	assert.Equal(t, []int{2, 5}, layout.Partitions[2].Elements)
	assert.Equal(t, 3, layout.KpartMax)
}

func TestPartitionCountCapped(t *testing.T) {
	layout, err := (&PartitionBuilder{NumElements: 2, NumPartitions: 8}).BuildPartitions()
	require.NoError(t, err)
	assert.Equal(t, 2, layout.NumPartitions)
	for _, p := range layout.Partitions {
		assert.Equal(t, 1, p.NumElements)
	}

	layout, err = (&PartitionBuilder{NumElements: 0, NumPartitions: 4}).BuildPartitions()
	require.NoError(t, err)
	assert.Equal(t, 1, layout.NumPartitions)
	assert.Equal(t, 0, layout.KpartMax)
}

func TestBuildPartitionsErrors(t *testing.T) {
	_, err := (&PartitionBuilder{NumElements: -1}).BuildPartitions()
	assert.Error(t, err)

	_, err = (&PartitionBuilder{NumElements: 4, NumPartitions: 2, Strategy: PartitionStrategy(9)}).BuildPartitions()
	assert.Error(t, err)
}

func TestValidateLayoutDetectsCorruption(t *testing.T) {
	layout, err := (&PartitionBuilder{NumElements: 6, NumPartitions: 2}).BuildPartitions()
	require.NoError(t, err)
	require.NoError(t, layout.ValidateLayout())

	layout.EToP[0] = 1
	assert.Error(t, layout.ValidateLayout())
	layout.EToP[0] = 0

	layout.KpartMax = 5
	assert.Error(t, layout.ValidateLayout())
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "block", BlockPartition.String())
	assert.Equal(t, "round-robin", RoundRobin.String())
}
