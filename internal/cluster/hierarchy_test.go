package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHierarchical_Fit(t *testing.T) {

	// two tight groups far apart on the first axis
	rows := [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
	}

	model := NewHierarchical(2)
	err := model.Fit(rows)
	assert.NoError(t, err)

	labels := model.Assignments()
	assert.Equal(t, len(rows), len(labels))

	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[0], labels[2])
	assert.Equal(t, labels[3], labels[4])
	assert.Equal(t, labels[3], labels[5])
	assert.NotEqual(t, labels[0], labels[3])
}

func TestHierarchical_SingleCluster(t *testing.T) {

	rows := [][]float64{{1, 0}, {2, 0}, {2, 1}, {1, 1}}

	model := NewHierarchical(1)
	err := model.Fit(rows)
	assert.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0, 0}, model.Assignments())
}

func TestHierarchical_AsManyClustersAsRows(t *testing.T) {

	rows := [][]float64{{1, 0}, {2, 0}, {2, 1}}

	model := NewHierarchical(3)
	err := model.Fit(rows)
	assert.NoError(t, err)

	// no merges : every row keeps its own cluster
	assert.Equal(t, []int{0, 1, 2}, model.Assignments())
}

func TestHierarchical_DegenerateClusterCount(t *testing.T) {

	rows := [][]float64{{1, 0}, {2, 0}}

	assert.Error(t, NewHierarchical(0).Fit(rows))
	assert.Error(t, NewHierarchical(3).Fit(rows))
}

func TestHierarchical_MergesClosestFirst(t *testing.T) {

	// the two left points are closest, the right point merges last
	rows := [][]float64{
		{0, 0},
		{1, 0},
		{100, 0},
	}

	model := NewHierarchical(2)
	err := model.Fit(rows)
	assert.NoError(t, err)

	labels := model.Assignments()
	assert.Equal(t, labels[0], labels[1])
	assert.NotEqual(t, labels[0], labels[2])
}
