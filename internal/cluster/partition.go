package cluster

import (
	"fmt"
	"sort"

	cmath "github.com/drakos74/free-cluster/internal/math"
)

// GroupIndices groups the row indices by their assigned cluster label.
// Within each group the indices keep their original relative order.
func GroupIndices(assignments []int) map[int][]int {
	groups := make(map[int][]int)
	for i, label := range assignments {
		groups[label] = append(groups[label], i)
	}
	return groups
}

// Views materializes the rows of each cluster, preserving row order.
func Views(rows [][]float64, assignments []int) (map[int][][]float64, error) {
	if len(assignments) != len(rows) {
		return nil, fmt.Errorf("could not align assignments with data [ %d | %d ]", len(assignments), len(rows))
	}
	views := make(map[int][][]float64)
	for label, indices := range GroupIndices(assignments) {
		view := make([][]float64, 0, len(indices))
		for _, i := range indices {
			view = append(view, rows[i])
		}
		views[label] = view
	}
	return views, nil
}

// Cluster is one group of rows together with its centroid.
type Cluster struct {
	Label    int
	Centroid []float64
	Rows     [][]float64
}

// Size returns the number of rows of the cluster.
func (c Cluster) Size() int {
	return len(c.Rows)
}

// Build materializes every cluster and computes its centroid.
// The output is sorted by label to keep a single run deterministic.
func Build(rows [][]float64, assignments []int) ([]Cluster, error) {
	views, err := Views(rows, assignments)
	if err != nil {
		return nil, err
	}

	labels := make([]int, 0, len(views))
	for label := range views {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	clusters := make([]Cluster, 0, len(labels))
	for _, label := range labels {
		view := views[label]
		centroid, err := cmath.Centroid(view)
		if err != nil {
			return nil, fmt.Errorf("could not compute centroid for cluster %d: %w", label, err)
		}
		clusters = append(clusters, Cluster{
			Label:    label,
			Centroid: centroid,
			Rows:     view,
		})
	}
	return clusters, nil
}
