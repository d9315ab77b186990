package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Hierarchical produces hard assignments by greedy agglomerative merging
// under the Ward linkage criterion.
// Dissimilarities are updated with the Lance-Williams recurrence,
// so a full merge pass costs O(n^3). Fine for datasets of a few hundred rows.
type Hierarchical struct {
	k      int
	labels []int
}

// NewHierarchical creates a new agglomerative model for the given cluster count.
func NewHierarchical(k int) *Hierarchical {
	return &Hierarchical{
		k: k,
	}
}

// Fit merges the closest pair of clusters until k groups remain.
func (h *Hierarchical) Fit(rows [][]float64) error {
	n := len(rows)
	if h.k < 1 {
		return fmt.Errorf("invalid cluster count %d", h.k)
	}
	if h.k > n {
		return fmt.Errorf("more clusters than rows [ %d | %d ]", h.k, n)
	}

	// ward merges start from the squared euclidean distance
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := floats.Distance(rows[i], rows[j], 2)
			dist[i][j] = d * d
			dist[j][i] = d * d
		}
	}

	size := make([]int, n)
	active := make([]bool, n)
	members := make([][]int, n)
	for i := 0; i < n; i++ {
		size[i] = 1
		active[i] = true
		members[i] = []int{i}
	}

	for remaining := n; remaining > h.k; remaining-- {
		bi, bj := -1, -1
		best := math.MaxFloat64
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if dist[i][j] < best {
					best = dist[i][j]
					bi = i
					bj = j
				}
			}
		}

		// merge bj into bi and update the dissimilarities of the merged group
		for x := 0; x < n; x++ {
			if !active[x] || x == bi || x == bj {
				continue
			}
			ni := float64(size[bi])
			nj := float64(size[bj])
			nx := float64(size[x])
			d := ((ni+nx)*dist[bi][x] + (nj+nx)*dist[bj][x] - nx*dist[bi][bj]) / (ni + nj + nx)
			dist[bi][x] = d
			dist[x][bi] = d
		}
		size[bi] += size[bj]
		members[bi] = append(members[bi], members[bj]...)
		active[bj] = false
	}

	// groups are labelled by order of their smallest row index
	// NOTE : members[i][0] == i , since merges always land on the lower index
	labels := make([]int, n)
	label := 0
	for i := 0; i < n; i++ {
		if !active[i] {
			continue
		}
		for _, idx := range members[i] {
			labels[idx] = label
		}
		label++
	}
	h.labels = labels
	return nil
}

// Assignments returns the per-row cluster labels of the training set.
func (h *Hierarchical) Assignments() []int {
	return h.labels
}
