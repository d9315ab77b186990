package cluster

import (
	"fmt"
	"io"
	"math"

	goml "github.com/cdipaolo/goml/cluster"
	cmath "github.com/drakos74/free-cluster/internal/math"
)

// KMeans produces hard assignments by iterative centroid refinement.
// The fitting itself is delegated to the goml implementation.
// Every fit runs several restarts and keeps the assignments with the
// lowest within cluster sum of squares.
type KMeans struct {
	k          int
	iterations int
	restarts   int
	model      *goml.KMeans
}

// NewKMeans creates a new k-means model for the given cluster count.
func NewKMeans(k int, iterations int) *KMeans {
	return &KMeans{
		k:          k,
		iterations: iterations,
		restarts:   10,
	}
}

// Fit learns the centroids on the given rows.
// The rows themselves are left untouched.
func (km *KMeans) Fit(rows [][]float64) error {
	best := math.Inf(1)
	for r := 0; r < km.restarts; r++ {
		// goml trains in place, so every restart works on its own copy
		model := goml.NewKMeans(km.k, km.iterations, clone(rows))
		// keep the training banner out of the report output
		model.Output = io.Discard
		if err := model.Learn(); err != nil {
			return fmt.Errorf("error during training on k-means: %w", err)
		}
		score, err := withinSS(rows, model.Guesses())
		if err != nil {
			return fmt.Errorf("error during training on k-means: %w", err)
		}
		if score < best {
			best = score
			km.model = model
		}
	}
	return nil
}

// Assignments returns the per-row cluster labels of the training set.
func (km *KMeans) Assignments() []int {
	if km.model == nil {
		return nil
	}
	return km.model.Guesses()
}

// withinSS scores a candidate assignment by its total within cluster
// sum of squares.
func withinSS(rows [][]float64, assignments []int) (float64, error) {
	clusters, err := Build(rows, assignments)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, c := range clusters {
		total += cmath.TotalSumOfSquares(c.Rows, c.Centroid)
	}
	return total, nil
}

// clone deep copies the given rows.
func clone(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}
