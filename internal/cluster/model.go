package cluster

import "fmt"

// Model is the common contract over the clustering algorithms.
// Fit clusters the rows it is given,
// Assignments returns one label per input row, in input order.
type Model interface {
	Fit(rows [][]float64) error
	Assignments() []int
}

// Runner fits a model on the given rows and extracts the assignments.
type Runner func(m Model, rows [][]float64) ([]int, error)

// FitPredict is the default runner.
var FitPredict Runner = func(m Model, rows [][]float64) ([]int, error) {
	if err := m.Fit(rows); err != nil {
		return nil, err
	}
	return m.Assignments(), nil
}

// Variant binds a model family to its construction and execution.
// It replaces implicit factory closures with a record passed by value.
type Variant struct {
	Name  string
	Build func(k int) Model
	Run   Runner
}

// Assign fits a fresh model with the given cluster count
// and returns the per-row assignments.
// The assignments must align one to one with the input rows.
func (v Variant) Assign(rows [][]float64, k int) ([]int, error) {
	model := v.Build(k)
	labels, err := v.Run(model, rows)
	if err != nil {
		return nil, fmt.Errorf("could not run %s for k=%d: %w", v.Name, k, err)
	}
	if len(labels) != len(rows) {
		return nil, fmt.Errorf("could not align assignments with data [ %d | %d ]", len(labels), len(rows))
	}
	return labels, nil
}

// Variants returns the model families under evaluation.
// Every call to Build produces a fresh model, there is no incremental refit.
func Variants(seed int64) []Variant {
	return []Variant{
		{
			Name: "KMeans",
			Build: func(k int) Model {
				return NewKMeans(k, 30)
			},
			Run: FitPredict,
		},
		{
			Name: "H-Clustering",
			Build: func(k int) Model {
				return NewHierarchical(k)
			},
			Run: FitPredict,
		},
		{
			Name: "Gaussian Mixture",
			Build: func(k int) Model {
				return NewMixture(k, seed)
			},
			Run: FitPredict,
		},
	}
}
