package cluster

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/drakos74/free-cluster/internal/buffer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Mixture fits a full covariance gaussian mixture with expectation maximization
// and produces hard assignments by maximum responsibility.
// The component densities are delegated to gonum.
type Mixture struct {
	k        int
	maxIter  int
	tol      float64
	regCovar float64
	rnd      *rand.Rand
	labels   []int
}

// NewMixture creates a new gaussian mixture model with k components.
// The seed fixes the initialization, so a single run is reproducible.
func NewMixture(k int, seed int64) *Mixture {
	return &Mixture{
		k:       k,
		maxIter: 100,
		tol:     1e-4,
		// keeps the covariances positive definite
		// in the presence of constant or one-hot columns
		regCovar: 1e-3,
		rnd:      rand.New(rand.NewSource(seed)),
	}
}

// Fit estimates the mixture parameters on the given rows.
func (m *Mixture) Fit(rows [][]float64) error {
	n := len(rows)
	if m.k < 1 {
		return fmt.Errorf("invalid component count %d", m.k)
	}
	if m.k > n {
		return fmt.Errorf("more components than rows [ %d | %d ]", m.k, n)
	}
	d := len(rows[0])

	// initial means by a maximin sweep : the first is a random row,
	// every next one the row furthest from the means chosen so far,
	// initial covariances the diagonal of the global variance
	collector := buffer.NewStatsCollector(d)
	for _, row := range rows {
		collector.Push(row...)
	}
	seeds := make([]int, 1, m.k)
	seeds[0] = m.rnd.Intn(n)
	minDist := make([]float64, n)
	for i, row := range rows {
		d0 := floats.Distance(row, rows[seeds[0]], 2)
		minDist[i] = d0 * d0
	}
	for len(seeds) < m.k {
		next := floats.MaxIdx(minDist)
		seeds = append(seeds, next)
		for i, row := range rows {
			dn := floats.Distance(row, rows[next], 2)
			if dn*dn < minDist[i] {
				minDist[i] = dn * dn
			}
		}
	}
	means := make([][]float64, m.k)
	covs := make([]*mat.SymDense, m.k)
	weights := make([]float64, m.k)
	for j, s := range seeds {
		mean := make([]float64, d)
		copy(mean, rows[s])
		means[j] = mean
		cov := mat.NewSymDense(d, nil)
		for a, stats := range collector.Stats() {
			cov.SetSym(a, a, stats.Variance()+m.regCovar)
		}
		covs[j] = cov
		weights[j] = 1 / float64(m.k)
	}

	resp := make([][]float64, n)
	for i := range resp {
		resp[i] = make([]float64, m.k)
	}

	prev := math.Inf(-1)
	for iter := 0; iter < m.maxIter; iter++ {
		// expectation : responsibilities and log likelihood
		normals := make([]*distmv.Normal, m.k)
		for j := 0; j < m.k; j++ {
			normal, ok := distmv.NewNormal(means[j], covs[j], nil)
			if !ok {
				return fmt.Errorf("covariance of component %d is not positive definite", j)
			}
			normals[j] = normal
		}
		ll := 0.0
		for i, row := range rows {
			for j := 0; j < m.k; j++ {
				resp[i][j] = math.Log(weights[j]) + normals[j].LogProb(row)
			}
			lse := floats.LogSumExp(resp[i])
			ll += lse
			for j := range resp[i] {
				resp[i][j] = math.Exp(resp[i][j] - lse)
			}
		}

		// maximization : weights, means, covariances
		for j := 0; j < m.k; j++ {
			nk := 0.0
			for i := 0; i < n; i++ {
				nk += resp[i][j]
			}
			if nk < 1e-10 {
				return fmt.Errorf("component %d collapsed to an empty cluster", j)
			}
			weights[j] = nk / float64(n)

			mean := make([]float64, d)
			for i, row := range rows {
				floats.AddScaled(mean, resp[i][j]/nk, row)
			}
			means[j] = mean

			cov := mat.NewSymDense(d, nil)
			for i, row := range rows {
				w := resp[i][j] / nk
				for a := 0; a < d; a++ {
					da := row[a] - mean[a]
					for b := a; b < d; b++ {
						cov.SetSym(a, b, cov.At(a, b)+w*da*(row[b]-mean[b]))
					}
				}
			}
			for a := 0; a < d; a++ {
				cov.SetSym(a, a, cov.At(a, a)+m.regCovar)
			}
			covs[j] = cov
		}

		if math.Abs(ll-prev) < m.tol {
			break
		}
		prev = ll
	}

	// hard assignment by maximum responsibility
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = floats.MaxIdx(resp[i])
	}
	m.labels = labels
	return nil
}

// Assignments returns the per-row component labels of the training set.
func (m *Mixture) Assignments() []int {
	return m.labels
}
