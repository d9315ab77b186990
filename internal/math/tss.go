package math

import (
	"fmt"

	"github.com/drakos74/free-cluster/internal/buffer"
)

// Centroid returns the coordinate-wise mean of the given rows.
// It returns an error on an empty input,
// as the mean is undefined in that case.
func Centroid(rows [][]float64) ([]float64, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot compute centroid of empty set")
	}
	collector := buffer.NewStatsCollector(len(rows[0]))
	for _, row := range rows {
		collector.Push(row...)
	}
	return collector.Avg(), nil
}

// TotalSumOfSquares accumulates the squared deviation of every coordinate
// of every row from the given centroid.
// It is the raw sum, growing with both row count and dimensionality.
func TotalSumOfSquares(rows [][]float64, centroid []float64) float64 {
	total := 0.0
	for _, row := range rows {
		if len(row) != len(centroid) {
			panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(row), len(centroid)))
		}
		for i, v := range row {
			diff := v - centroid[i]
			total += diff * diff
		}
	}
	return total
}

// TSS computes the centroid of the given rows
// and delegates to TotalSumOfSquares.
func TSS(rows [][]float64) (float64, error) {
	centroid, err := Centroid(rows)
	if err != nil {
		return 0, err
	}
	return TotalSumOfSquares(rows, centroid), nil
}
