package data

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Frame is a cleaned, fully numeric dataset.
// Rows are ordered as in the source file, columns as in Names.
// A Frame is read-only after loading.
type Frame struct {
	Names []string
	Rows  [][]float64
}

// NumRows returns the number of rows of the frame.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// NumCols returns the number of columns of the frame.
func (f *Frame) NumCols() int {
	return len(f.Names)
}

// Column returns the values of the column at the given index.
func (f *Frame) Column(j int) []float64 {
	col := make([]float64, len(f.Rows))
	for i, row := range f.Rows {
		col[i] = row[j]
	}
	return col
}

// Scale standardizes every column to zero mean and unit deviation.
// Columns with zero deviation are only centered.
// NOTE : this includes the one-hot indicator columns,
// which the unscaled metric would otherwise weigh by raw magnitude.
func (f *Frame) Scale() {
	for j := 0; j < f.NumCols(); j++ {
		col := f.Column(j)
		mean := stat.Mean(col, nil)
		stDev := stat.StdDev(col, nil)
		for i := range f.Rows {
			f.Rows[i][j] -= mean
			if stDev > 0 {
				f.Rows[i][j] /= stDev
			}
		}
	}
}

func (f *Frame) validate() error {
	for i, row := range f.Rows {
		if len(row) != len(f.Names) {
			return fmt.Errorf("inconsistent row width at %d [ %d | %d ]", i, len(row), len(f.Names))
		}
	}
	return nil
}
