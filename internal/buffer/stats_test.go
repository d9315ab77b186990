package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		sum       float64
		min       float64
		max       float64
		stDev     float64
		variance  float64
	}

	tests := map[string]test{
		"monotonically-increasing-+": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:      float64(l / 2),
			count:    l,
			sum:      float64(l) * 500,
			min:      0,
			max:      float64(l) - 1,
			stDev:    289,
			variance: 83500,
		},
		"monotonically-increasing-0": {
			transform: func(i int) float64 {
				return float64(-1*l/2) + float64(i)
			},
			avg:   0,
			count: l,
			sum:   0,
			min:   -500,
			max:   500,
			// NOTE : these are the same as the one above
			stDev:    289,
			variance: 83500,
		},
		"constant": {
			transform: func(i int) float64 {
				return 42
			},
			avg:      42,
			count:    l,
			sum:      42 * float64(l),
			min:      42,
			max:      42,
			stDev:    0,
			variance: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				stats.Push(tt.transform(i))
			}
			assert.Equal(t, tt.count, stats.Count())
			assert.InDelta(t, tt.avg, stats.Avg(), 1e-9)
			assert.InDelta(t, tt.sum, stats.Sum(), 1e-6)
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
			assert.InDelta(t, tt.variance, stats.Variance(), 1)
			assert.InDelta(t, tt.stDev, stats.StDev(), 1)
		})
	}
}

func TestStatsCollector_Avg(t *testing.T) {

	collector := NewStatsCollector(2)

	collector.Push(1, 0)
	collector.Push(2, 0)
	collector.Push(2, 1)
	collector.Push(1, 1)

	assert.Equal(t, 4, collector.Size())
	assert.Equal(t, []float64{1.5, 0.5}, collector.Avg())
}

func TestStatsCollector_PushPanicsOnDimensionMismatch(t *testing.T) {

	collector := NewStatsCollector(3)

	assert.Panics(t, func() {
		collector.Push(1, 2)
	})
}
