package eval

import (
	"fmt"
	"io"

	"github.com/drakos74/free-cluster/internal/cluster"
	"github.com/drakos74/free-cluster/internal/data"
	cmath "github.com/drakos74/free-cluster/internal/math"
	"github.com/rs/zerolog/log"
)

// Config bounds the cluster counts under evaluation.
type Config struct {
	MinClusters int
	MaxClusters int
}

// NewConfig returns the reference evaluation range.
func NewConfig() Config {
	return Config{
		MinClusters: 1,
		MaxClusters: 10,
	}
}

// Evaluator runs the model variants over the cluster count range
// and reports per-cluster and aggregate variance ratios.
type Evaluator struct {
	out io.Writer
}

// New creates a new Evaluator writing the report to the given output.
func New(out io.Writer) *Evaluator {
	return &Evaluator{
		out: out,
	}
}

// Run evaluates every variant for every cluster count in the configured range.
// Any failure aborts the whole run, there is no per-iteration isolation.
func (e *Evaluator) Run(frame *data.Frame, variants []cluster.Variant, cfg Config) error {
	if cfg.MinClusters < 1 || cfg.MaxClusters < cfg.MinClusters {
		return fmt.Errorf("invalid cluster range [ %d | %d ]", cfg.MinClusters, cfg.MaxClusters)
	}

	tss, err := cmath.TSS(frame.Rows)
	if err != nil {
		return fmt.Errorf("could not compute global tss: %w", err)
	}
	fmt.Fprintf(e.out, "tss for data = %v\n", tss)

	for _, variant := range variants {
		fmt.Fprintf(e.out, "-------------------------------\n")
		fmt.Fprintf(e.out, "%s\n", variant.Name)
		fmt.Fprintf(e.out, "-------------------------------\n")
		fmt.Fprintf(e.out, "\n")
		for k := cfg.MinClusters; k <= cfg.MaxClusters; k++ {
			fmt.Fprintf(e.out, "Calculating %d clusters...\n", k)
			fmt.Fprintf(e.out, "\n")
			if err := e.evaluate(frame, variant, k, tss); err != nil {
				return fmt.Errorf("could not evaluate %s for k=%d: %w", variant.Name, k, err)
			}
		}
	}
	return nil
}

// evaluate fits one (variant, k) pair and reports the per-cluster
// and aggregate within-cluster sums of squares.
func (e *Evaluator) evaluate(frame *data.Frame, variant cluster.Variant, k int, tss float64) error {
	assignments, err := variant.Assign(frame.Rows, k)
	if err != nil {
		return err
	}

	clusters, err := cluster.Build(frame.Rows, assignments)
	if err != nil {
		return err
	}

	twss := 0.0
	for _, c := range clusters {
		ctss := cmath.TotalSumOfSquares(c.Rows, c.Centroid)
		fmt.Fprintf(e.out, "cluster %d | tss = %v | size = %d\n", c.Label, ctss, c.Size())
		twss += ctss
	}
	fmt.Fprintf(e.out, "twss/tss = %v/%v = %v\n", twss, tss, twss/tss)
	fmt.Fprintf(e.out, "\n")

	log.Debug().
		Str("model", variant.Name).
		Int("k", k).
		Int("clusters", len(clusters)).
		Float64("twss", twss).
		Float64("ratio", twss/tss).
		Msg("evaluated clustering")

	return nil
}
