package data

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultPath is the default location of the input dataset.
	DefaultPath = "./dataset_Facebook.csv"
	// Sentinel marks a missing value in the raw input.
	Sentinel = "?"
)

// Config carries the loading options for a dataset.
type Config struct {
	// Delimiter separates the fields of the input file.
	Delimiter rune
	// Dummy lists the categorical columns to expand into one-hot indicators.
	Dummy []string
	// Scale standardizes all columns after encoding.
	// The reference pipeline leaves the data unscaled.
	Scale bool
}

// NewConfig returns the loading options of the reference dataset.
func NewConfig() Config {
	return Config{
		Delimiter: ';',
		Dummy:     []string{"Type"},
	}
}

// Load reads, cleans and encodes the dataset at the given path.
// Rows with missing values or the sentinel string are dropped entirely.
func Load(path string, cfg Config) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(cfg.Delimiter),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("could not parse dataset: %w", df.Err)
	}

	records := df.Records()
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	header := records[0]
	rows := clean(records[1:])
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows left after cleaning %s", path)
	}

	frame, err := encode(header, rows, cfg.Dummy)
	if err != nil {
		return nil, fmt.Errorf("could not encode dataset: %w", err)
	}

	if cfg.Scale {
		frame.Scale()
	}

	log.Info().
		Str("path", path).
		Int("rows", frame.NumRows()).
		Int("columns", frame.NumCols()).
		Int("dropped", len(records)-1-frame.NumRows()).
		Bool("scaled", cfg.Scale).
		Msg("loaded dataset")

	return frame, nil
}

// clean trims whitespace on every field and drops rows
// containing the sentinel or an empty field.
func clean(records [][]string) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		keep := true
		row := make([]string, len(record))
		for i, v := range record {
			v = strings.TrimSpace(v)
			if v == "" || v == Sentinel {
				keep = false
				break
			}
			row[i] = v
		}
		if keep {
			rows = append(rows, row)
		}
	}
	return rows
}

// encode expands the dummy columns into one-hot indicator columns
// and parses everything else as float64.
// Indicator columns are appended after the numeric ones,
// named <column>_<value> with values in sorted order.
func encode(header []string, rows [][]string, dummy []string) (*Frame, error) {
	dummyIndex := make(map[int]string, len(dummy))
	for _, name := range dummy {
		found := false
		for j, h := range header {
			if h == name {
				dummyIndex[j] = name
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("dummy column %s not present in header", name)
		}
	}

	// distinct values per dummy column, sorted for deterministic layout
	values := make(map[int][]string, len(dummyIndex))
	for j := range dummyIndex {
		distinct := make(map[string]struct{})
		for _, row := range rows {
			distinct[row[j]] = struct{}{}
		}
		vv := make([]string, 0, len(distinct))
		for v := range distinct {
			vv = append(vv, v)
		}
		sort.Strings(vv)
		values[j] = vv
	}

	names := make([]string, 0, len(header))
	for j, h := range header {
		if _, ok := dummyIndex[j]; !ok {
			names = append(names, h)
		}
	}
	dummyCols := make([]int, 0, len(dummyIndex))
	for j := range dummyIndex {
		dummyCols = append(dummyCols, j)
	}
	sort.Ints(dummyCols)
	for _, j := range dummyCols {
		for _, v := range values[j] {
			names = append(names, fmt.Sprintf("%s_%s", dummyIndex[j], v))
		}
	}

	out := make([][]float64, len(rows))
	for i, row := range rows {
		encoded := make([]float64, 0, len(names))
		for j, v := range row {
			if _, ok := dummyIndex[j]; ok {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("non-numeric value %q in column %s at row %d: %w", v, header[j], i, err)
			}
			encoded = append(encoded, f)
		}
		for _, j := range dummyCols {
			for _, v := range values[j] {
				if row[j] == v {
					encoded = append(encoded, 1)
				} else {
					encoded = append(encoded, 0)
				}
			}
		}
		out[i] = encoded
	}

	frame := &Frame{
		Names: names,
		Rows:  out,
	}
	if err := frame.validate(); err != nil {
		return nil, err
	}
	return frame, nil
}
