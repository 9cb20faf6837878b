// Package frame loads delimited text files into immutable in-memory frames
// and exposes read-only summary views over them.
//
// A Frame is built once by Load and never mutated afterwards, so a completed
// Frame is safe for concurrent readers without locking. All views return
// copies; callers cannot reach into the frame's backing storage.
package frame

import (
	"math/rand"
	"time"

	"github.com/quasarhq/tabular/pkg/config"
	"github.com/quasarhq/tabular/pkg/errors"
)

// Frame is the in-memory tabular result of a completed load: a row-major
// table of float64 cells plus the cleaned header metadata.
type Frame struct {
	delimiter string
	columns   []string
	rows      [][]float64

	// populated only when loaded in detailed mode with at least one row
	colMin   []float64
	colMax   []float64
	detailed bool
}

// ColumnStats holds the detailed-mode min/max pair for one column.
type ColumnStats struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Delimiter returns the delimiter the frame was loaded with.
func (f *Frame) Delimiter() string {
	return f.delimiter
}

// Detailed reports whether the frame was loaded in detailed mode.
func (f *Frame) Detailed() bool {
	return f.detailed
}

// FeatureNames returns the cleaned header tokens in original column order.
func (f *Frame) FeatureNames() []string {
	names := make([]string, len(f.columns))
	copy(names, f.columns)
	return names
}

// Size returns the frame's row count, column count, and total cell count.
func (f *Frame) Size() (rows, cols, cells int) {
	rows = len(f.rows)
	cols = len(f.columns)
	return rows, cols, rows * cols
}

// DuplicateColumns returns the cleaned column names that appear more than
// once in the header, in first-occurrence order. Duplicate names are
// permitted at load time; this exposes the collision to callers who care.
func (f *Frame) DuplicateColumns() []string {
	seen := make(map[string]int, len(f.columns))
	var dups []string
	for _, name := range f.columns {
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

// Head returns the first n rows in original order. n <= 0 uses
// config.DefaultViewRows; n greater than the row count returns every row.
func (f *Frame) Head(n int) [][]float64 {
	n = f.clampViewRows(n)
	return f.copyRows(0, n)
}

// Tail returns the last n rows in original order. n <= 0 uses
// config.DefaultViewRows; n greater than the row count returns every row.
func (f *Frame) Tail(n int) [][]float64 {
	n = f.clampViewRows(n)
	return f.copyRows(len(f.rows)-n, len(f.rows))
}

// SampleIndices returns n row indices chosen independently and uniformly at
// random, with replacement, from [0, rows). Pass a seeded rng for
// reproducible draws; a nil rng is seeded from the current time.
func (f *Frame) SampleIndices(n int, rng *rand.Rand) ([]int, error) {
	if len(f.rows) == 0 {
		return nil, errors.New(errors.ErrTypeView, "cannot sample from a frame with no rows")
	}
	if n <= 0 {
		n = config.DefaultViewRows
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = rng.Intn(len(f.rows))
	}
	return indices, nil
}

// Sample returns n rows chosen independently and uniformly at random, with
// replacement. Duplicate rows are expected; see SampleIndices.
func (f *Frame) Sample(n int, rng *rand.Rand) ([][]float64, error) {
	indices, err := f.SampleIndices(n, rng)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(indices))
	for i, idx := range indices {
		row := make([]float64, len(f.rows[idx]))
		copy(row, f.rows[idx])
		out[i] = row
	}
	return out, nil
}

// Describe returns the per-column min/max pairs computed during a
// detailed-mode load. It fails on frames loaded without detailed mode and on
// frames with no data rows, where minima and maxima are undefined.
func (f *Frame) Describe() ([]ColumnStats, error) {
	if !f.detailed {
		return nil, errors.New(errors.ErrTypeView, "frame was not loaded in detailed mode")
	}
	if len(f.rows) == 0 {
		return nil, errors.New(errors.ErrTypeView, "frame has no rows to describe")
	}
	stats := make([]ColumnStats, len(f.columns))
	for i, name := range f.columns {
		stats[i] = ColumnStats{Name: name, Min: f.colMin[i], Max: f.colMax[i]}
	}
	return stats, nil
}

func (f *Frame) clampViewRows(n int) int {
	if n <= 0 {
		n = config.DefaultViewRows
	}
	if n > len(f.rows) {
		n = len(f.rows)
	}
	return n
}

// copyRows deep-copies rows [start, end) so views never alias the frame.
func (f *Frame) copyRows(start, end int) [][]float64 {
	out := make([][]float64, 0, end-start)
	for _, row := range f.rows[start:end] {
		cp := make([]float64, len(row))
		copy(cp, row)
		out = append(out, cp)
	}
	return out
}
