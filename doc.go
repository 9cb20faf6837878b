// Package tabular loads delimited text files into immutable in-memory
// frames and exposes read-only summary views over them.
//
// A frame is built in a single synchronous pass: the header line fixes the
// column names (cleaned to alphanumerics) and column count, every following
// non-empty line becomes a row of float64 cells, and an optional detailed
// mode adds a per-column min/max pass. Completed frames are never mutated,
// so they are safe for concurrent readers without locking.
//
// # Quick Start
//
//	import (
//	    "github.com/quasarhq/tabular/pkg/config"
//	    "github.com/quasarhq/tabular/pkg/frame"
//	)
//
//	cfg := config.NewSourceConfig()
//	cfg.Detailed = true
//
//	f, err := frame.Load("weather.csv", cfg)
//	if err != nil {
//	    // no partial frame is ever returned
//	}
//
//	names := f.FeatureNames()
//	rows, cols, cells := f.Size()
//	head := f.Head(5)
//	stats, _ := f.Describe()
//
// # Key Packages
//
//	pkg/frame     - Frame type, loader, and summary views
//	pkg/tokenizer - Strict delimiter splitting and header cleaning
//	pkg/config    - Source configuration and YAML loading
//	pkg/errors    - Structured error handling
//	pkg/logger    - Structured logging
//
// # Format Contract
//
// The format is deliberately simple: one record per line, fields separated
// by an exact delimiter string, no quoting or escaping. Data fields that do
// not parse as numbers load as zero; that permissive coercion is part of the
// contract, not an error. A row whose field count disagrees with the header
// is rejected, and a failed load never yields a frame.
//
// Sources ending in .gz or .zst are decompressed transparently.
//
// Environment variables are supported in YAML configuration with the
// ${VAR_NAME} syntax.
package tabular
