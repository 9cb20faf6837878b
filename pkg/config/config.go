// Package config provides the configuration system for tabular.
// It defines a single SourceConfig structure that the frame loader and the
// CLI share, ensuring consistent settings across the system.
//
// Example usage:
//
//	cfg := config.NewSourceConfig()
//	cfg.Delimiter = ", "
//	cfg.Detailed = true
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"strings"

	"github.com/quasarhq/tabular/pkg/errors"
)

// DefaultViewRows is the number of rows head/tail/sample views return when
// the caller does not ask for a specific count.
const DefaultViewRows = 5

// SourceConfig describes how a delimited source file is read and loaded
// into a frame.
type SourceConfig struct {
	// Delimiter separates fields within a line. It is matched exactly,
	// so ", " requires the space. Defaults to ",".
	Delimiter string `yaml:"delimiter" json:"delimiter"`

	// Detailed enables the second pass that computes per-column min/max.
	Detailed bool `yaml:"detailed" json:"detailed"`

	// MaxRows caps the number of data rows a load will accept.
	// Zero means unbounded; the frame grows as needed.
	MaxRows int `yaml:"max_rows" json:"max_rows"`

	// MaxColumns caps the number of header columns a load will accept.
	// Zero means unbounded.
	MaxColumns int `yaml:"max_columns" json:"max_columns"`

	// ViewRows is the default row count for head/tail/sample views.
	ViewRows int `yaml:"view_rows" json:"view_rows"`
}

// NewSourceConfig returns a SourceConfig with sensible defaults.
func NewSourceConfig() *SourceConfig {
	return &SourceConfig{
		Delimiter:  ",",
		Detailed:   false,
		MaxRows:    0,
		MaxColumns: 0,
		ViewRows:   DefaultViewRows,
	}
}

// Validate checks the configuration for internal consistency.
func (c *SourceConfig) Validate() error {
	if c.Delimiter == "" {
		return errors.New(errors.ErrTypeConfig, "delimiter must not be empty")
	}
	if strings.ContainsAny(c.Delimiter, "\r\n") {
		return errors.New(errors.ErrTypeConfig, "delimiter must not contain line breaks")
	}
	if c.MaxRows < 0 {
		return errors.Newf(errors.ErrTypeConfig, "max_rows must be non-negative, got %d", c.MaxRows)
	}
	if c.MaxColumns < 0 {
		return errors.Newf(errors.ErrTypeConfig, "max_columns must be non-negative, got %d", c.MaxColumns)
	}
	if c.ViewRows < 0 {
		return errors.Newf(errors.ErrTypeConfig, "view_rows must be non-negative, got %d", c.ViewRows)
	}
	return nil
}
