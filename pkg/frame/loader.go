package frame

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/quasarhq/tabular/pkg/config"
	"github.com/quasarhq/tabular/pkg/errors"
	"github.com/quasarhq/tabular/pkg/logger"
	"github.com/quasarhq/tabular/pkg/tokenizer"
)

// maxLineBytes bounds a single source line; bufio.Scanner's 64KB default is
// too small for wide numeric datasets.
const maxLineBytes = 4 * 1024 * 1024

// Load reads a delimited text file into a completed Frame.
//
// The first line is the header: each token is cleaned into a column name and
// the token count fixes the column count for the rest of the load. Every
// subsequent non-empty line must carry exactly that many fields; each field
// is converted to float64 with parse-or-zero semantics (see parseCell).
// Sources ending in .gz or .zst are decompressed transparently.
//
// On any failure no Frame is returned: open failure and read failure map to
// ErrTypeSource, a missing header line to ErrTypeEmptySource, a field-count
// mismatch to ErrTypeMalformedRow, and a configured row/column ceiling being
// exceeded to ErrTypeCapacity.
func Load(path string, cfg *config.SourceConfig) (*Frame, error) {
	if cfg == nil {
		cfg = config.NewSourceConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.With(zap.String("path", path))

	file, err := os.Open(path) //nolint:gosec // G304: path is supplied by the caller
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeSource, "failed to open source file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Warn("failed to close source file", zap.Error(cerr))
		}
	}()

	reader, closeReader, err := sourceReader(file, path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeSource, "failed to open compressed source")
	}
	defer closeReader()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	f, err := readHeader(scanner, cfg)
	if err != nil {
		return nil, err
	}
	if dups := f.DuplicateColumns(); len(dups) > 0 {
		log.Warn("header contains duplicate column names", zap.Strings("duplicates", dups))
	}

	if err := readRows(scanner, cfg, f); err != nil {
		return nil, err
	}

	if cfg.Detailed && len(f.rows) > 0 {
		f.computeStats()
	}

	rows, cols, cells := f.Size()
	log.Info("frame loaded",
		zap.Int("rows", rows),
		zap.Int("columns", cols),
		zap.Int("cells", cells),
		zap.Bool("detailed", cfg.Detailed))

	return f, nil
}

// readHeader consumes the header line and returns a Frame with its columns
// set and no rows. A source without a header line is an error, never a
// zero-column frame.
func readHeader(scanner *bufio.Scanner, cfg *config.SourceConfig) (*Frame, error) {
	if !scanner.Scan() {
		if serr := scanner.Err(); serr != nil {
			return nil, errors.Wrap(serr, errors.ErrTypeSource, "failed to read header line")
		}
		return nil, errors.New(errors.ErrTypeEmptySource, "source contains no header line")
	}

	tokens := tokenizer.Split(scanner.Text(), cfg.Delimiter)
	if cfg.MaxColumns > 0 && len(tokens) > cfg.MaxColumns {
		return nil, errors.Newf(errors.ErrTypeCapacity,
			"header has %d columns, configured maximum is %d", len(tokens), cfg.MaxColumns)
	}

	columns := make([]string, len(tokens))
	for i, tok := range tokens {
		columns[i] = tokenizer.Clean(tok)
	}

	return &Frame{
		delimiter: cfg.Delimiter,
		columns:   columns,
		detailed:  cfg.Detailed,
	}, nil
}

// readRows appends every non-empty data line to the frame. The frame is
// discarded by the caller on error, so partial state never escapes.
func readRows(scanner *bufio.Scanner, cfg *config.SourceConfig, f *Frame) error {
	lineNo := 1 // header was line 1
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := tokenizer.Split(line, cfg.Delimiter)
		if len(fields) != len(f.columns) {
			return errors.Newf(errors.ErrTypeMalformedRow,
				"line %d has %d fields, header has %d", lineNo, len(fields), len(f.columns)).
				WithDetail("line", lineNo)
		}
		if cfg.MaxRows > 0 && len(f.rows) >= cfg.MaxRows {
			return errors.Newf(errors.ErrTypeCapacity,
				"data row count exceeds configured maximum of %d", cfg.MaxRows)
		}

		row := make([]float64, len(fields))
		for i, raw := range fields {
			row[i] = parseCell(raw)
		}
		f.rows = append(f.rows, row)
	}
	if serr := scanner.Err(); serr != nil {
		return errors.Wrap(serr, errors.ErrTypeSource, "failed while reading data rows")
	}
	return nil
}

// parseCell converts one raw field to float64. Leading/trailing whitespace
// and a sign are accepted; anything unparsable coerces to zero. This
// parse-or-zero behavior is the documented contract of the loader, not a
// silent fallback: numeric conversion failure is never an error.
func parseCell(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// sourceReader wraps the file in a decompressor when the path says the
// content is compressed. The returned close function releases only the
// decompressor; the file itself is closed by the caller.
func sourceReader(file *os.File, path string) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	default:
		return file, func() {}, nil
	}
}
