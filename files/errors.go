package files

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned by the factories when the file
	// extension maps to no known format. The wrapped message names the
	// offending extension.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMissingDataColumn means a CSV import file has no Data column, so
	// there is nothing to decode.
	ErrMissingDataColumn = errors.New("csv: header has no Data column")
)

func unsupportedFormat(ext string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
