package interchange

import "errors"

// Interchange domain errors
var (
	// ErrInvalidFormat aborts an import with no partial merge.
	ErrInvalidFormat = errors.New("invalid import file format")

	// ErrNoDataToExport short-circuits an export with no file produced.
	ErrNoDataToExport = errors.New("no data to export")
)
