package export

import "errors"

// ErrMissingColumn is returned when a required column is absent from the
// header.
var ErrMissingColumn = errors.New("export: missing column")
