package idgen

import "github.com/google/uuid"

// NewFunc returns a new identifier; tests may replace it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new run identifier.
func New() string { return NewFunc() }
