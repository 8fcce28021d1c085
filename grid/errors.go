package grid

import "errors"

// ErrEmptyGrid indicates a grid axis with no values.
var ErrEmptyGrid = errors.New("grid: every axis must have at least one value")
