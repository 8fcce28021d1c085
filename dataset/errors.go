package dataset

import "errors"

var (
	// ErrIO indicates the dataset file is missing or could not be read.
	ErrIO = errors.New("dataset: cannot read input")

	// ErrParse indicates a malformed line, a non-numeric or non-finite field,
	// a negative mass fraction, or an unknown stage label.
	ErrParse = errors.New("dataset: malformed input")

	// ErrValidation indicates a composition whose total mass fraction is not below one.
	ErrValidation = errors.New("dataset: invalid composition")
)
