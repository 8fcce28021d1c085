package condition

import "errors"

// ErrInvalid indicates a Condition outside its physical domain.
var ErrInvalid = errors.New("condition: invalid physical condition")
