package app

import "errors"

// errors
var (
	ErrZeroAdmin = errors.New("zero admin address")
)
