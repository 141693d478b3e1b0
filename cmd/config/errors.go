package config

import "errors"

// errors
var (
	ErrInvalidEnv = errors.New("invalid env")
)
