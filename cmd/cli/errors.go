package main

import "errors"

// errors
var (
	ErrMissingAmount = errors.New("missing maxCap or minAmount")
)
