package amount

import "errors"

// errors
var (
	ErrInvalidAmountFormat = errors.New("invalid amount format")
)
