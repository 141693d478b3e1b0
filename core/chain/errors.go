package chain

import "errors"

// errors
var (
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNotInitialized     = errors.New("not initialized")
	ErrChainClosed        = errors.New("chain closed")
	ErrNotExistReceipt    = errors.New("not exist receipt")
)
