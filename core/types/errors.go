package types

import "errors"

// errors
var (
	ErrInsufficientNativeBalance = errors.New("insufficient native balance")
	ErrInvalidNativeAmount       = errors.New("invalid native amount")
	ErrExistContractType         = errors.New("exist contract type")
	ErrInvalidClassID            = errors.New("invalid class id")
	ErrExistContract             = errors.New("exist contract")
	ErrNotExistContract          = errors.New("not exist contract")
	ErrInvalidMethod             = errors.New("invalid method")
	ErrInvalidArgument           = errors.New("invalid argument")
)
