package boosto

import "errors"

// errors
var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrCampaignInProgress    = errors.New("campaign in progress")
	ErrNoActiveCampaign      = errors.New("no active campaign")
	ErrNotWhitelisted        = errors.New("not whitelisted")
	ErrBelowMinimum          = errors.New("below minimum contribution")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInvalidBonusTable     = errors.New("invalid bonus table")
	ErrInvalidCampaign       = errors.New("invalid campaign")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrTransferToZeroAddress = errors.New("transfer to zero address")
	ErrNotPayable            = errors.New("not payable")
)
