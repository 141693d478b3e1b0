package types

import (
	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/hash"
)

// Receipt is the result of a call
type Receipt struct {
	TxHash     hash.Hash256   `json:"txHash"`
	From       common.Address `json:"from"`
	To         common.Address `json:"to"`
	Method     string         `json:"method"`
	Value      *amount.Amount `json:"value"`
	Timestamp  uint64         `json:"timestamp"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	ChangeHash hash.Hash256   `json:"changeHash"`
	Events     []*Event       `json:"events"`
}
