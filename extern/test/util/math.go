package util

import (
	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
)

// Ether parses the amount of whole units
func Ether(v string) *amount.Amount {
	return amount.MustParseAmount(v)
}

// Sum returns the sum of the amounts
func Sum(ams ...*amount.Amount) *amount.Amount {
	result := amount.NewAmount(0, 0)
	for _, am := range ams {
		result = result.Add(am)
	}
	return result
}

// SumBalances returns the sum of the token balances of the addresses
func (tc *TestContext) SumBalances(addrs []common.Address) *amount.Amount {
	ams := make([]*amount.Amount, 0, len(addrs))
	for _, addr := range addrs {
		ams = append(ams, tc.BalanceOf(addr))
	}
	return Sum(ams...)
}
