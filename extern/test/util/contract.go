package util

import (
	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
)

func (tc *TestContext) BalanceOf(addr common.Address) *amount.Amount {
	return tc.MustRead("balanceOf", addr).(*amount.Amount)
}

func (tc *TestContext) TotalSupply() *amount.Amount {
	return tc.MustRead("totalSupply").(*amount.Amount)
}

// AddICO opens a campaign starting now as the admin
func (tc *TestContext) AddICO(duration uint64, coinsPerETH uint64, maxCap string, minAmount string, bonusHours []uint64, bonusPercents []uint64, isPublic bool) error {
	_, err := tc.SendTx(Admin, "adminAddICO", tc.Now(), duration, coinsPerETH, amount.MustParseAmount(maxCap), amount.MustParseAmount(minAmount), bonusHours, bonusPercents, isPublic)
	return err
}

// Holders returns the admin and the users
func Holders() []common.Address {
	return append([]common.Address{Admin}, Users...)
}
