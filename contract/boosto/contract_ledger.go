package boosto

import (
	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/core/types"
)

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *BoostoToken) Name(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagName}))
}

func (cont *BoostoToken) Symbol(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagSymbol}))
}

func (cont *BoostoToken) Decimals(cc *types.ContractContext) uint64 {
	return Decimals
}

func (cont *BoostoToken) TotalSupply(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagTotalSupply}))
}

func (cont *BoostoToken) BalanceOf(cc *types.ContractContext, addr common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(addr, []byte{tagBalance}))
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Transfer moves the tokens of the caller
func (cont *BoostoToken) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if To == common.ZeroAddr {
		return errors.WithStack(ErrTransferToZeroAddress)
	}
	if Amount == nil || Amount.IsMinus() {
		return errors.WithStack(ErrInvalidAmount)
	}
	if err := cont.transfer(cc, cc.From(), To, Amount); err != nil {
		return err
	}
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *BoostoToken) setBalance(cc *types.ContractContext, addr common.Address, bal *amount.Amount) {
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagBalance}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagBalance}, bal.Bytes())
	}
}

func (cont *BoostoToken) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) {
	cont.setBalance(cc, addr, cont.BalanceOf(cc, addr).Add(am))
}

func (cont *BoostoToken) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Wrapf(ErrInsufficientBalance, "%v holds %v less than %v", addr.String(), bal.String(), am.String())
	}
	cont.setBalance(cc, addr, bal.Sub(am))
	return nil
}

// transfer never changes the total supply
func (cont *BoostoToken) transfer(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if err := cont.subBalance(cc, From, Amount); err != nil {
		return err
	}
	cont.addBalance(cc, To, Amount)
	cc.EmitEvent("Transfer", map[string]interface{}{
		"from":   From,
		"to":     To,
		"amount": Amount.Clone(),
	})
	return nil
}
