package boosto

import (
	"bytes"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/core/types"
)

// default token identity
var (
	DefaultName        = "Boosto"
	DefaultSymbol      = "BST"
	DefaultTotalSupply = amount.NewAmount(1000000000, 0)
	DefaultMinAmount   = amount.NewAmount(0, 100000000000000000)
)

type BoostoToken struct {
	addr   common.Address
	master common.Address
}

func (cont *BoostoToken) Address() common.Address {
	return cont.addr
}

func (cont *BoostoToken) Master() common.Address {
	return cont.master
}

func (cont *BoostoToken) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

// OnCreate credits the whole supply to the administrator
func (cont *BoostoToken) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &BoostoTokenConstruction{}
	if len(Args) > 0 {
		if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
			return err
		}
	}
	if len(data.Name) == 0 {
		data.Name = DefaultName
	}
	if len(data.Symbol) == 0 {
		data.Symbol = DefaultSymbol
	}
	if data.Admin == common.ZeroAddr {
		data.Admin = cc.From()
	}
	if data.TotalSupply == nil || data.TotalSupply.IsZero() {
		data.TotalSupply = DefaultTotalSupply
	}
	if data.MinAmount == nil || data.MinAmount.IsZero() {
		data.MinAmount = DefaultMinAmount
	}

	cc.SetContractData([]byte{tagName}, []byte(data.Name))
	cc.SetContractData([]byte{tagSymbol}, []byte(data.Symbol))
	cc.SetContractData([]byte{tagAdmin}, data.Admin[:])
	cc.SetContractData([]byte{tagTotalSupply}, data.TotalSupply.Bytes())
	cc.SetContractData([]byte{tagMinAmount}, data.MinAmount.Bytes())
	cont.setBalance(cc, data.Admin, data.TotalSupply)
	cc.EmitEvent("Transfer", map[string]interface{}{
		"from":   common.ZeroAddr,
		"to":     data.Admin,
		"amount": data.TotalSupply.Clone(),
	})
	return nil
}

// Admin returns the administrator of the sale
func (cont *BoostoToken) Admin(cc *types.ContractContext) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagAdmin}))
}

func (cont *BoostoToken) isAdmin(cc *types.ContractContext) bool {
	return cc.From() == cont.Admin(cc)
}
