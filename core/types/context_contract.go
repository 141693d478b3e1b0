package types

import (
	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
)

// ContractContext is an context for the contract
type ContractContext struct {
	cont  common.Address
	from  common.Address
	value *amount.Amount
	ctx   *Context
}

// NewContractContext returns a ContractContext of the call from the address to the contract
func NewContractContext(ctx *Context, cont common.Address, from common.Address, value *amount.Amount) *ContractContext {
	if value == nil {
		value = amount.NewAmount(0, 0)
	}
	return &ContractContext{
		cont:  cont,
		from:  from,
		value: value,
		ctx:   ctx,
	}
}

// From returns current caller address
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// Value returns the native currency attached to the call
func (cc *ContractContext) Value() *amount.Amount {
	return cc.value.Clone()
}

// Timestamp returns the timestamp of the call
func (cc *ContractContext) Timestamp() uint64 {
	return cc.ctx.Timestamp()
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, common.Address{}, name, value)
}

// AccountData returns the account data from the top snapshot
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data to the top snapshot
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, addr, name, value)
}

// NativeBalance returns the native currency balance of the address
func (cc *ContractContext) NativeBalance(addr common.Address) *amount.Amount {
	return cc.ctx.NativeBalance(addr)
}

// TransferNative sends the native currency held by the contract
func (cc *ContractContext) TransferNative(to common.Address, am *amount.Amount) error {
	return cc.ctx.TransferNative(cc.cont, to, am)
}

// EmitEvent records the event of the contract
func (cc *ContractContext) EmitEvent(Type string, Params map[string]interface{}) {
	cc.ctx.EmitEvent(&Event{
		Contract: cc.cont,
		Type:     Type,
		Params:   Params,
	})
}
