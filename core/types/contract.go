package types

import (
	"github.com/meverselabs/boosto/common"
)

// Contract defines chain Contract functions
type Contract interface {
	Address() common.Address
	Master() common.Address
	Init(addr common.Address, master common.Address)
	OnCreate(cc *ContractContext, Args []byte) error
	Front() interface{}
}
