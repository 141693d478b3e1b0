package util

import (
	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/bin"
	"github.com/meverselabs/boosto/contract/boosto"
	"github.com/meverselabs/boosto/core/backend"
	_ "github.com/meverselabs/boosto/core/backend/memory_driver"
	"github.com/meverselabs/boosto/core/chain"
	"github.com/meverselabs/boosto/core/types"
)

type TestContext struct {
	Cn    *chain.Chain
	Clock *chain.ManualClock
	Token common.Address
}

// NewTestContext returns a chain on the memory store with the token deployed by the admin
// and the native genesis balances given to the admin and the users
func NewTestContext() *TestContext {
	tc := &TestContext{
		Clock: chain.NewManualClock(GenesisTime),
	}
	if err := tc.InitChain(Admin); err != nil {
		panic(err)
	}
	return tc
}

func (tc *TestContext) InitChain(adm common.Address) error {
	db, err := backend.Create("memory", "")
	if err != nil {
		return err
	}
	cn := chain.NewChain(chain.NewStore(db), tc.Clock, 0)
	if err := cn.Init(func(ctx *types.Context) error {
		addr, err := tc.InitMainToken(ctx, adm)
		if err != nil {
			return err
		}
		tc.Token = addr
		for _, a := range append([]common.Address{adm}, Users...) {
			if err := ctx.AddNativeBalance(a, amount.MustParseAmount(GenesisNative)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	tc.Cn = cn
	return nil
}

func (tc *TestContext) InitMainToken(ctx *types.Context, adminAddress common.Address) (common.Address, error) {
	arg := &boosto.BoostoTokenConstruction{
		Admin: adminAddress,
	}
	bs, _, err := bin.WriterToBytes(arg)
	if err != nil {
		return common.ZeroAddr, err
	}
	cont, err := ctx.DeployContract(adminAddress, ClassMap["Boosto"], 0, bs)
	if err != nil {
		return common.ZeroAddr, err
	}
	return cont.Address(), nil
}

// Close releases the chain of the context
func (tc *TestContext) Close() {
	tc.Cn.Close()
}
