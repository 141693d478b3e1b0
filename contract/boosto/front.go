package boosto

import (
	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/core/types"
)

func (cont *BoostoToken) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *BoostoToken
}

// writers other than Receive do not accept the native value
func notPayable(cc *types.ContractContext) error {
	if !cc.Value().IsZero() {
		return errors.WithStack(ErrNotPayable)
	}
	return nil
}

//////////////////////////////////////////////////
// Writer Functions
//////////////////////////////////////////////////

func (f *front) Receive(cc *types.ContractContext) error {
	return f.cont.Receive(cc)
}

func (f *front) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	if err := notPayable(cc); err != nil {
		return false, err
	}
	err := f.cont.Transfer(cc, To, Amount)
	return err == nil, err
}

func (f *front) AdminAddICO(cc *types.ContractContext, StartTime uint64, DurationSeconds uint64, CoinsPerETH uint64, MaxCap *amount.Amount, MinAmount *amount.Amount, BonusHours []uint64, BonusPercents []uint64, IsPublic bool) error {
	if err := notPayable(cc); err != nil {
		return err
	}
	return f.cont.AdminAddICO(cc, StartTime, DurationSeconds, CoinsPerETH, MaxCap, MinAmount, BonusHours, BonusPercents, IsPublic)
}

func (f *front) AdminUpdateWhiteList(cc *types.ContractContext, Addr common.Address, Is bool) error {
	if err := notPayable(cc); err != nil {
		return err
	}
	return f.cont.AdminUpdateWhiteList(cc, Addr, Is)
}

//////////////////////////////////////////////////
// Reader Functions
//////////////////////////////////////////////////

func (f *front) Name(cc *types.ContractContext) string {
	return f.cont.Name(cc)
}

func (f *front) Symbol(cc *types.ContractContext) string {
	return f.cont.Symbol(cc)
}

func (f *front) Decimals(cc *types.ContractContext) uint64 {
	return f.cont.Decimals(cc)
}

func (f *front) TotalSupply(cc *types.ContractContext) *amount.Amount {
	return f.cont.TotalSupply(cc)
}

func (f *front) BalanceOf(cc *types.ContractContext, Addr common.Address) *amount.Amount {
	return f.cont.BalanceOf(cc, Addr)
}

func (f *front) Admin(cc *types.ContractContext) common.Address {
	return f.cont.Admin(cc)
}

func (f *front) WhiteList(cc *types.ContractContext, Addr common.Address) bool {
	return f.cont.WhiteList(cc, Addr)
}

func (f *front) MinAmount(cc *types.ContractContext) *amount.Amount {
	return f.cont.MinAmount(cc)
}

func (f *front) MaxCap(cc *types.ContractContext) (*amount.Amount, error) {
	return f.cont.MaxCap(cc)
}

func (f *front) DurationSeconds(cc *types.ContractContext) (uint64, error) {
	return f.cont.DurationSeconds(cc)
}

func (f *front) CoinsPerETH(cc *types.ContractContext) (uint64, error) {
	return f.cont.CoinsPerETH(cc)
}

func (f *front) TotalRaised(cc *types.ContractContext) (*amount.Amount, error) {
	return f.cont.TotalRaised(cc)
}

func (f *front) StartTime(cc *types.ContractContext) (uint64, error) {
	return f.cont.StartTime(cc)
}

func (f *front) BonusHours(cc *types.ContractContext) ([]uint64, error) {
	return f.cont.BonusHours(cc)
}

func (f *front) BonusPercents(cc *types.ContractContext) ([]uint64, error) {
	return f.cont.BonusPercents(cc)
}

func (f *front) IsPublic(cc *types.ContractContext) (bool, error) {
	return f.cont.IsPublic(cc)
}

func (f *front) IsIcoInProgress(cc *types.ContractContext) (bool, error) {
	return f.cont.IsIcoInProgress(cc)
}

func (f *front) CurrentBonusPercent(cc *types.ContractContext) (uint64, error) {
	return f.cont.CurrentBonusPercent(cc)
}

func (f *front) IcoSeq(cc *types.ContractContext) uint64 {
	return f.cont.ICOSeq(cc)
}

func (f *front) Ico(cc *types.ContractContext) (*ICO, error) {
	return f.cont.ICO(cc)
}
