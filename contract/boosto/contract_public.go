package boosto

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/bin"
	"github.com/meverselabs/boosto/common/rlog"
	"github.com/meverselabs/boosto/core/types"
)

//////////////////////////////////////////////////
// Public Write Functions
//////////////////////////////////////////////////

// Receive buys tokens with the native value attached to the call.
// The tokens come from the administrator and the value is forwarded to the administrator
func (cont *BoostoToken) Receive(cc *types.ContractContext) error {
	ico, err := cont.activeICO(cc)
	if err != nil {
		return err
	}
	if ico == nil {
		return errors.WithStack(ErrNoActiveCampaign)
	}
	buyer := cc.From()
	if !ico.IsPublic && !cont.WhiteList(cc, buyer) {
		return errors.WithStack(ErrNotWhitelisted)
	}
	value := cc.Value()
	if value.Less(ico.MinAmount) {
		return errors.WithStack(ErrBelowMinimum)
	}

	bonus := ico.BonusPercent(cc.Timestamp())
	tokens := ico.Tokens(value, bonus)

	admin := cont.Admin(cc)
	if err := cont.transfer(cc, admin, buyer, tokens); err != nil {
		return err
	}
	if err := cc.TransferNative(admin, value); err != nil {
		return err
	}
	ico.TotalRaised = ico.TotalRaised.Add(value)
	if err := cont.setICO(cc, ico); err != nil {
		return err
	}

	seq := cont.ICOSeq(cc)
	cc.EmitEvent("TokenPurchase", map[string]interface{}{
		"buyer":  buyer,
		"value":  value,
		"tokens": tokens,
		"bonus":  bonus,
		"seq":    seq,
	})
	rlog.WithFields(logrus.Fields{
		"buyer":  buyer.String(),
		"value":  value.String(),
		"tokens": tokens.String(),
		"bonus":  bonus,
	}).Debug("token purchase")
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

// MinAmount returns the minimum contribution of the latest campaign, or the default before any
func (cont *BoostoToken) MinAmount(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagMinAmount}))
}

func (cont *BoostoToken) ICOSeq(cc *types.ContractContext) uint64 {
	return bin.Uint64(cc.ContractData([]byte{tagICOSeq}))
}

// ICO returns a zero campaign when none was added
func (cont *BoostoToken) ICO(cc *types.ContractContext) (*ICO, error) {
	ico, err := cont.ico(cc)
	if err != nil {
		return nil, err
	}
	if ico == nil {
		ico = &ICO{
			MaxCap:        amount.NewAmount(0, 0),
			MinAmount:     amount.NewAmount(0, 0),
			BonusHours:    []uint64{},
			BonusPercents: []uint64{},
			TotalRaised:   amount.NewAmount(0, 0),
		}
	}
	return ico, nil
}

func (cont *BoostoToken) IsIcoInProgress(cc *types.ContractContext) (bool, error) {
	ico, err := cont.activeICO(cc)
	if err != nil {
		return false, err
	}
	return ico != nil, nil
}

// CurrentBonusPercent returns the bonus a purchase would get now, zero without an active campaign
func (cont *BoostoToken) CurrentBonusPercent(cc *types.ContractContext) (uint64, error) {
	ico, err := cont.activeICO(cc)
	if err != nil {
		return 0, err
	}
	if ico == nil {
		return 0, nil
	}
	return ico.BonusPercent(cc.Timestamp()), nil
}

func (cont *BoostoToken) MaxCap(cc *types.ContractContext) (*amount.Amount, error) {
	ico, err := cont.ICO(cc)
	if err != nil {
		return nil, err
	}
	return ico.MaxCap, nil
}

func (cont *BoostoToken) DurationSeconds(cc *types.ContractContext) (uint64, error) {
	ico, err := cont.ICO(cc)
	if err != nil {
		return 0, err
	}
	return ico.DurationSeconds, nil
}

func (cont *BoostoToken) CoinsPerETH(cc *types.ContractContext) (uint64, error) {
	ico, err := cont.ICO(cc)
	if err != nil {
		return 0, err
	}
	return ico.CoinsPerETH, nil
}

func (cont *BoostoToken) TotalRaised(cc *types.ContractContext) (*amount.Amount, error) {
	ico, err := cont.ICO(cc)
	if err != nil {
		return nil, err
	}
	return ico.TotalRaised, nil
}

func (cont *BoostoToken) StartTime(cc *types.ContractContext) (uint64, error) {
	ico, err := cont.ICO(cc)
	if err != nil {
		return 0, err
	}
	return ico.StartTime, nil
}

func (cont *BoostoToken) BonusHours(cc *types.ContractContext) ([]uint64, error) {
	ico, err := cont.ICO(cc)
	if err != nil {
		return nil, err
	}
	return ico.BonusHours, nil
}

func (cont *BoostoToken) BonusPercents(cc *types.ContractContext) ([]uint64, error) {
	ico, err := cont.ICO(cc)
	if err != nil {
		return nil, err
	}
	return ico.BonusPercents, nil
}

func (cont *BoostoToken) IsPublic(cc *types.ContractContext) (bool, error) {
	ico, err := cont.ICO(cc)
	if err != nil {
		return false, err
	}
	return ico.IsPublic, nil
}
