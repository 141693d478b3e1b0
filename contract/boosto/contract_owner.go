package boosto

import (
	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/core/types"
)

//////////////////////////////////////////////////
// Public Owner Write Functions
//////////////////////////////////////////////////

// AdminAddICO replaces the campaign slot when no campaign is active
func (cont *BoostoToken) AdminAddICO(cc *types.ContractContext, StartTime uint64, DurationSeconds uint64, CoinsPerETH uint64, MaxCap *amount.Amount, MinAmount *amount.Amount, BonusHours []uint64, BonusPercents []uint64, IsPublic bool) error {
	if !cont.isAdmin(cc) {
		return errors.WithStack(ErrUnauthorized)
	}
	if active, err := cont.activeICO(cc); err != nil {
		return err
	} else if active != nil {
		return errors.WithStack(ErrCampaignInProgress)
	}

	ico := &ICO{
		StartTime:       StartTime,
		DurationSeconds: DurationSeconds,
		CoinsPerETH:     CoinsPerETH,
		MaxCap:          MaxCap,
		MinAmount:       MinAmount,
		BonusHours:      append([]uint64{}, BonusHours...),
		BonusPercents:   append([]uint64{}, BonusPercents...),
		IsPublic:        IsPublic,
		TotalRaised:     amount.NewAmount(0, 0),
	}
	if err := ico.validate(); err != nil {
		return errors.WithStack(err)
	}
	if err := cont.setICO(cc, ico); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagMinAmount}, ico.MinAmount.Bytes())
	seq := cont.addICOSeq(cc)

	cc.EmitEvent("ICOAdded", map[string]interface{}{
		"seq":             seq,
		"startTime":       ico.StartTime,
		"durationSeconds": ico.DurationSeconds,
		"coinsPerETH":     ico.CoinsPerETH,
		"maxCap":          ico.MaxCap.Clone(),
		"minAmount":       ico.MinAmount.Clone(),
		"bonusHours":      ico.BonusHours,
		"bonusPercents":   ico.BonusPercents,
		"isPublic":        ico.IsPublic,
	})
	return nil
}
