package app

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/cmd/config"
	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/bin"
	"github.com/meverselabs/boosto/contract/boosto"
	"github.com/meverselabs/boosto/core/types"
)

// SaleApp deploys the token of the node
type SaleApp struct {
	ClassID uint64
	Admin   common.Address
	cfg     *config.NodeConfig
}

// NewSaleApp registers the contract class and returns a SaleApp of the config
func NewSaleApp(cfg *config.NodeConfig) (*SaleApp, error) {
	admin, err := common.ParseAddress(cfg.AdminAddress)
	if err != nil {
		return nil, errors.Wrap(err, "admin address")
	}
	if admin == common.ZeroAddr {
		return nil, errors.WithStack(ErrZeroAdmin)
	}
	ClassID, err := types.RegisterContractType(&boosto.BoostoToken{})
	if err != nil {
		return nil, err
	}
	return &SaleApp{
		ClassID: ClassID,
		Admin:   admin,
		cfg:     cfg,
	}, nil
}

// TokenAddress returns the address the token is deployed to
func (app *SaleApp) TokenAddress() common.Address {
	return types.ContractAddress(app.Admin, app.ClassID, 0)
}

// Genesis deploys the token and credits the genesis native balances
func (app *SaleApp) Genesis(ctx *types.Context) error {
	arg := &boosto.BoostoTokenConstruction{
		Name:   app.cfg.TokenName,
		Symbol: app.cfg.TokenSymbol,
		Admin:  app.Admin,
	}
	bs, _, err := bin.WriterToBytes(arg)
	if err != nil {
		return err
	}
	if _, err := ctx.DeployContract(app.Admin, app.ClassID, 0, bs); err != nil {
		return err
	}

	keys := make([]string, 0, len(app.cfg.GenesisBalances))
	for k := range app.cfg.GenesisBalances {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		addr, err := common.ParseAddress(k)
		if err != nil {
			return errors.Wrap(err, k)
		}
		am, err := amount.ParseAmount(app.cfg.GenesisBalances[k])
		if err != nil {
			return errors.Wrap(err, k)
		}
		if err := ctx.AddNativeBalance(addr, am); err != nil {
			return err
		}
	}
	return nil
}
