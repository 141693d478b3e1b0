package boosto

import (
	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/core/types"
)

// WhiteList returns the address may buy in a private campaign or not
func (cont *BoostoToken) WhiteList(cc *types.ContractContext, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagWhiteList})
	return len(bs) == 1 && bs[0] == 1
}

// AdminUpdateWhiteList adds or removes the address. Setting the current value again is allowed
func (cont *BoostoToken) AdminUpdateWhiteList(cc *types.ContractContext, addr common.Address, Is bool) error {
	if !cont.isAdmin(cc) {
		return errors.WithStack(ErrUnauthorized)
	}
	if Is {
		cc.SetAccountData(addr, []byte{tagWhiteList}, []byte{1})
	} else {
		cc.SetAccountData(addr, []byte{tagWhiteList}, nil)
	}
	cc.EmitEvent("WhiteListUpdated", map[string]interface{}{
		"address": addr,
		"value":   Is,
	})
	return nil
}
