package salerpc

import (
	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/core/chain"
	"github.com/meverselabs/boosto/core/types"
	"github.com/meverselabs/boosto/service/apiserver"
)

// Readers are the front methods served without a caller
var Readers = []string{
	"name",
	"symbol",
	"decimals",
	"totalSupply",
	"balanceOf",
	"admin",
	"whiteList",
	"minAmount",
	"maxCap",
	"durationSeconds",
	"coinsPerETH",
	"totalRaised",
	"startTime",
	"bonusHours",
	"bonusPercents",
	"isPublic",
	"isIcoInProgress",
	"currentBonusPercent",
	"icoSeq",
	"ico",
}

// Writers are the front methods that take the caller as the first param
var Writers = []string{
	"transfer",
	"adminAddICO",
	"adminUpdateWhiteList",
}

// CallResult is the result of a writer call
type CallResult struct {
	Receipt *types.Receipt `json:"receipt"`
	Result  []interface{}  `json:"result"`
}

// SaleRPC serves the token of the chain over the apiserver
type SaleRPC struct {
	cn    *chain.Chain
	token common.Address
}

// Register adds the boosto and chain methods to the apiserver
func Register(s *apiserver.APIServer, cn *chain.Chain, token common.Address) (*SaleRPC, error) {
	sr := &SaleRPC{
		cn:    cn,
		token: token,
	}
	bs, err := s.JRPC("boosto")
	if err != nil {
		return nil, err
	}
	for _, m := range Readers {
		bs.Set(m, sr.reader(m))
	}
	for _, m := range Writers {
		bs.Set(m, sr.writer(m))
	}
	bs.Set("receive", sr.receive)
	bs.Set("address", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return sr.token, nil
	})

	cs, err := s.JRPC("chain")
	if err != nil {
		return nil, err
	}
	cs.Set("receipt", sr.receipt)
	cs.Set("nativeBalance", sr.nativeBalance)
	cs.Set("timestamp", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return sr.cn.Timestamp(), nil
	})
	return sr, nil
}
