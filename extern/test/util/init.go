package util

import (
	"fmt"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/contract/boosto"
	"github.com/meverselabs/boosto/core/types"
)

var (
	Admin = common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	Users []common.Address

	// GenesisTime is the clock of a new TestContext, 2018-04-01 00:00:00 UTC
	GenesisTime = uint64(1522540800)
	// GenesisNative is the native balance of the admin and every user
	GenesisNative = "100"
)

var ClassMap map[string]uint64

func init() {
	ClassMap = map[string]uint64{}
	RegisterContractClass(&boosto.BoostoToken{}, "Boosto")

	Users = []common.Address{}
	for i := 0; i < 10; i++ {
		Users = append(Users, common.HexToAddress(fmt.Sprintf("0x%040x", 0xb000+i)))
	}
}

func RegisterContractClass(cont types.Contract, className string) uint64 {
	ClassID, err := types.RegisterContractType(cont)
	if err != nil {
		panic(err)
	}
	ClassMap[className] = ClassID
	return ClassID
}
