package types

import (
	"github.com/meverselabs/boosto/common"
)

// key tags of the state data
var (
	tagData     = byte(0x01)
	tagNative   = byte(0x02)
	tagContract = byte(0x03)
)

func toDataKey(cont common.Address, addr common.Address, name []byte) []byte {
	bs := make([]byte, 1+common.AddressLength*2+len(name))
	bs[0] = tagData
	copy(bs[1:], cont[:])
	copy(bs[1+common.AddressLength:], addr[:])
	copy(bs[1+common.AddressLength*2:], name)
	return bs
}

func toNativeKey(addr common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagNative
	copy(bs[1:], addr[:])
	return bs
}

func toContractKey(addr common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagContract
	copy(bs[1:], addr[:])
	return bs
}
