package chain

import (
	"github.com/meverselabs/boosto/common/hash"
)

// store keys are kept apart from the state keys of types.Context
var (
	tagInitialized = []byte{0x10, 0}
	tagNonce       = []byte{0x10, 1}
	tagReceipt     = []byte{0x11, 0}
)

func toReceiptKey(h hash.Hash256) []byte {
	bs := make([]byte, len(tagReceipt)+hash.HashLength)
	copy(bs, tagReceipt)
	copy(bs[len(tagReceipt):], h[:])
	return bs
}
