package common

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Address is the 20 byte account identifier shared with the ethereum tooling
type Address = common.Address

var ZeroAddr = Address{}

// Lengths of hashes and addresses in bytes.
const (
	// AddressLength is the expected length of the address
	AddressLength = common.AddressLength
)

// BytesToAddress returns Address with value b.
// If b is larger than len(h), b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	return common.BytesToAddress(b)
}

// BigToAddress returns Address with byte values of b.
func BigToAddress(b *big.Int) Address {
	return common.BigToAddress(b)
}

// HexToAddress returns Address with byte values of s.
func HexToAddress(s string) Address {
	return common.HexToAddress(s)
}

// IsHexAddress verifies whether a string can represent a valid hex-encoded address or not.
func IsHexAddress(s string) bool {
	return common.IsHexAddress(s)
}

// ParseAddress parses the hex address with or without the 0x prefix
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s) != AddressLength*2 {
		return ZeroAddr, errors.WithStack(ErrInvalidAddressFormat)
	}
	h, err := hex.DecodeString(s)
	if err != nil {
		return ZeroAddr, errors.Wrap(ErrInvalidAddressFormat, err.Error())
	}
	var addr Address
	copy(addr[:], h)
	return addr, nil
}

// MustParseAddress panics when the address is not parsable
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}
