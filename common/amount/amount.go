package amount

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// FractionalMax represent the max value of under the float point
const FractionalMax = 1000000000000000000

// FractionalCount represent the number of under the float point
const FractionalCount = 18

// COIN is 1 coin
var COIN = NewAmount(1, 0)

// ZeroCoin is 0 coin
var ZeroCoin = NewAmount(0, 0)

var zeroInt = big.NewInt(0)
var fractionalMaxInt = big.NewInt(FractionalMax)

// Amount is the precision float value based on the big.Int
type Amount struct {
	*big.Int
}

func newAmount(value int64) *Amount {
	return &Amount{
		Int: big.NewInt(value),
	}
}

// NewAmount returns the amount that is consisted of the integer and the fractional value
func NewAmount(i uint64, f uint64) *Amount {
	c := newAmount(0)
	c.Int.SetUint64(i)
	c.Int.Mul(c.Int, fractionalMaxInt)
	c.Int.Add(c.Int, new(big.Int).SetUint64(f))
	return c
}

// NewAmountFromBig returns the amount that holds a copy of the big integer in units
func NewAmountFromBig(bi *big.Int) *Amount {
	c := newAmount(0)
	if bi != nil {
		c.Int.Set(bi)
	}
	return c
}

// NewAmountFromBytes parse the amount from the byte array
func NewAmountFromBytes(bs []byte) *Amount {
	b := newAmount(0)
	b.Int.SetBytes(bs)
	return b
}

// MarshalJSON is a marshaler function
func (am *Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + am.String() + `"`), nil
}

// UnmarshalJSON is a unmarshaler function
func (am *Amount) UnmarshalJSON(bs []byte) error {
	if len(bs) < 3 {
		return errors.WithStack(ErrInvalidAmountFormat)
	}
	if bs[0] != '"' || bs[len(bs)-1] != '"' {
		return errors.WithStack(ErrInvalidAmountFormat)
	}
	v, err := ParseAmount(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	am.Int = v.Int
	return nil
}

// MarshalYAML is a marshaler function for the yaml encoders
func (am *Amount) MarshalYAML() (interface{}, error) {
	return am.String(), nil
}

// UnmarshalYAML is a unmarshaler function for the yaml decoders
func (am *Amount) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	v, err := ParseAmount(str)
	if err != nil {
		return err
	}
	am.Int = v.Int
	return nil
}

// Clone returns the clonend value of it
func (am *Amount) Clone() *Amount {
	return NewAmountFromBig(am.Int)
}

// Add returns a + b (*immutable)
func (am *Amount) Add(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Add(am.Int, b.Int)
	return c
}

// Sub returns a - b (*immutable)
func (am *Amount) Sub(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Sub(am.Int, b.Int)
	return c
}

// Div returns a / b (*immutable)
func (am *Amount) Div(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Div(am.Int, b.Int)
	return c
}

// DivC returns a / b (*immutable)
func (am *Amount) DivC(b int64) *Amount {
	c := newAmount(0)
	c.Int.Div(am.Int, big.NewInt(b))
	return c
}

// Mul returns a * b (*immutable)
func (am *Amount) Mul(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Mul(am.Int, b.Int)
	return c
}

// MulC returns a * b (*immutable)
func (am *Amount) MulC(b int64) *Amount {
	c := newAmount(0)
	c.Int.Mul(am.Int, big.NewInt(b))
	return c
}

// IsZero returns a == 0
func (am *Amount) IsZero() bool {
	return am.Int.Cmp(zeroInt) == 0
}

// IsPlus returns a > 0
func (am *Amount) IsPlus() bool {
	return am.Int.Cmp(zeroInt) > 0
}

// IsMinus returns a < 0
func (am *Amount) IsMinus() bool {
	return am.Int.Cmp(zeroInt) < 0
}

// Less returns a < b
func (am *Amount) Less(b *Amount) bool {
	return am.Int.Cmp(b.Int) < 0
}

// Equal checks that two values is same or not
func (am *Amount) Equal(b *Amount) bool {
	return am.Int.Cmp(b.Int) == 0
}

// String returns the float string of the amount
func (am *Amount) String() string {
	if am.IsZero() {
		return "0"
	}
	abs := new(big.Int).Abs(am.Int)
	sign := ""
	if am.IsMinus() {
		sign = "-"
	}
	str := abs.String()
	if len(str) <= FractionalCount {
		str = strings.Repeat("0", FractionalCount-len(str)+1) + str
	}
	si := str[:len(str)-FractionalCount]
	sf := strings.TrimRight(str[len(str)-FractionalCount:], "0")
	if len(sf) > 0 {
		return sign + si + "." + sf
	}
	return sign + si
}

// ParseAmount parse the amount from the float string
func ParseAmount(str string) (*Amount, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 || strings.HasPrefix(str, "-") || strings.HasPrefix(str, "+") {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	ls := strings.SplitN(str, ".", 2)
	si := ls[0]
	sf := ""
	if len(ls) == 2 {
		sf = ls[1]
	}
	if len(si) == 0 && len(sf) == 0 {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	if len(sf) > FractionalCount {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	digits := si + sf + strings.Repeat("0", FractionalCount-len(sf))
	bi, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	return &Amount{Int: bi}, nil
}

// MustParseAmount parse the amount from the float string
func MustParseAmount(str string) *Amount {
	am, err := ParseAmount(str)
	if err != nil {
		panic(err)
	}
	return am
}
