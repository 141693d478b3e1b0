package amount

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Amount(t *testing.T) {
	a := COIN.DivC(1000)
	b := COIN.MulC(10000)
	assert.Equal(t, "0.001", a.String())
	assert.Equal(t, "10000", b.String())
	assert.Equal(t, "10000.001", a.Add(b).String())
	assert.Equal(t, "-9999.999", a.Sub(b).String())
	assert.Equal(t, "0.0000001", a.DivC(10000).String())
	assert.Equal(t, "90", a.MulC(90000).String())

	c, err := ParseAmount("10000.00121454")
	require.NoError(t, err)
	assert.Equal(t, "10000.00121454", c.String())
}

func TestNewAmount(t *testing.T) {
	supply := NewAmount(1000000000, 0)
	expected, _ := new(big.Int).SetString("1000000000000000000000000000", 10)
	assert.Equal(t, 0, supply.Cmp(expected))

	assert.Equal(t, "0.000000000000000001", NewAmount(0, 1).String())
	assert.Equal(t, "1.5", NewAmount(1, FractionalMax/2).String())
}

func TestParseAmount(t *testing.T) {
	am, err := ParseAmount("0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000000000000000), am.Int64())

	am, err = ParseAmount("4")
	require.NoError(t, err)
	assert.True(t, am.Equal(NewAmount(4, 0)))

	am, err = ParseAmount(".05")
	require.NoError(t, err)
	assert.True(t, am.Equal(NewAmount(0, FractionalMax/20)))

	for _, bad := range []string{"", "-1", "1.2.3", "abc", "0.1234567890123456789", "."} {
		_, err := ParseAmount(bad)
		assert.Equal(t, ErrInvalidAmountFormat, errors.Cause(err), bad)
	}
}

func TestAmountCompare(t *testing.T) {
	assert.True(t, ZeroCoin.IsZero())
	assert.False(t, ZeroCoin.IsPlus())
	assert.True(t, COIN.IsPlus())
	assert.True(t, ZeroCoin.Sub(COIN).IsMinus())
	assert.True(t, ZeroCoin.Less(COIN))
	assert.True(t, NewAmountFromBytes(COIN.Bytes()).Equal(COIN))
	assert.True(t, COIN.Clone().Equal(COIN))
}

func TestAmountJSON(t *testing.T) {
	bs, err := json.Marshal(NewAmount(12, FractionalMax/4))
	require.NoError(t, err)
	assert.Equal(t, `"12.25"`, string(bs))

	var am Amount
	require.NoError(t, json.Unmarshal(bs, &am))
	assert.Equal(t, "12.25", am.String())

	assert.Error(t, json.Unmarshal([]byte(`12`), &am))
}
