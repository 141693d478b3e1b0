package bin

import (
	"bytes"
	"testing"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumWriterReader(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	am := amount.MustParseAmount("120.5")

	var buf bytes.Buffer
	sw := NewSumWriter()
	_, err := sw.Uint8(&buf, 7)
	require.NoError(t, err)
	_, err = sw.Uint64(&buf, 1<<40)
	require.NoError(t, err)
	_, err = sw.Uint64Slice(&buf, []uint64{10, 24, 48})
	require.NoError(t, err)
	_, err = sw.String(&buf, "BST")
	require.NoError(t, err)
	_, err = sw.Bool(&buf, true)
	require.NoError(t, err)
	_, err = sw.Address(&buf, addr)
	require.NoError(t, err)
	_, err = sw.Amount(&buf, am)
	require.NoError(t, err)
	_, err = sw.Amount(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), sw.Sum())

	sr := NewSumReader()
	var (
		u8   uint8
		u64  uint64
		list []uint64
		str  string
		b    bool
		a    common.Address
		am1  *amount.Amount
		am2  *amount.Amount
	)
	_, err = sr.Uint8(&buf, &u8)
	require.NoError(t, err)
	_, err = sr.Uint64(&buf, &u64)
	require.NoError(t, err)
	_, err = sr.Uint64Slice(&buf, &list)
	require.NoError(t, err)
	_, err = sr.String(&buf, &str)
	require.NoError(t, err)
	_, err = sr.Bool(&buf, &b)
	require.NoError(t, err)
	_, err = sr.Address(&buf, &a)
	require.NoError(t, err)
	_, err = sr.Amount(&buf, &am1)
	require.NoError(t, err)
	_, err = sr.Amount(&buf, &am2)
	require.NoError(t, err)

	assert.Equal(t, uint8(7), u8)
	assert.Equal(t, uint64(1<<40), u64)
	assert.Equal(t, []uint64{10, 24, 48}, list)
	assert.Equal(t, "BST", str)
	assert.True(t, b)
	assert.Equal(t, addr, a)
	assert.True(t, am.Equal(am1))
	assert.True(t, am2.IsZero())
	assert.Equal(t, sw.Sum(), sr.Sum())
}

func TestReadBytesTruncated(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteUint32(&buf, 10)
	require.NoError(t, err)
	buf.Write([]byte{1, 2, 3})

	_, _, err = ReadBytes(&buf)
	assert.Error(t, err)
}
