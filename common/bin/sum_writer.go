package bin

import (
	"io"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
)

// SumWriter accumulates the number of bytes written by a series of writes
type SumWriter struct {
	sum int64
}

func NewSumWriter() *SumWriter {
	return &SumWriter{
		sum: 0,
	}
}

func (sw *SumWriter) Uint8(w io.Writer, v uint8) (int64, error) {
	if n, err := WriteUint8(w, v); err != nil {
		return sw.sum, err
	} else {
		sw.sum += n
		return sw.sum, nil
	}
}

func (sw *SumWriter) Uint32(w io.Writer, v uint32) (int64, error) {
	if n, err := WriteUint32(w, v); err != nil {
		return sw.sum, err
	} else {
		sw.sum += n
		return sw.sum, nil
	}
}

func (sw *SumWriter) Uint64(w io.Writer, v uint64) (int64, error) {
	if n, err := WriteUint64(w, v); err != nil {
		return sw.sum, err
	} else {
		sw.sum += n
		return sw.sum, nil
	}
}

func (sw *SumWriter) Uint64Slice(w io.Writer, vs []uint64) (int64, error) {
	if _, err := sw.Uint32(w, uint32(len(vs))); err != nil {
		return sw.sum, err
	}
	for _, v := range vs {
		if _, err := sw.Uint64(w, v); err != nil {
			return sw.sum, err
		}
	}
	return sw.sum, nil
}

func (sw *SumWriter) Bytes(w io.Writer, v []byte) (int64, error) {
	if n, err := WriteBytes(w, v); err != nil {
		return sw.sum, err
	} else {
		sw.sum += n
		return sw.sum, nil
	}
}

func (sw *SumWriter) String(w io.Writer, v string) (int64, error) {
	if n, err := WriteString(w, v); err != nil {
		return sw.sum, err
	} else {
		sw.sum += n
		return sw.sum, nil
	}
}

func (sw *SumWriter) Bool(w io.Writer, v bool) (int64, error) {
	if n, err := WriteBool(w, v); err != nil {
		return sw.sum, err
	} else {
		sw.sum += n
		return sw.sum, nil
	}
}

func (sw *SumWriter) Address(w io.Writer, addr common.Address) (int64, error) {
	if n, err := writeFull(w, addr[:]); err != nil {
		return sw.sum, err
	} else {
		sw.sum += n
		return sw.sum, nil
	}
}

// Amount writes the absolute value of the amount; a nil amount is written as zero
func (sw *SumWriter) Amount(w io.Writer, am *amount.Amount) (int64, error) {
	var bs []byte
	if am != nil && am.Int != nil {
		bs = am.Bytes()
	}
	return sw.Bytes(w, bs)
}

func (sw *SumWriter) Sum() int64 {
	return sw.sum
}
