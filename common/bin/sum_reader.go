package bin

import (
	"io"

	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
)

// SumReader accumulates the number of bytes read by a series of reads
type SumReader struct {
	sum int64
}

func NewSumReader() *SumReader {
	return &SumReader{
		sum: 0,
	}
}

func (sr *SumReader) Uint8(r io.Reader, p *uint8) (int64, error) {
	if v, n, err := ReadUint8(r); err != nil {
		return sr.sum, err
	} else {
		sr.sum += n
		(*p) = v
		return sr.sum, nil
	}
}

func (sr *SumReader) Uint32(r io.Reader, p *uint32) (int64, error) {
	if v, n, err := ReadUint32(r); err != nil {
		return sr.sum, err
	} else {
		sr.sum += n
		(*p) = v
		return sr.sum, nil
	}
}

func (sr *SumReader) GetUint32(r io.Reader) (uint32, int64, error) {
	if v, n, err := ReadUint32(r); err != nil {
		return 0, sr.sum, err
	} else {
		sr.sum += n
		return v, sr.sum, nil
	}
}

func (sr *SumReader) Uint64(r io.Reader, p *uint64) (int64, error) {
	if v, n, err := ReadUint64(r); err != nil {
		return sr.sum, err
	} else {
		sr.sum += n
		(*p) = v
		return sr.sum, nil
	}
}

func (sr *SumReader) Uint64Slice(r io.Reader, p *[]uint64) (int64, error) {
	Len, _, err := sr.GetUint32(r)
	if err != nil {
		return sr.sum, err
	}
	if Len > MaxBytesLength/8 {
		return sr.sum, errors.WithStack(ErrInvalidLength)
	}
	vs := make([]uint64, Len)
	for i := range vs {
		if _, err := sr.Uint64(r, &vs[i]); err != nil {
			return sr.sum, err
		}
	}
	(*p) = vs
	return sr.sum, nil
}

func (sr *SumReader) Bytes(r io.Reader, p *[]byte) (int64, error) {
	if v, n, err := ReadBytes(r); err != nil {
		return sr.sum, err
	} else {
		sr.sum += n
		(*p) = v
		return sr.sum, nil
	}
}

func (sr *SumReader) String(r io.Reader, p *string) (int64, error) {
	if v, n, err := ReadString(r); err != nil {
		return sr.sum, err
	} else {
		sr.sum += n
		(*p) = v
		return sr.sum, nil
	}
}

func (sr *SumReader) Bool(r io.Reader, p *bool) (int64, error) {
	if v, n, err := ReadBool(r); err != nil {
		return sr.sum, err
	} else {
		sr.sum += n
		(*p) = v
		return sr.sum, nil
	}
}

func (sr *SumReader) Address(r io.Reader, p *common.Address) (int64, error) {
	var addr common.Address
	if n, err := FillBytes(r, addr[:]); err != nil {
		return sr.sum, err
	} else {
		sr.sum += n
		(*p) = addr
		return sr.sum, nil
	}
}

func (sr *SumReader) Amount(r io.Reader, p **amount.Amount) (int64, error) {
	var bs []byte
	if _, err := sr.Bytes(r, &bs); err != nil {
		return sr.sum, err
	}
	(*p) = amount.NewAmountFromBytes(bs)
	return sr.sum, nil
}

func (sr *SumReader) Sum() int64 {
	return sr.sum
}
