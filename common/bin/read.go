package bin

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MaxBytesLength limits the length prefix accepted by ReadBytes
const MaxBytesLength = 1 << 24

// ReadUint64 reads a uint64 number from the reader
func ReadUint64(r io.Reader) (uint64, int64, error) {
	BNum := make([]byte, 8)
	if n, err := FillBytes(r, BNum); err != nil {
		return 0, n, err
	}
	return binary.BigEndian.Uint64(BNum), 8, nil
}

// ReadUint32 reads a uint32 number from the reader
func ReadUint32(r io.Reader) (uint32, int64, error) {
	BNum := make([]byte, 4)
	if n, err := FillBytes(r, BNum); err != nil {
		return 0, n, err
	}
	return binary.BigEndian.Uint32(BNum), 4, nil
}

// ReadUint8 reads a uint8 number from the reader
func ReadUint8(r io.Reader) (uint8, int64, error) {
	BNum := make([]byte, 1)
	if n, err := FillBytes(r, BNum); err != nil {
		return 0, n, err
	}
	return BNum[0], 1, nil
}

// ReadBytes reads a length prefixed byte array from the reader
func ReadBytes(r io.Reader) ([]byte, int64, error) {
	var read int64
	Len, n, err := ReadUint32(r)
	read += n
	if err != nil {
		return nil, read, err
	}
	if Len > MaxBytesLength {
		return nil, read, errors.WithStack(ErrInvalidLength)
	}
	bs := make([]byte, Len)
	if Len == 0 {
		return bs, read, nil
	}
	n, err = FillBytes(r, bs)
	read += n
	if err != nil {
		return nil, read, err
	}
	return bs, read, nil
}

// ReadString reads a string array from the reader
func ReadString(r io.Reader) (string, int64, error) {
	if bs, n, err := ReadBytes(r); err != nil {
		return "", n, err
	} else {
		return string(bs), n, nil
	}
}

// ReadBool reads a bool using a uint8 from the reader
func ReadBool(r io.Reader) (bool, int64, error) {
	if v, n, err := ReadUint8(r); err != nil {
		return false, n, err
	} else {
		return (v == 1), n, nil
	}
}

// FillBytes reads bytes from the reader until the given bytes array is filled
func FillBytes(r io.Reader, bs []byte) (int64, error) {
	n, err := io.ReadFull(r, bs)
	if err != nil {
		return int64(n), errors.WithStack(err)
	}
	return int64(n), nil
}

// ReadFromBytes fills the reader from with the byte array
func ReadFromBytes(r io.ReaderFrom, bs []byte) (int64, error) {
	if n, err := r.ReadFrom(bytes.NewReader(bs)); err != nil {
		return n, errors.WithStack(err)
	} else {
		return n, nil
	}
}
