package bin

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// WriteUint64 writes the uint64 number to the writer
func WriteUint64(w io.Writer, num uint64) (int64, error) {
	BNum := make([]byte, 8)
	binary.BigEndian.PutUint64(BNum, num)
	return writeFull(w, BNum)
}

// WriteUint32 writes the uint32 number to the writer
func WriteUint32(w io.Writer, num uint32) (int64, error) {
	BNum := make([]byte, 4)
	binary.BigEndian.PutUint32(BNum, num)
	return writeFull(w, BNum)
}

// WriteUint8 writes the uint8 number to the writer
func WriteUint8(w io.Writer, num uint8) (int64, error) {
	return writeFull(w, []byte{num})
}

// WriteBytes writes the byte array with the uint32 length prefix to the writer
func WriteBytes(w io.Writer, bs []byte) (int64, error) {
	var wrote int64
	if n, err := WriteUint32(w, uint32(len(bs))); err != nil {
		return wrote, err
	} else {
		wrote += n
	}
	if len(bs) == 0 {
		return wrote, nil
	}
	if n, err := writeFull(w, bs); err != nil {
		return wrote + n, err
	} else {
		wrote += n
	}
	return wrote, nil
}

// WriteString writes the string with the length prefix to the writer
func WriteString(w io.Writer, str string) (int64, error) {
	return WriteBytes(w, []byte(str))
}

// WriteBool writes the bool using a uint8 to the writer
func WriteBool(w io.Writer, b bool) (int64, error) {
	if b {
		return WriteUint8(w, 1)
	}
	return WriteUint8(w, 0)
}

// WriterToBytes return bytes from writer to
func WriterToBytes(w io.WriterTo) ([]byte, int64, error) {
	var buffer bytes.Buffer
	if n, err := w.WriteTo(&buffer); err != nil {
		return nil, n, errors.WithStack(err)
	} else {
		return buffer.Bytes(), n, nil
	}
}

func writeFull(w io.Writer, bs []byte) (int64, error) {
	if n, err := w.Write(bs); err != nil {
		return int64(n), errors.WithStack(err)
	} else if n != len(bs) {
		return int64(n), errors.WithStack(ErrInvalidLength)
	} else {
		return int64(n), nil
	}
}
