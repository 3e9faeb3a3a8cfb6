package encio

import (
	"fmt"
	"math"
)

// NewReader returns a Reader reading from buff.
func NewReader(buff []byte) *Reader {
	return &Reader{buff: buff}
}

// Reader reads primitives from a byte slice.
// Every read fails with ErrTruncated if fewer bytes remain than it needs, and consumes nothing in that case.
type Reader struct {
	buff []byte
	off  int
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.buff) - r.off }

// Offset returns the number of bytes read so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the unread bytes without consuming them.
func (r *Reader) Remaining() []byte { return r.buff[r.off:] }

// Next consumes and returns the next n bytes.
// The returned slice aliases the Reader's buffer.
func (r *Reader) Next(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, NewError(
			ErrTruncated,
			fmt.Sprintf("want %v bytes at offset %v but only %v remain", n, r.off, r.Len()),
			1,
		)
	}
	b := r.buff[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// Bool reads a bool.
func (r *Reader) Bool() (bool, error) {
	b, err := r.Next(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.off--
		return false, Errorf(ErrInvalidEncoding, "bool byte is %#x", b[0])
	}
}

// Int8 reads an int8.
func (r *Reader) Int8() (int8, error) {
	n, err := r.Uint8()
	return int8(n), err
}

// Uint8 reads a uint8.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.Next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Int16 reads an int16.
func (r *Reader) Int16() (int16, error) {
	n, err := r.Uint16()
	return int16(n), err
}

// Uint16 reads a uint16.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.Next(2)
	if err != nil {
		return 0, err
	}
	return DecodeUint16(b), nil
}

// Int32 reads an int32.
func (r *Reader) Int32() (int32, error) {
	b, err := r.Next(4)
	if err != nil {
		return 0, err
	}
	return DecodeInt32(b), nil
}

// Uint32 reads a uint32.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Next(4)
	if err != nil {
		return 0, err
	}
	return DecodeUint32(b), nil
}

// Int64 reads an int64.
func (r *Reader) Int64() (int64, error) {
	n, err := r.Uint64()
	return int64(n), err
}

// Uint64 reads a uint64.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.Next(8)
	if err != nil {
		return 0, err
	}
	return DecodeUint64(b), nil
}

// Float32 reads a float32.
func (r *Reader) Float32() (float32, error) {
	n, err := r.Uint32()
	return math.Float32frombits(n), err
}

// Float64 reads a float64.
func (r *Reader) Float64() (float64, error) {
	n, err := r.Uint64()
	return math.Float64frombits(n), err
}

// Sized reads a length prefix and the bytes it covers.
// The returned slice aliases the Reader's buffer.
func (r *Reader) Sized() ([]byte, error) {
	start := r.off
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(r.Len()) {
		r.off = start
		return nil, Errorf(
			ErrTruncated,
			"length prefix at offset %v declares %v bytes but only %v remain", start, n, r.Len(),
		)
	}
	return r.Next(int(n))
}

// Bytes reads a length-prefixed byte slice into a new slice.
func (r *Reader) Bytes() ([]byte, error) {
	b, err := r.Sized()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// String reads a length-prefixed UTF-8 string.
func (r *Reader) String() (string, error) {
	start := r.off
	b, err := r.Sized()
	if err != nil {
		return "", err
	}
	if err := validString(b); err != nil {
		r.off = start
		return "", err
	}
	return string(b), nil
}
