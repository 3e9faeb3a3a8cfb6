package encio

import (
	"fmt"
	"math"
)

// MaxLen is the largest length a 4 byte length prefix can carry.
const MaxLen = math.MaxUint32

// Buffer is an append-only byte buffer with methods for writing primitives.
// The zero value is ready to use.
type Buffer []byte

// Grow extends the buffer by n bytes, returning the offset of the new space.
func (b *Buffer) Grow(n int) int {
	l := len(*b)
	if cap(*b)-l >= n {
		*b = (*b)[:l+n]
		return l
	}

	nb := make([]byte, l+n, cap(*b)*2+n)
	copy(nb, *b)
	*b = nb
	return l
}

// Next grows the buffer by n bytes and returns the new space.
func (b *Buffer) Next(n int) []byte {
	off := b.Grow(n)
	return (*b)[off:]
}

// Write implements io.Writer
func (b *Buffer) Write(buff []byte) (int, error) {
	off := b.Grow(len(buff))
	return copy((*b)[off:], buff), nil
}

// WriteByte implements io.ByteWriter
func (b *Buffer) WriteByte(by byte) error {
	off := b.Grow(1)
	(*b)[off] = by
	return nil
}

// Len returns the number of bytes written.
func (b Buffer) Len() int { return len(b) }

// PutBool writes a bool as a single 0 or 1 byte.
func (b *Buffer) PutBool(v bool) {
	var by byte
	if v {
		by = 1
	}
	_ = b.WriteByte(by)
}

// PutInt8 writes an int8.
func (b *Buffer) PutInt8(v int8) { _ = b.WriteByte(byte(v)) }

// PutUint8 writes a uint8.
func (b *Buffer) PutUint8(v uint8) { _ = b.WriteByte(v) }

// PutInt16 writes an int16.
func (b *Buffer) PutInt16(v int16) { EncodeInt16(b.Next(2), v) }

// PutUint16 writes a uint16.
func (b *Buffer) PutUint16(v uint16) { EncodeUint16(b.Next(2), v) }

// PutInt32 writes an int32.
func (b *Buffer) PutInt32(v int32) { EncodeInt32(b.Next(4), v) }

// PutUint32 writes a uint32.
func (b *Buffer) PutUint32(v uint32) { EncodeUint32(b.Next(4), v) }

// PutInt64 writes an int64.
func (b *Buffer) PutInt64(v int64) { EncodeInt64(b.Next(8), v) }

// PutUint64 writes a uint64.
func (b *Buffer) PutUint64(v uint64) { EncodeUint64(b.Next(8), v) }

// PutFloat32 writes the IEEE 754 bits of a float32.
func (b *Buffer) PutFloat32(v float32) { b.PutUint32(math.Float32bits(v)) }

// PutFloat64 writes the IEEE 754 bits of a float64.
func (b *Buffer) PutFloat64(v float64) { b.PutUint64(math.Float64bits(v)) }

// PutLen writes a length prefix.
func (b *Buffer) PutLen(n int) error {
	if uint64(n) > MaxLen {
		return NewError(ErrTooBig, fmt.Sprintf("length %v does not fit in a length prefix", n), 1)
	}
	b.PutUint32(uint32(n))
	return nil
}

// PutBytes writes a length prefix followed by v.
func (b *Buffer) PutBytes(v []byte) error {
	if err := b.PutLen(len(v)); err != nil {
		return err
	}
	copy(b.Next(len(v)), v)
	return nil
}

// PutString writes a length prefix followed by the UTF-8 bytes of v.
// Strings that are not valid UTF-8 are refused, as they could not be decoded.
func (b *Buffer) PutString(v string) error {
	if err := validString([]byte(v)); err != nil {
		return err
	}
	if err := b.PutLen(len(v)); err != nil {
		return err
	}
	copy(b.Next(len(v)), v)
	return nil
}
