package encio

// All integers are little-endian, on every platform.

// EncodeUint16 writes a uint16 to buff.
func EncodeUint16(buff []byte, n uint16) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
}

// DecodeUint16 reads a uint16 from buff.
func DecodeUint16(buff []byte) uint16 {
	n := uint16(buff[0])
	n |= uint16(buff[1]) << 8
	return n
}

// EncodeUint32 writes a uint32 to buff.
func EncodeUint32(buff []byte, n uint32) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
}

// DecodeUint32 reads a uint32 from buff.
func DecodeUint32(buff []byte) uint32 {
	n := uint32(buff[0])
	n |= uint32(buff[1]) << 8
	n |= uint32(buff[2]) << 16
	n |= uint32(buff[3]) << 24
	return n
}

// EncodeUint64 writes a uint64 to buff.
func EncodeUint64(buff []byte, n uint64) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
	buff[4] = uint8(n >> 32)
	buff[5] = uint8(n >> 40)
	buff[6] = uint8(n >> 48)
	buff[7] = uint8(n >> 56)
}

// DecodeUint64 reads a uint64 from buff.
func DecodeUint64(buff []byte) uint64 {
	n := uint64(buff[0])
	n |= uint64(buff[1]) << 8
	n |= uint64(buff[2]) << 16
	n |= uint64(buff[3]) << 24
	n |= uint64(buff[4]) << 32
	n |= uint64(buff[5]) << 40
	n |= uint64(buff[6]) << 48
	n |= uint64(buff[7]) << 56
	return n
}

// EncodeInt16 writes an int16 to buff.
func EncodeInt16(buff []byte, n int16) { EncodeUint16(buff, uint16(n)) }

// DecodeInt16 reads an int16 from buff.
func DecodeInt16(buff []byte) int16 { return int16(DecodeUint16(buff)) }

// EncodeInt32 writes an int32 to buff.
func EncodeInt32(buff []byte, n int32) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
}

// DecodeInt32 reads a int32 from buff.
func DecodeInt32(buff []byte) int32 {
	n := int32(buff[0])
	n |= int32(buff[1]) << 8
	n |= int32(buff[2]) << 16
	n |= int32(buff[3]) << 24
	return n
}

// EncodeInt64 writes an int64 to buff.
func EncodeInt64(buff []byte, n int64) { EncodeUint64(buff, uint64(n)) }

// DecodeInt64 reads an int64 from buff.
func DecodeInt64(buff []byte) int64 { return int64(DecodeUint64(buff)) }
