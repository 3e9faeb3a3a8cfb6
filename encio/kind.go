package encio

import (
	"fmt"
	"unicode/utf8"
)

// Kind is a primitive leaf kind.
type Kind uint8

// Primitive kinds.
const (
	Invalid Kind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
	Bytes
)

// LenSize is the width of every length prefix in the format.
const LenSize = 4

var kindNames = [...]string{
	Invalid: "invalid",
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	String:  "string",
	Bytes:   "bytes",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Size returns the encoded width of k in bytes, or -1 if k is length-prefixed.
func (k Kind) Size() int {
	switch k {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return -1
	}
}

// KindOf returns the Kind of v, or Invalid if v is not a primitive.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case string:
		return String
	case []byte:
		return Bytes
	default:
		return Invalid
	}
}

// AppendPrimitive appends the encoding of v to buff.
// v must be one of the Go types listed by KindOf; int and uint are refused as their width is platform dependent.
func AppendPrimitive(buff []byte, v interface{}) ([]byte, error) {
	b := Buffer(buff)
	switch v := v.(type) {
	case bool:
		b.PutBool(v)
	case int8:
		b.PutInt8(v)
	case int16:
		b.PutInt16(v)
	case int32:
		b.PutInt32(v)
	case int64:
		b.PutInt64(v)
	case uint8:
		b.PutUint8(v)
	case uint16:
		b.PutUint16(v)
	case uint32:
		b.PutUint32(v)
	case uint64:
		b.PutUint64(v)
	case float32:
		b.PutFloat32(v)
	case float64:
		b.PutFloat64(v)
	case string:
		if err := b.PutString(v); err != nil {
			return buff, err
		}
	case []byte:
		if err := b.PutBytes(v); err != nil {
			return buff, err
		}
	default:
		return buff, Errorf(ErrBadType, "%T is not a primitive", v)
	}
	return b, nil
}

// DecodePrimitive decodes a value of kind k from the start of buff.
// It returns the value and the number of bytes consumed.
func DecodePrimitive(buff []byte, k Kind) (interface{}, int, error) {
	r := NewReader(buff)
	var (
		v   interface{}
		err error
	)
	switch k {
	case Bool:
		v, err = r.Bool()
	case Int8:
		v, err = r.Int8()
	case Int16:
		v, err = r.Int16()
	case Int32:
		v, err = r.Int32()
	case Int64:
		v, err = r.Int64()
	case Uint8:
		v, err = r.Uint8()
	case Uint16:
		v, err = r.Uint16()
	case Uint32:
		v, err = r.Uint32()
	case Uint64:
		v, err = r.Uint64()
	case Float32:
		v, err = r.Float32()
	case Float64:
		v, err = r.Float64()
	case String:
		v, err = r.String()
	case Bytes:
		v, err = r.Bytes()
	default:
		return nil, 0, Errorf(ErrBadType, "cannot decode %v", k)
	}
	if err != nil {
		return nil, 0, err
	}
	return v, r.Offset(), nil
}

func validString(b []byte) error {
	if !utf8.Valid(b) {
		return NewError(ErrInvalidEncoding, "string is not valid UTF-8", 1)
	}
	return nil
}
