package stf

import "github.com/stewi1014/stf/encio"

// Tags at and above TagReserved belong to the scalar Nodes, and are registered in every Registry made by NewRegistry.
const TagReserved Tag = 0xFFFFFF00

// Tags of the scalar Nodes.
const (
	TagBool Tag = TagReserved + 1 + iota
	TagInt8
	TagInt16
	TagInt32
	TagInt64
	TagUint8
	TagUint16
	TagUint32
	TagUint64
	TagFloat32
	TagFloat64
	TagString
	TagBytes
)

// Scalar Nodes wrap a single primitive, with no metadata.
// They let primitives be array elements, or the root of a stream.
type (
	Bool    bool
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Float32 float32
	Float64 float64
	String  string
	Bytes   []byte
)

// Tag implements Node
func (Bool) Tag() Tag { return TagBool }

// Tag implements Node
func (Int8) Tag() Tag { return TagInt8 }

// Tag implements Node
func (Int16) Tag() Tag { return TagInt16 }

// Tag implements Node
func (Int32) Tag() Tag { return TagInt32 }

// Tag implements Node
func (Int64) Tag() Tag { return TagInt64 }

// Tag implements Node
func (Uint8) Tag() Tag { return TagUint8 }

// Tag implements Node
func (Uint16) Tag() Tag { return TagUint16 }

// Tag implements Node
func (Uint32) Tag() Tag { return TagUint32 }

// Tag implements Node
func (Uint64) Tag() Tag { return TagUint64 }

// Tag implements Node
func (Float32) Tag() Tag { return TagFloat32 }

// Tag implements Node
func (Float64) Tag() Tag { return TagFloat64 }

// Tag implements Node
func (String) Tag() Tag { return TagString }

// Tag implements Node
func (Bytes) Tag() Tag { return TagBytes }

// Metadata implements Node. It is empty.
func (Bool) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Int8) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Int16) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Int32) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Int64) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Uint8) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Uint16) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Uint32) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Uint64) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Float32) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Float64) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (String) Metadata() ([]byte, error) { return nil, nil }

// Metadata implements Node. It is empty.
func (Bytes) Metadata() ([]byte, error) { return nil, nil }

// Data implements Node
func (v Bool) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, bool(v)) }

// Data implements Node
func (v Int8) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, int8(v)) }

// Data implements Node
func (v Int16) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, int16(v)) }

// Data implements Node
func (v Int32) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, int32(v)) }

// Data implements Node
func (v Int64) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, int64(v)) }

// Data implements Node
func (v Uint8) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, uint8(v)) }

// Data implements Node
func (v Uint16) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, uint16(v)) }

// Data implements Node
func (v Uint32) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, uint32(v)) }

// Data implements Node
func (v Uint64) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, uint64(v)) }

// Data implements Node
func (v Float32) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, float32(v)) }

// Data implements Node
func (v Float64) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, float64(v)) }

// Data implements Node
func (v String) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, string(v)) }

// Data implements Node
func (v Bytes) Data(*Encoder) ([]byte, error) { return encio.AppendPrimitive(nil, []byte(v)) }

type builtinType struct {
	tag  Tag
	name string
	kind encio.Kind
	wrap func(interface{}) Node
}

var builtin = []builtinType{
	{TagBool, "bool", encio.Bool, func(v interface{}) Node { return Bool(v.(bool)) }},
	{TagInt8, "int8", encio.Int8, func(v interface{}) Node { return Int8(v.(int8)) }},
	{TagInt16, "int16", encio.Int16, func(v interface{}) Node { return Int16(v.(int16)) }},
	{TagInt32, "int32", encio.Int32, func(v interface{}) Node { return Int32(v.(int32)) }},
	{TagInt64, "int64", encio.Int64, func(v interface{}) Node { return Int64(v.(int64)) }},
	{TagUint8, "uint8", encio.Uint8, func(v interface{}) Node { return Uint8(v.(uint8)) }},
	{TagUint16, "uint16", encio.Uint16, func(v interface{}) Node { return Uint16(v.(uint16)) }},
	{TagUint32, "uint32", encio.Uint32, func(v interface{}) Node { return Uint32(v.(uint32)) }},
	{TagUint64, "uint64", encio.Uint64, func(v interface{}) Node { return Uint64(v.(uint64)) }},
	{TagFloat32, "float32", encio.Float32, func(v interface{}) Node { return Float32(v.(float32)) }},
	{TagFloat64, "float64", encio.Float64, func(v interface{}) Node { return Float64(v.(float64)) }},
	{TagString, "string", encio.String, func(v interface{}) Node { return String(v.(string)) }},
	{TagBytes, "bytes", encio.Bytes, func(v interface{}) Node { return Bytes(v.([]byte)) }},
}

func (b builtinType) reconstructor() Reconstructor {
	return func(_ *Decoder, meta, data []byte) (Node, error) {
		if len(meta) != 0 {
			return nil, encio.Errorf(encio.ErrMalformed, "%v has %v bytes of metadata, want none", b.name, len(meta))
		}

		v, n, err := encio.DecodePrimitive(data, b.kind)
		if err != nil {
			return nil, err
		}
		if n != len(data) {
			return nil, encio.Errorf(encio.ErrMalformed, "%v has %v bytes of data, used %v", b.name, len(data), n)
		}

		return b.wrap(v), nil
	}
}

// ScalarKind returns the primitive kind held by the scalar Node with the given tag.
// It returns false for tags that are not scalar tags.
func ScalarKind(tag Tag) (encio.Kind, bool) {
	for _, b := range builtin {
		if b.tag == tag {
			return b.kind, true
		}
	}
	return encio.Invalid, false
}
