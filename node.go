package stf

import (
	"fmt"

	"github.com/stewi1014/stf/encio"
)

// Tag identifies a registered type on the wire.
// A type's tag must never change once data has been written with it.
type Tag uint32

func (t Tag) String() string {
	return fmt.Sprintf("%#x", uint32(t))
}

// Node is a value that can be written as a composite node.
//
// Metadata returns auxiliary bytes needed to interpret Data when decoding; an element count, a variant discriminant, etc.
// Types that need none return nil.
//
// Data returns the payload. Nested Nodes are written into it with e.AppendNode or e.Append.
type Node interface {
	Tag() Tag
	Metadata() ([]byte, error)
	Data(e *Encoder) ([]byte, error)
}

// Reconstructor rebuilds a Node from exactly the metadata and data its Metadata and Data methods produced.
// It must fail with an error wrapping ErrMalformed if type specific invariants are violated.
// Nested Nodes are decoded with d.DecodeNext or d.DecodeAll.
type Reconstructor func(d *Decoder, meta, data []byte) (Node, error)

// Errors returned by stf. See encio for details.
var (
	ErrTruncated       = encio.ErrTruncated
	ErrInvalidEncoding = encio.ErrInvalidEncoding
	ErrUnknownType     = encio.ErrUnknownType
	ErrDuplicateTag    = encio.ErrDuplicateTag
	ErrMalformed       = encio.ErrMalformed
	ErrBadType         = encio.ErrBadType
	ErrNilNode         = encio.ErrNilNode
	ErrTooBig          = encio.ErrTooBig
	ErrSealed          = encio.ErrSealed
)
