package stf

import "github.com/stewi1014/stf/encio"

// NewArray returns an Array with the given tag, holding elems, whose elements must all have the tag elem.
func NewArray[T Node](tag, elem Tag, elems ...T) *Array[T] {
	return &Array[T]{
		tag:   tag,
		elem:  elem,
		Elems: elems,
	}
}

// Array is an ordered sequence of Nodes of one type.
//
// Its metadata is the element count, and its data is the full envelope of each element in order.
// Every element carries its own tag, even though they are all the same.
//
// Each instantiation needs its own tag, registered with RegisterArray.
type Array[T Node] struct {
	tag   Tag
	elem  Tag
	Elems []T
}

// RegisterArray registers Array[T] under tag in r, with elements tagged elem.
func RegisterArray[T Node](r *Registry, tag, elem Tag, name string) error {
	return r.Register(tag, name, func(d *Decoder, meta, data []byte) (Node, error) {
		a, err := DecodeArray[T](d, tag, elem, meta, data)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}

// Tag implements Node
func (a *Array[T]) Tag() Tag { return a.tag }

// ElemTag returns the tag every element must have.
func (a *Array[T]) ElemTag() Tag { return a.elem }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.Elems) }

// Metadata implements Node. It is the element count.
func (a *Array[T]) Metadata() ([]byte, error) {
	var b encio.Buffer
	if err := b.PutLen(len(a.Elems)); err != nil {
		return nil, err
	}
	return b, nil
}

// Data implements Node.
// It fails with ErrBadType if an element's tag is not ElemTag().
func (a *Array[T]) Data(e *Encoder) ([]byte, error) {
	var (
		buff []byte
		err  error
	)
	for i, elem := range a.Elems {
		if isNil(elem) {
			return nil, encio.Errorf(encio.ErrNilNode, "element %v of %v is nil", i, a.tag)
		}
		if elem.Tag() != a.elem {
			return nil, encio.Errorf(
				encio.ErrBadType,
				"element %v of %v has tag %v, want %v", i, a.tag, elem.Tag(), a.elem,
			)
		}
		buff, err = e.AppendNode(buff, elem)
		if err != nil {
			return nil, err
		}
	}
	return buff, nil
}

// DecodeArray reconstructs an Array[T] from its metadata and data.
//
// The count in meta must match the number of elements in data exactly.
// A count that cannot fit in data is ErrTruncated, extra elements are ErrMalformed,
// and an element with a tag other than elem is ErrMalformed.
func DecodeArray[T Node](d *Decoder, tag, elem Tag, meta, data []byte) (*Array[T], error) {
	if len(meta) != encio.LenSize {
		return nil, encio.Errorf(
			encio.ErrMalformed,
			"array %v has %v bytes of metadata, want %v", tag, len(meta), encio.LenSize,
		)
	}

	count := encio.DecodeUint32(meta)
	if uint64(count)*FrameHeaderSize > uint64(len(data)) {
		return nil, encio.Errorf(
			encio.ErrTruncated,
			"array %v claims %v elements, but only has %v bytes of data", tag, count, len(data),
		)
	}

	a := &Array[T]{
		tag:  tag,
		elem: elem,
	}
	if count > 0 {
		a.Elems = make([]T, 0, count)
	}

	r := encio.NewReader(data)
	for i := uint32(0); i < count; i++ {
		if r.Len() >= 4 {
			if got := Tag(encio.DecodeUint32(r.Remaining())); got != elem {
				return nil, encio.Errorf(
					encio.ErrMalformed,
					"element %v of array %v has tag %v, want %v", i, tag, got, elem,
				)
			}
		}

		n, err := d.DecodeNext(r)
		if err != nil {
			return nil, err
		}

		t, ok := n.(T)
		if !ok {
			var want T
			return nil, encio.Errorf(
				encio.ErrBadType,
				"element %v of array %v decoded as %T, want %T", i, tag, n, want,
			)
		}
		a.Elems = append(a.Elems, t)
	}

	if r.Len() != 0 {
		return nil, encio.Errorf(
			encio.ErrMalformed,
			"array %v has %v elements but %v bytes remain after them", tag, count, r.Len(),
		)
	}

	return a, nil
}
