package stf_test

import (
	"errors"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/stf"
	"github.com/stewi1014/stf/encio"
)

const (
	tagPoint  stf.Tag = 1
	tagPoints stf.Tag = 2
	tagShape  stf.Tag = 3
	tagLabels stf.Tag = 4
)

type Point struct {
	X, Y int32
}

func (*Point) Tag() stf.Tag              { return tagPoint }
func (*Point) Metadata() ([]byte, error) { return nil, nil }
func (p *Point) Data(*stf.Encoder) ([]byte, error) {
	var b encio.Buffer
	b.PutInt32(p.X)
	b.PutInt32(p.Y)
	return b, nil
}

func decodePoint(_ *stf.Decoder, meta, data []byte) (stf.Node, error) {
	if len(meta) != 0 {
		return nil, encio.NewError(encio.ErrMalformed, "point has metadata", 0)
	}
	r := encio.NewReader(data)
	x, err := r.Int32()
	if err != nil {
		return nil, err
	}
	y, err := r.Int32()
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, encio.Errorf(encio.ErrMalformed, "%v extra bytes", r.Len())
	}
	return &Point{X: x, Y: y}, nil
}

// Shape nests an array inside a composite with its own leaves.
// Its metadata is a single flags byte.
type Shape struct {
	Name   string
	Closed bool
	Points *stf.Array[*Point]
}

const shapeHasPoints = 1

func (*Shape) Tag() stf.Tag { return tagShape }

func (s *Shape) Metadata() ([]byte, error) {
	var flags byte
	if s.Points != nil {
		flags |= shapeHasPoints
	}
	return []byte{flags}, nil
}

func (s *Shape) Data(e *stf.Encoder) ([]byte, error) {
	var b encio.Buffer
	if err := b.PutString(s.Name); err != nil {
		return nil, err
	}
	b.PutBool(s.Closed)
	if s.Points == nil {
		return b, nil
	}
	return e.AppendNode(b, s.Points)
}

func decodeShape(d *stf.Decoder, meta, data []byte) (stf.Node, error) {
	if len(meta) != 1 {
		return nil, encio.NewError(encio.ErrMalformed, "shape metadata must be one byte", 0)
	}
	s := new(Shape)
	r := encio.NewReader(data)

	var err error
	if s.Name, err = r.String(); err != nil {
		return nil, err
	}
	if s.Closed, err = r.Bool(); err != nil {
		return nil, err
	}

	if meta[0]&shapeHasPoints != 0 {
		n, err := d.DecodeNext(r)
		if err != nil {
			return nil, err
		}
		points, ok := n.(*stf.Array[*Point])
		if !ok {
			return nil, encio.Errorf(encio.ErrMalformed, "shape points are %T", n)
		}
		s.Points = points
	}

	if r.Len() != 0 {
		return nil, encio.NewError(encio.ErrMalformed, "trailing shape data", 0)
	}
	return s, nil
}

func newTestRegistry(t testing.TB) *stf.Registry {
	r := stf.NewRegistry()
	td.CmpNoError(t, r.Register(tagPoint, "point", decodePoint))
	td.CmpNoError(t, stf.RegisterArray[*Point](r, tagPoints, tagPoint, "points"))
	td.CmpNoError(t, r.Register(tagShape, "shape", decodeShape))
	td.CmpNoError(t, stf.RegisterArray[stf.String](r, tagLabels, stf.TagString, "labels"))
	return r
}

func cmpErrorIs(t testing.TB, err error, targets ...error) {
	t.Helper()
	for _, target := range targets {
		if errors.Is(err, target) {
			return
		}
	}
	t.Fatalf("want error wrapping one of %v, got %v", targets, err)
}
