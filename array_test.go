package stf_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/stf"
	"github.com/stewi1014/stf/encio"
)

func TestArrayEncodeWrongElementTag(t *testing.T) {
	a := stf.NewArray[stf.Node](tagPoints, tagPoint, &Point{1, 2}, stf.Int32(3))

	_, err := stf.Marshal(a)
	cmpErrorIs(t, err, stf.ErrBadType)
}

func TestArrayDecodeWrongElementTag(t *testing.T) {
	b := append([]byte{}, pointArrayBytes...)
	b[16] = byte(tagShape) // first element's tag

	_, err := stf.NewDecoder(newTestRegistry(t), nil).Decode(b)
	cmpErrorIs(t, err, stf.ErrMalformed)
}

func TestArrayDecodeWrongGoType(t *testing.T) {
	// elements are tagged as points, but the registry binds that tag to a different type.
	r := stf.NewRegistry()
	td.CmpNoError(t, r.Register(tagPoint, "not a point", func(*stf.Decoder, []byte, []byte) (stf.Node, error) {
		return &notPoint{}, nil
	}))
	td.CmpNoError(t, stf.RegisterArray[*Point](r, tagPoints, tagPoint, "points"))

	_, err := stf.NewDecoder(r, nil).Decode(pointArrayBytes)
	cmpErrorIs(t, err, stf.ErrBadType)
}

type notPoint struct{}

func (*notPoint) Tag() stf.Tag                      { return tagPoint }
func (*notPoint) Metadata() ([]byte, error)         { return nil, nil }
func (*notPoint) Data(*stf.Encoder) ([]byte, error) { return nil, nil }

func TestArrayMetadataLength(t *testing.T) {
	dec := stf.NewDecoder(newTestRegistry(t), nil)

	for _, meta := range [][]byte{nil, {1, 0, 0}, {1, 0, 0, 0, 0}} {
		_, err := stf.DecodeArray[*Point](dec, tagPoints, tagPoint, meta, pointArrayBytes[16:])
		cmpErrorIs(t, err, stf.ErrMalformed)
	}

	a, err := stf.DecodeArray[*Point](dec, tagPoints, tagPoint, pointArrayBytes[8:12], pointArrayBytes[16:])
	td.CmpNoError(t, err)
	td.Cmp(t, a.Len(), 1)
}

func TestArrayHugeCount(t *testing.T) {
	var meta encio.Buffer
	meta.PutUint32(1<<32 - 1)

	_, err := stf.DecodeArray[*Point](stf.NewDecoder(newTestRegistry(t), nil), tagPoints, tagPoint, meta, pointArrayBytes[16:])
	cmpErrorIs(t, err, stf.ErrTruncated)
}

func TestArrayOrderPreserved(t *testing.T) {
	points := make([]*Point, 100)
	for i := range points {
		points[i] = &Point{int32(i), int32(len(points) - i)}
	}

	b, err := stf.Marshal(stf.NewArray(tagPoints, tagPoint, points...))
	td.CmpNoError(t, err)

	a, err := stf.DecodeAs[*stf.Array[*Point]](stf.NewDecoder(newTestRegistry(t), nil), b)
	td.CmpNoError(t, err)
	td.Cmp(t, a.Elems, points)
}

func TestNestedArrays(t *testing.T) {
	const tagGrid stf.Tag = 10
	r := newTestRegistry(t)
	td.CmpNoError(t, stf.RegisterArray[*stf.Array[*Point]](r, tagGrid, tagPoints, "grid"))

	grid := stf.NewArray(tagGrid, tagPoints,
		stf.NewArray(tagPoints, tagPoint, &Point{0, 0}, &Point{0, 1}),
		stf.NewArray[*Point](tagPoints, tagPoint),
		stf.NewArray(tagPoints, tagPoint, &Point{2, 0}),
	)

	b, err := stf.Marshal(grid)
	td.CmpNoError(t, err)

	decoded, err := stf.NewDecoder(r, nil).Decode(b)
	td.CmpNoError(t, err)
	td.Cmp(t, decoded, grid)
}
