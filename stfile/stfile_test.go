package stfile_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	"github.com/stewi1014/stf"
	"github.com/stewi1014/stf/encio"
	"github.com/stewi1014/stf/stfile"
)

const tagLabels stf.Tag = 1

func newDecoder(t testing.TB, c *stf.Config) *stf.Decoder {
	r := stf.NewRegistry()
	require.NoError(t, stf.RegisterArray[stf.String](r, tagLabels, stf.TagString, "labels"))
	return stf.NewDecoder(r, c)
}

func labels(s ...stf.String) *stf.Array[stf.String] {
	return stf.NewArray(tagLabels, stf.TagString, s...)
}

func writeDoc(t testing.TB, n stf.Node) []byte {
	var buf bytes.Buffer
	require.NoError(t, stfile.Write(&buf, nil, n))
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	nodes := []stf.Node{
		stf.String("hello"),
		stf.Uint64(1 << 60),
		labels(),
		labels("one", "two", "three"),
	}

	d := newDecoder(t, nil)
	for _, n := range nodes {
		b := writeDoc(t, n)

		got, err := stfile.Read(bytes.NewReader(b), d)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestLayout(t *testing.T) {
	b := writeDoc(t, stf.String("hello"))

	node, err := stf.Marshal(stf.String("hello"))
	require.NoError(t, err)

	require.Len(t, b, stfile.HeaderSize+len(node)+stfile.DigestSize)
	require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE, 1, 0, 0, 0}, b[:stfile.HeaderSize])
	require.Equal(t, node, b[stfile.HeaderSize:len(b)-stfile.DigestSize])

	sum := blake3.Sum256(b[:len(b)-stfile.DigestSize])
	require.Equal(t, sum[:], b[len(b)-stfile.DigestSize:])

	doc, err := stfile.ReadRaw(bytes.NewReader(b), stf.Config{})
	require.NoError(t, err)
	require.Equal(t, stfile.Version, doc.Version)
	require.Equal(t, node, doc.Node)
	require.Equal(t, sum, doc.Digest)
}

func TestBadHeader(t *testing.T) {
	b := writeDoc(t, stf.String("hello"))

	bad := append([]byte(nil), b...)
	bad[0] ^= 0xFF
	_, err := stfile.ReadRaw(bytes.NewReader(bad), stf.Config{})
	require.ErrorIs(t, err, stfile.ErrBadMagic)
	require.ErrorIs(t, err, encio.ErrMalformed)

	bad = append([]byte(nil), b...)
	bad[4] = 2
	_, err = stfile.ReadRaw(bytes.NewReader(bad), stf.Config{})
	require.ErrorIs(t, err, stfile.ErrVersion)
	require.ErrorIs(t, err, encio.ErrMalformed)
}

func TestChecksum(t *testing.T) {
	b := writeDoc(t, stf.String("hello"))

	for _, i := range []int{
		len(b) - stfile.DigestSize - 1, // last byte of the string
		len(b) - 1,                     // last byte of the digest
	} {
		bad := append([]byte(nil), b...)
		bad[i] ^= 1

		_, err := stfile.Read(bytes.NewReader(bad), newDecoder(t, nil))
		require.ErrorIs(t, err, stfile.ErrChecksum, "byte %d", i)
		require.ErrorIs(t, err, encio.ErrMalformed, "byte %d", i)
	}
}

func TestTruncated(t *testing.T) {
	b := writeDoc(t, labels("a", "bc"))

	_, err := stfile.ReadRaw(bytes.NewReader(nil), stf.Config{})
	require.Equal(t, io.EOF, err)

	for i := 1; i < len(b); i++ {
		_, err := stfile.ReadRaw(bytes.NewReader(b[:i]), stf.Config{})
		require.ErrorIs(t, err, encio.ErrTruncated, "cut at %d of %d", i, len(b))

		var ioErr encio.IOError
		require.True(t, errors.As(err, &ioErr), "cut at %d of %d: %v", i, len(b), err)
	}
}

func TestLimits(t *testing.T) {
	b := writeDoc(t, labels("a", "bc"))

	// the data range is 2 string envelopes, far more than 16 bytes
	_, err := stfile.ReadRaw(bytes.NewReader(b), stf.Config{MaxNodeSize: 16})
	require.ErrorIs(t, err, encio.ErrTooBig)

	// the metadata range is the 4 byte count
	_, err = stfile.ReadRaw(bytes.NewReader(b), stf.Config{MaxNodeSize: 3})
	require.ErrorIs(t, err, encio.ErrTooBig)

	_, err = stfile.Read(bytes.NewReader(b), newDecoder(t, &stf.Config{MaxNodeSize: 16}))
	require.ErrorIs(t, err, encio.ErrTooBig)
}

func TestStream(t *testing.T) {
	want := []stf.Node{
		stf.Int32(-1),
		labels("x"),
		stf.Bytes{1, 2, 3},
	}

	var buf bytes.Buffer
	for _, n := range want {
		require.NoError(t, stfile.Write(&buf, nil, n))
	}

	d := newDecoder(t, nil)
	var got []stf.Node
	for {
		n, err := stfile.Read(&buf, d)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, n)
	}
	require.Equal(t, want, got)
}

func TestUnknownNode(t *testing.T) {
	b := writeDoc(t, labels("a"))

	// the digest is fine, but the default registry has no labels array
	_, err := stfile.Read(bytes.NewReader(b), stf.NewDecoder(stf.NewRegistry(), nil))
	require.ErrorIs(t, err, encio.ErrUnknownType)
}

type failWriter struct{}

var errFail = errors.New("fail")

func (failWriter) Write([]byte) (int, error) { return 0, errFail }

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer

	err := stfile.Write(&buf, nil, nil)
	require.ErrorIs(t, err, encio.ErrNilNode)
	require.Zero(t, buf.Len())

	err = stfile.Write(&buf, stf.NewEncoder(&stf.Config{MaxNodeSize: 2}), stf.String("hello"))
	require.ErrorIs(t, err, encio.ErrTooBig)
	require.Zero(t, buf.Len())

	err = stfile.Write(failWriter{}, nil, stf.String("hello"))
	require.ErrorIs(t, err, errFail)
}
