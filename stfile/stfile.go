// Package stfile stores a single stf Node as a self-checking document.
//
// A document is
//
//	Magic(4) Version(4) Node Digest(32)
//
// where Magic and Version are little-endian uint32s, Node is the envelope written by stf.Encoder,
// and Digest is the BLAKE3-256 sum of everything before it.
// Documents are read exactly; nothing after the digest is consumed, so documents can be concatenated on a stream.
package stfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/stewi1014/stf"
	"github.com/stewi1014/stf/encio"
)

const (
	// Magic begins every document.
	Magic uint32 = 0xDEADBEEF

	// Version is the document version written, and the only one read.
	Version uint32 = 1

	// HeaderSize is the size of Magic and Version.
	HeaderSize = 8

	// DigestSize is the size of the trailing digest.
	DigestSize = 32
)

var (
	// ErrBadMagic is returned when a document does not begin with Magic.
	ErrBadMagic = fmt.Errorf("bad magic number: %w", encio.ErrMalformed)

	// ErrVersion is returned for documents of an unsupported version.
	ErrVersion = fmt.Errorf("unsupported version: %w", encio.ErrMalformed)

	// ErrChecksum is returned when the digest does not match the document.
	ErrChecksum = fmt.Errorf("checksum mismatch: %w", encio.ErrMalformed)
)

// Document is a document read without decoding its Node.
type Document struct {
	Version uint32
	// Node is the encoded root Node.
	Node   []byte
	Digest [DigestSize]byte
}

// Write encodes n with e, and writes it to w as a document.
// If e is nil, a default Encoder is used.
// Nothing is written if encoding fails.
func Write(w io.Writer, e *stf.Encoder, n stf.Node) error {
	if e == nil {
		e = stf.NewEncoder(nil)
	}

	var b encio.Buffer
	b.PutUint32(Magic)
	b.PutUint32(Version)

	buff, err := e.AppendNode(b, n)
	if err != nil {
		return err
	}

	sum := blake3.Sum256(buff)
	buff = append(buff, sum[:]...)

	encio.Log.Debug().Int("bytes", len(buff)).Stringer("tag", n.Tag()).Msg("writing document")
	return encio.Write(buff, w)
}

// Read reads a document from r and decodes its Node with d.
// If d is nil, a Decoder using stf.DefaultRegistry is used.
// Like ReadRaw, it returns io.EOF if r has no more documents.
func Read(r io.Reader, d *stf.Decoder) (stf.Node, error) {
	if d == nil {
		d = stf.NewDecoder(nil, nil)
	}

	doc, err := ReadRaw(r, d.Config())
	if err != nil {
		return nil, err
	}

	return d.Decode(doc.Node)
}

// ReadRaw reads a document from r, verifying its header, framing and digest, without decoding the Node.
// Metadata and data ranges larger than limits.MaxNodeSize are refused before they are read.
// If r is already at its end, ReadRaw returns io.EOF itself, so a stream of documents can be read until io.EOF.
func ReadRaw(r io.Reader, limits stf.Config) (*Document, error) {
	if limits.MaxNodeSize == 0 {
		limits.MaxNodeSize = stf.DefaultMaxNodeSize
	}

	var b encio.Buffer
	switch n, err := io.ReadFull(r, b.Next(HeaderSize)); {
	case n == 0 && err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, encio.NewIOError(encio.ErrTruncated, fmt.Sprintf("header is %v bytes, only got %v", HeaderSize, n), 0)
	case err != nil:
		return nil, encio.NewIOError(err, "reading header", 0)
	}

	if magic := encio.DecodeUint32(b[0:]); magic != Magic {
		return nil, encio.Errorf(ErrBadMagic, "got %#x, want %#x", magic, Magic)
	}

	doc := &Document{Version: encio.DecodeUint32(b[4:])}
	if doc.Version != Version {
		return nil, encio.Errorf(ErrVersion, "got %v, want %v", doc.Version, Version)
	}

	// tag and metadata length
	if err := encio.Read(b.Next(8), r); err != nil {
		return nil, err
	}
	if err := readSized(&b, r, "metadata", limits.MaxNodeSize); err != nil {
		return nil, err
	}

	if err := encio.Read(b.Next(encio.LenSize), r); err != nil {
		return nil, err
	}
	if err := readSized(&b, r, "data", limits.MaxNodeSize); err != nil {
		return nil, err
	}

	if err := encio.Read(doc.Digest[:], r); err != nil {
		return nil, err
	}

	sum := blake3.Sum256(b)
	if !bytes.Equal(sum[:], doc.Digest[:]) {
		return nil, encio.Errorf(ErrChecksum, "document digest %x, computed %x", doc.Digest, sum)
	}

	doc.Node = b[HeaderSize:]
	encio.Log.Debug().Int("bytes", len(b)+DigestSize).Msg("read document")
	return doc, nil
}

// readSized reads the range covered by the length prefix that ends b.
func readSized(b *encio.Buffer, r io.Reader, what string, limit uint32) error {
	n := encio.DecodeUint32((*b)[len(*b)-encio.LenSize:])
	if n > limit {
		return encio.NewError(encio.ErrTooBig, fmt.Sprintf("%v is %v bytes, limit is %v", what, n, limit), 1)
	}
	if n == 0 {
		return nil
	}
	return encio.Read(b.Next(int(n)), r)
}
