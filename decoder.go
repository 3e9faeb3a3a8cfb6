package stf

import (
	"fmt"

	"github.com/stewi1014/stf/encio"
)

// Unmarshal decodes a single Node from b using DefaultRegistry.
func Unmarshal(b []byte) (Node, error) {
	return NewDecoder(nil, nil).Decode(b)
}

// DecodeAs decodes a single Node from b, and asserts it is a T.
func DecodeAs[T Node](d *Decoder, b []byte) (T, error) {
	var zero T
	n, err := d.Decode(b)
	if err != nil {
		return zero, err
	}

	t, ok := n.(T)
	if !ok {
		return zero, encio.Errorf(encio.ErrBadType, "decoded %T (%v), want %T", n, n.Tag(), zero)
	}
	return t, nil
}

// NewDecoder returns a new Decoder resolving tags with r.
// If r is nil, DefaultRegistry is used. If c is nil, DefaultConfig() is used.
func NewDecoder(r *Registry, c *Config) *Decoder {
	if r == nil {
		r = DefaultRegistry
	}

	return &Decoder{
		registry: r,
		config:   *c.copyAndFill(),
	}
}

// Decoder reads Nodes.
// It is never modified while decoding, and is safe for concurrent use.
//
// Decoding seals the Decoder's Registry.
type Decoder struct {
	registry *Registry
	config   Config
	depth    int
}

// Registry returns the Registry d resolves tags with.
func (d *Decoder) Registry() *Registry {
	return d.registry
}

// Config returns a copy of the Decoder's Config.
func (d *Decoder) Config() Config {
	return d.config
}

// Decode decodes b, which must hold exactly one Node.
// Trailing bytes are ErrMalformed. On error, no Node is returned.
func (d *Decoder) Decode(b []byte) (Node, error) {
	r := encio.NewReader(b)
	n, err := d.DecodeNext(r)
	if err != nil {
		return nil, err
	}

	if r.Len() != 0 {
		return nil, encio.Errorf(
			encio.ErrMalformed,
			"%v trailing bytes after %v", r.Len(), n.Tag(),
		)
	}

	return n, nil
}

// DecodeAll decodes consecutive Nodes until data is exhausted.
func (d *Decoder) DecodeAll(data []byte) ([]Node, error) {
	var nodes []Node
	r := encio.NewReader(data)
	for r.Len() > 0 {
		n, err := d.DecodeNext(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// DecodeNext decodes the next Node from r.
// Reconstructors use it to decode nested Nodes from their data.
//
// The whole envelope is read before the tag is resolved,
// so a cut short stream is always ErrTruncated, even if the tag is also unknown.
func (d *Decoder) DecodeNext(r *encio.Reader) (Node, error) {
	d.registry.Seal()

	offset := r.Offset()
	f, err := ReadFrame(r)
	if err != nil {
		return nil, err
	}

	if err := d.checkSize("metadata", f.Tag, len(f.Meta)); err != nil {
		return nil, err
	}
	if err := d.checkSize("data", f.Tag, len(f.Data)); err != nil {
		return nil, err
	}

	fn, err := d.registry.Lookup(f.Tag)
	if err != nil {
		return nil, err
	}

	if d.depth >= d.config.MaxDepth {
		return nil, encio.Errorf(
			encio.ErrMalformed,
			"%v at offset %v is nested deeper than %v", f.Tag, offset, d.config.MaxDepth,
		)
	}

	child := *d
	child.depth++
	n, err := fn(&child, f.Meta, f.Data)
	if err != nil {
		return nil, err
	}

	if isNil(n) {
		return nil, encio.Errorf(encio.ErrMalformed, "reconstructor for %v returned nil", f.Tag)
	}
	if n.Tag() != f.Tag {
		return nil, encio.Errorf(
			encio.ErrMalformed,
			"reconstructor for %v returned %T with tag %v", f.Tag, n, n.Tag(),
		)
	}

	return n, nil
}

func (d *Decoder) checkSize(what string, tag Tag, size int) error {
	if uint64(size) > uint64(d.config.MaxNodeSize) {
		return encio.NewError(
			encio.ErrTooBig,
			fmt.Sprintf("%v of %v is %v bytes, limit is %v", what, tag, size, d.config.MaxNodeSize),
			1,
		)
	}
	return nil
}
