// Package inspect describes encoded stf Nodes without reconstructing them.
//
// Walk only needs the framing rules, so it works on streams holding types the caller has never registered.
// Where a Registry is given, it is used to name the tags it knows.
package inspect

import (
	"encoding/hex"

	"github.com/stewi1014/stf"
	"github.com/stewi1014/stf/encio"
)

// Bytes is a byte slice that renders as hex in text and YAML output.
type Bytes []byte

func (b Bytes) String() string { return hex.EncodeToString(b) }

// MarshalYAML implements yaml.Marshaler
func (b Bytes) MarshalYAML() (interface{}, error) { return b.String(), nil }

// Entry describes one framed Node.
type Entry struct {
	// Offset is the position of the Node's tag, from the start of the walked bytes.
	Offset int     `yaml:"offset" cbor:"offset"`
	Tag    stf.Tag `yaml:"tag" cbor:"tag"`
	// Name is the registered name of Tag, if known.
	Name    string `yaml:"name,omitempty" cbor:"name,omitempty"`
	MetaLen int    `yaml:"meta_len" cbor:"meta_len"`
	Meta    Bytes  `yaml:"meta,omitempty" cbor:"meta,omitempty"`
	DataLen int    `yaml:"data_len" cbor:"data_len"`

	// Value is the primitive held by a scalar Node.
	Value interface{} `yaml:"value,omitempty" cbor:"value,omitempty"`

	// Children are the Nodes framed in the data range.
	// They are only set when the whole data range parses as a sequence of frames.
	Children []*Entry `yaml:"children,omitempty" cbor:"children,omitempty"`

	// Data is the raw data range of Nodes without Children or Value.
	Data Bytes `yaml:"data,omitempty" cbor:"data,omitempty"`
}

// Size returns the size of the framed Node.
func (e *Entry) Size() int {
	return stf.FrameHeaderSize + e.MetaLen + e.DataLen
}

// Count returns the number of entries in the tree rooted at e.
func (e *Entry) Count() int {
	n := 1
	for _, c := range e.Children {
		n += c.Count()
	}
	return n
}

// Walk describes the single Node encoded in b, with default limits.
// r may be nil, in which case no Entry is named.
func Walk(b []byte, r *stf.Registry) (*Entry, error) {
	return NewWalker(r, nil).Walk(b)
}

// WalkAll describes every Node in b with default limits.
func WalkAll(b []byte, r *stf.Registry) ([]*Entry, error) {
	return NewWalker(r, nil).WalkAll(b)
}

// NewWalker returns a Walker naming tags with r, and bounded by the limits in c.
// r may be nil. If c is nil, stf.DefaultConfig() is used, and zero fields of c take their defaults.
func NewWalker(r *stf.Registry, c *stf.Config) *Walker {
	config := *stf.DefaultConfig()
	if c != nil {
		if c.MaxDepth > 0 {
			config.MaxDepth = c.MaxDepth
		}
		if c.MaxNodeSize > 0 {
			config.MaxNodeSize = c.MaxNodeSize
		}
	}

	return &Walker{
		registry: r,
		config:   config,
	}
}

// Walker describes encoded Nodes, enforcing the same limits as a stf.Decoder with the same Config.
// It is never modified while walking, and is safe for concurrent use.
type Walker struct {
	registry *stf.Registry
	config   stf.Config
}

// Config returns a copy of the Walker's Config.
func (w *Walker) Config() stf.Config {
	return w.config
}

// Walk describes the single Node encoded in b.
//
// It fails if b does not hold exactly one well framed Node, with the errors stf.Decoder gives;
// ErrTruncated for short input, ErrMalformed for trailing bytes, ErrTooBig for a range over MaxNodeSize,
// and ErrMalformed for frames nested deeper than MaxDepth.
func (w *Walker) Walk(b []byte) (*Entry, error) {
	rd := encio.NewReader(b)
	e, err := w.walk(rd, 0, 0)
	if err != nil {
		return nil, err
	}
	if rd.Len() != 0 {
		return nil, encio.Errorf(encio.ErrMalformed, "%v trailing bytes after %v", rd.Len(), e.Tag)
	}
	return e, nil
}

// WalkAll describes every Node in b, which holds zero or more Nodes back to back.
func (w *Walker) WalkAll(b []byte) ([]*Entry, error) {
	var entries []*Entry
	rd := encio.NewReader(b)
	for rd.Len() > 0 {
		e, err := w.walk(rd, 0, 0)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// walk describes the next Node in rd, which sits at the given depth, the root being depth 0.
func (w *Walker) walk(rd *encio.Reader, base, depth int) (*Entry, error) {
	offset := base + rd.Offset()
	f, err := stf.ReadFrame(rd)
	if err != nil {
		return nil, err
	}

	if err := w.checkSize("metadata", f.Tag, len(f.Meta)); err != nil {
		return nil, err
	}
	if err := w.checkSize("data", f.Tag, len(f.Data)); err != nil {
		return nil, err
	}

	e := &Entry{
		Offset:  offset,
		Tag:     f.Tag,
		MetaLen: len(f.Meta),
		DataLen: len(f.Data),
	}
	if len(f.Meta) > 0 {
		e.Meta = Bytes(f.Meta)
	}
	if w.registry != nil {
		e.Name, _ = w.registry.Name(f.Tag)
	}

	if kind, ok := stf.ScalarKind(f.Tag); ok {
		if v, n, err := encio.DecodePrimitive(f.Data, kind); err == nil && n == len(f.Data) && len(f.Meta) == 0 {
			if b, ok := v.([]byte); ok {
				v = Bytes(b)
			}
			e.Value = v
			return e, nil
		}
	} else {
		e.Children, err = w.frames(f.Data, offset+stf.FrameHeaderSize+len(f.Meta), depth+1)
		if err != nil {
			return nil, err
		}
	}

	if e.Children == nil && len(f.Data) > 0 {
		e.Data = Bytes(f.Data)
	}
	return e, nil
}

// frames returns the entries framed in data, or nil if data is not exactly a sequence of frames.
// Frames found deeper than MaxDepth are an error.
func (w *Walker) frames(data []byte, base, depth int) ([]*Entry, error) {
	if len(data) == 0 || !isFrames(data) {
		return nil, nil
	}

	if depth >= w.config.MaxDepth {
		return nil, encio.Errorf(
			encio.ErrMalformed,
			"frames at offset %v are nested deeper than %v", base, w.config.MaxDepth,
		)
	}

	var entries []*Entry
	rd := encio.NewReader(data)
	for rd.Len() > 0 {
		e, err := w.walk(rd, base, depth)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (w *Walker) checkSize(what string, tag stf.Tag, size int) error {
	if uint64(size) > uint64(w.config.MaxNodeSize) {
		return encio.Errorf(encio.ErrTooBig, "%v of %v is %v bytes, limit is %v", what, tag, size, w.config.MaxNodeSize)
	}
	return nil
}

// isFrames reports whether data is exactly a sequence of frames.
func isFrames(data []byte) bool {
	rd := encio.NewReader(data)
	for rd.Len() > 0 {
		if _, err := stf.ReadFrame(rd); err != nil {
			return false
		}
	}
	return true
}
