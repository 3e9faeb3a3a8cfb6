package stf

import (
	"fmt"
	"reflect"

	"github.com/stewi1014/stf/encio"
)

var defaultEncoder = NewEncoder(nil)

// Marshal encodes n with a default Encoder.
func Marshal(n Node) ([]byte, error) {
	return defaultEncoder.Encode(n)
}

// NewEncoder returns a new Encoder. If c is nil, DefaultConfig() is used.
func NewEncoder(c *Config) *Encoder {
	return &Encoder{
		config: *c.copyAndFill(),
	}
}

// Encoder writes Nodes.
// It is never modified while encoding, and is safe for concurrent use.
type Encoder struct {
	config Config
	depth  int
}

// Config returns a copy of the Encoder's Config.
func (e *Encoder) Config() Config {
	return e.config
}

// Encode encodes n as a single Node.
// On error, no bytes are returned.
func (e *Encoder) Encode(n Node) ([]byte, error) {
	buff, err := e.AppendNode(nil, n)
	if err != nil {
		return nil, err
	}
	return buff, nil
}

// Append appends v to buff.
// Nodes are written in an envelope, and primitives as described by encio.AppendPrimitive.
// On error, buff is returned unchanged.
func (e *Encoder) Append(buff []byte, v interface{}) ([]byte, error) {
	if n, ok := v.(Node); ok {
		return e.AppendNode(buff, n)
	}
	return encio.AppendPrimitive(buff, v)
}

// AppendNode appends the envelope of n to buff.
// On error, buff is returned unchanged.
func (e *Encoder) AppendNode(buff []byte, n Node) ([]byte, error) {
	if isNil(n) {
		return buff, encio.Errorf(encio.ErrNilNode, "cannot encode %T", n)
	}

	if e.depth >= e.config.MaxDepth {
		return buff, encio.Errorf(encio.ErrMalformed, "%v (%T) is nested deeper than %v", n.Tag(), n, e.config.MaxDepth)
	}

	meta, err := n.Metadata()
	if err != nil {
		return buff, err
	}
	if err := e.checkSize("metadata", n, len(meta)); err != nil {
		return buff, err
	}

	child := *e
	child.depth++
	data, err := n.Data(&child)
	if err != nil {
		return buff, err
	}
	if err := e.checkSize("data", n, len(data)); err != nil {
		return buff, err
	}

	return AppendFrame(buff, Frame{Tag: n.Tag(), Meta: meta, Data: data}), nil
}

func (e *Encoder) checkSize(what string, n Node, size int) error {
	if uint64(size) > uint64(e.config.MaxNodeSize) {
		return encio.NewError(
			encio.ErrTooBig,
			fmt.Sprintf("%v of %v (%T) is %v bytes, limit is %v", what, n.Tag(), n, size, e.config.MaxNodeSize),
			1,
		)
	}
	return nil
}

// isNil reports whether n is nil, or holds a nil pointer.
// Nil slices and maps are left alone; they are valid empty values of their type.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func:
		return v.IsNil()
	}
	return false
}
