package stf

import (
	"github.com/stewi1014/stf/encio"
)

// FrameHeaderSize is the size of an envelope with empty metadata and data; the smallest possible encoded Node.
const FrameHeaderSize = 4 + encio.LenSize + encio.LenSize

// Frame is one envelope as it appears on the wire.
type Frame struct {
	Tag  Tag
	Meta []byte
	Data []byte
}

// Size returns the encoded size of f.
func (f Frame) Size() int {
	return FrameHeaderSize + len(f.Meta) + len(f.Data)
}

// AppendFrame appends the encoding of f to buff.
// The caller must ensure Meta and Data fit in a length prefix.
func AppendFrame(buff []byte, f Frame) []byte {
	b := encio.Buffer(buff)
	b.PutUint32(uint32(f.Tag))
	b.PutUint32(uint32(len(f.Meta)))
	_, _ = b.Write(f.Meta)
	b.PutUint32(uint32(len(f.Data)))
	_, _ = b.Write(f.Data)
	return b
}

// ReadFrame reads one envelope from r.
// Meta and Data alias r's buffer.
// It fails with ErrTruncated if the tag or a length prefix is cut short, or if a declared length exceeds what remains.
func ReadFrame(r *encio.Reader) (Frame, error) {
	tag, err := r.Uint32()
	if err != nil {
		return Frame{}, err
	}

	meta, err := r.Sized()
	if err != nil {
		return Frame{}, err
	}

	data, err := r.Sized()
	if err != nil {
		return Frame{}, err
	}

	return Frame{Tag: Tag(tag), Meta: meta, Data: data}, nil
}
