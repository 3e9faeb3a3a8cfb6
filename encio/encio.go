// Package encio provides the primitive codec of the stf format, the error types shared by every stf package,
// and io helpers for reading and writing whole buffers.
//
// Every multi-byte value is little-endian, and every length prefix is a 4 byte unsigned integer.
// Fixed width kinds are written as-is; strings and byte slices are a length prefix followed by their content.
package encio

import (
	"errors"
	"fmt"
	"io"
)

// Read reads from r, completely filling the buffer. It provides error handling with as little overhead as possible.
// In an ideal read, only a single int equality check is performed. If the read reports the whole buffer is read, returned errors are ignored.
// A reader that ends early yields an IOError wrapping ErrTruncated.
func Read(buff []byte, r io.Reader) error {
	n, err := r.Read(buff)
	if n == len(buff) {
		return nil
	}

	end := n
	for end < len(buff) && err == nil && n > 0 {
		n, err = r.Read(buff[end:])
		end += n
	}

	if end != len(buff) {
		switch {
		case end > len(buff):
			return NewIOError(
				errors.New("bad io.Reader implementation"),
				fmt.Sprintf("reported %v bytes read, but buffer is only %v bytes", end, len(buff)),
				1,
			)
		case errors.Is(err, io.EOF):
			return NewIOError(
				ErrTruncated,
				fmt.Sprintf("want %v bytes but only got %v", len(buff), end),
				1,
			)
		case err != nil:
			return NewIOError(err, fmt.Sprintf("want %v bytes but only got %v", len(buff), end), 1)
		default: // err == nil
			return NewIOError(
				io.ErrNoProgress,
				fmt.Sprintf("want %v bytes but only got %v", len(buff), end),
				1,
			)
		}
	}
	return nil
}

// Write writes to w from buff, handling errors of io.Writer with as little overhead as possible.
// In an ideal write, only a single int equality check is performed. It returns any error from Write().
func Write(buff []byte, w io.Writer) error {
	n, err := w.Write(buff)
	if n == len(buff) {
		if err != nil {
			return NewIOError(err, "", 1)
		}
		return nil
	}

	end := n
	for end < len(buff) && err == nil && n > 0 {
		Log.Warn().
			Str("writer", fmt.Sprintf("%T", w)).
			Int("given", len(buff)-(end-n)).
			Int("written", n).
			Msg("bad io.Writer implementation: short write without error, calling it again")
		n, err = w.Write(buff[end:])
		end += n
	}

	if end != len(buff) {
		switch {
		case end > len(buff):
			return NewIOError(
				errors.New("bad io.Writer implementation"),
				fmt.Sprintf("Write() reported %v bytes written, but was only given %v bytes", end, len(buff)),
				1,
			)
		case err == nil:
			return NewIOError(
				io.ErrShortWrite,
				fmt.Sprintf("want %v bytes but only wrote %v bytes", len(buff), end),
				1,
			)
		default:
			return NewIOError(
				err,
				fmt.Sprintf("want %v bytes but wrote %v bytes", len(buff), end),
				1,
			)
		}
	}
	return nil
}
