package inspect

import (
	"encoding/hex"
	"strings"
)

// DefaultWidth is the number of bytes per line Hexdump uses when given a width below 1.
const DefaultWidth = 8

// Hexdump formats b as lowercase hex bytes separated by spaces, width bytes to a line.
// Every line, including the last, ends in a newline.
func Hexdump(b []byte, width int) string {
	if width < 1 {
		width = DefaultWidth
	}

	var sb strings.Builder
	sb.Grow(len(b) * 3)

	var digits [2]byte
	for i, c := range b {
		if i%width != 0 {
			sb.WriteByte(' ')
		}
		hex.Encode(digits[:], []byte{c})
		sb.Write(digits[:])
		if i%width == width-1 || i == len(b)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
