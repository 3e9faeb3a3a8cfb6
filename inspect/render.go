package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/stewi1014/stf/encio"
)

// maxTextData is the most raw data WriteText shows for one Node.
const maxTextData = 32

// encMode writes Core Deterministic CBOR, so the same tree always gives the same bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("inspect: CBOR encoder initialization failed: " + err.Error())
	}
}

// WriteText writes the tree rooted at e as indented lines, one per Node.
//
//	0x2 points @0 meta 4 [02000000] data 40
//	  0x1 point @16 meta 0 data 8 [0300000004000000]
func WriteText(w io.Writer, e *Entry) error {
	var sb strings.Builder
	writeText(&sb, e, 0)
	return encio.Write([]byte(sb.String()), w)
}

func writeText(sb *strings.Builder, e *Entry, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(e.Tag.String())
	if e.Name != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.Name)
	}

	fmt.Fprintf(sb, " @%d meta %d", e.Offset, e.MetaLen)
	if len(e.Meta) > 0 {
		fmt.Fprintf(sb, " [%v]", e.Meta)
	}
	fmt.Fprintf(sb, " data %d", e.DataLen)

	switch v := e.Value.(type) {
	case nil:
		if len(e.Data) > maxTextData {
			fmt.Fprintf(sb, " [%v...]", e.Data[:maxTextData])
		} else if len(e.Data) > 0 {
			fmt.Fprintf(sb, " [%v]", e.Data)
		}
	case string:
		fmt.Fprintf(sb, " = %q", v)
	default:
		fmt.Fprintf(sb, " = %v", v)
	}
	sb.WriteByte('\n')

	for _, c := range e.Children {
		writeText(sb, c, depth+1)
	}
}

// WriteYAML writes the tree rooted at e as a YAML document.
func WriteYAML(w io.Writer, e *Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// WriteCBOR writes the tree rooted at e as a single CBOR item.
func WriteCBOR(w io.Writer, e *Entry) error {
	b, err := encMode.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding cbor: %w", err)
	}
	return encio.Write(b, w)
}
