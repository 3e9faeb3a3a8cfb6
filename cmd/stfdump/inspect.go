package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stewi1014/stf"
	"github.com/stewi1014/stf/inspect"
)

var renderers = map[string]func(io.Writer, *inspect.Entry) error{
	"text": inspect.WriteText,
	"yaml": inspect.WriteYAML,
	"cbor": inspect.WriteCBOR,
}

func newInspectCmd(opts *options) *cobra.Command {
	var (
		format string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Describe the Nodes in a file",
		Long: `Describe the Nodes in a file, without needing their types.

Each document in FILE is verified, then its Node is walked and rendered.
With --raw, FILE holds bare encoded Nodes instead of documents.
Offsets are from the start of each Node.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			render, ok := renderers[format]
			if !ok {
				return fmt.Errorf("unknown format %q, want text, yaml or cbor", format)
			}

			entries, err := opts.entries(args[0], raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, e := range entries {
				if i > 0 && format == "yaml" {
					if _, err := io.WriteString(out, "---\n"); err != nil {
						return err
					}
				}
				if err := render(out, e); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|yaml|cbor")
	cmd.Flags().BoolVar(&raw, "raw", false, "FILE holds bare Nodes rather than documents")
	return cmd
}

// entries walks the Nodes in the file at path.
func (o *options) entries(path string, raw bool) ([]*inspect.Entry, error) {
	w := o.walker()

	if raw {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		entries, err := w.WalkAll(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return entries, nil
	}

	docs, err := o.documents(path)
	if err != nil {
		return nil, err
	}

	entries := make([]*inspect.Entry, 0, len(docs))
	for i, doc := range docs {
		e, err := w.Walk(doc.Node)
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", path, i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// walker returns a Walker bounded by the configured limits.
// No types are registered, so only scalar tags are named.
func (o *options) walker() *inspect.Walker {
	return inspect.NewWalker(stf.NewRegistry(), &o.limits)
}
