package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check the documents in a file",
		Long: `Check the documents in a file.

Each document's magic number, version and digest are checked,
and its Node must be exactly one well framed Node, within the configured limits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := opts.documents(args[0])
			if err != nil {
				return err
			}

			w := opts.walker()
			for i, doc := range docs {
				e, err := w.Walk(doc.Node)
				if err != nil {
					return fmt.Errorf("%s: document %d: %w", args[0], i, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: document %d: version %d, root %v, %d nodes, %d bytes, blake3 %x\n",
					args[0], i, doc.Version, e.Tag, e.Count(), len(doc.Node), doc.Digest)
			}

			opts.logger.Info().Str("file", args[0]).Int("documents", len(docs)).Msg("verified")
			return nil
		},
	}
}
