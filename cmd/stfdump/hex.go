package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stewi1014/stf/inspect"
)

func newHexCmd(opts *options) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "hex FILE",
		Short: "Print a hex dump of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			opts.logger.Debug().Str("file", args[0]).Int("bytes", len(b)).Msg("dumping")
			_, err = io.WriteString(cmd.OutOrStdout(), inspect.Hexdump(b, width))
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", inspect.DefaultWidth, "bytes per line")
	return cmd
}
