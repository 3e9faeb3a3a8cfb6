// Command stfdump inspects and verifies stf documents.
//
//	stfdump inspect FILE [--format text|yaml|cbor] [--raw]
//	stfdump hex FILE [--width N]
//	stfdump verify FILE
//
// A TOML config file given with --config may hold a [limits] table, read as stf.Config,
// and a [log] table.
//
//	[limits]
//	max_depth = 64
//	max_node_size = 1048576
//
//	[log]
//	level = "info"
//	no_color = true
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stfdump: %v\n", err)
		os.Exit(1)
	}
}
