// SPDX-License-Identifier: MIT

// Command versegraph builds a poem relationship graph and its supporting
// artefacts.
//
//	versegraph coordinates   embed poems missing a position
//	versegraph connect       build the degree-bounded graph
//	versegraph colors        assign display colors from positions
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "versegraph:", err)
		os.Exit(1)
	}
}
