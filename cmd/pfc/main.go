// Package main provides the pfc CLI tool for prefix compressing sorted
// word lists.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pfc: %v\n", err)
		os.Exit(1)
	}
}
