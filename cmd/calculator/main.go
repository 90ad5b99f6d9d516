// Package main runs the calculator tool plugin.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/capbridge/internal/platform/config"

	calculatorcmd "github.com/louisbranch/capbridge/internal/cmd/calculator"
)

func main() {
	cfg, err := calculatorcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := calculatorcmd.Run(ctx, cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}
