// Package main runs the LLM gateway plugin.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/capbridge/internal/platform/config"

	llmgatewaycmd "github.com/louisbranch/capbridge/internal/cmd/llmgateway"
)

func main() {
	cfg, err := llmgatewaycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := llmgatewaycmd.Run(ctx, cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}
