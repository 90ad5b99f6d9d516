// Package main runs capctl, the host-side plugin CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/capbridge/internal/platform/config"

	capctlcmd "github.com/louisbranch/capbridge/internal/cmd/capctl"
)

func main() {
	root, err := capctlcmd.NewRootCommand(os.Stdout)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		config.Exitf("Error: %v", err)
	}
}
