// Package main runs the Telegram channel plugin.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/capbridge/internal/platform/config"

	telegramcmd "github.com/louisbranch/capbridge/internal/cmd/telegram"
)

func main() {
	cfg, err := telegramcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := telegramcmd.Run(ctx, cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}
