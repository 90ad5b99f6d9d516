// Package cmd holds the shared entrypoint helpers used by every capbridge
// binary: env-then-flags config parsing and a telemetry-wrapped run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/louisbranch/capbridge/app"
	"github.com/louisbranch/capbridge/appenv"
	"github.com/louisbranch/capbridge/internal/platform/config"
	"github.com/louisbranch/capbridge/internal/platform/logging"
	"github.com/louisbranch/capbridge/internal/platform/otel"
	"github.com/louisbranch/capbridge/internal/platform/timeouts"
)

// Service identifiers used for telemetry resources and log prefixes.
const (
	ServiceCalculator = "calculator"
	ServiceScheduler  = "scheduler"
	ServiceGateway    = "llmgateway"
	ServiceTelegram   = "telegram"
	ServiceCapctl     = "capctl"
)

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// RunWithTelemetry configures tracing and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Telemetry)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Warn("otel shutdown", "service", service, "error", err)
		}
	}()
	return run(ctx)
}

// NewApp loads the plugin environment and the process logger and builds the
// runtime for service. The logger is also installed as the slog default.
func NewApp(service string, opts ...app.Option) (*app.App, *slog.Logger, error) {
	env, err := appenv.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load app env: %w", err)
	}
	logCfg, err := logging.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load log config: %w", err)
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	logger = logger.With("service", service)
	slog.SetDefault(logger)

	opts = append([]app.Option{app.WithLogger(logger)}, opts...)
	a, err := app.New(env, opts...)
	if err != nil {
		return nil, nil, err
	}
	return a, logger, nil
}
