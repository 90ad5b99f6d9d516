// Package calculator parses calculator command flags and serves the
// calculator tool plugin.
package calculator

import (
	"context"
	"flag"
	"time"

	"github.com/louisbranch/capbridge/app"
	calculatortool "github.com/louisbranch/capbridge/internal/examples/calculator"
	entrypoint "github.com/louisbranch/capbridge/internal/platform/cmd"
)

// Config holds calculator command configuration.
type Config struct {
	ShutdownTimeout time.Duration `env:"CAPBRIDGE_CALCULATOR_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Grace period for in-flight calls on shutdown")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the calculator tool until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCalculator, func(ctx context.Context) error {
		a, _, err := entrypoint.NewApp(entrypoint.ServiceCalculator, app.WithShutdownTimeout(cfg.ShutdownTimeout))
		if err != nil {
			return err
		}
		return a.RegisterTool(calculatortool.New()).Run(ctx)
	})
}
