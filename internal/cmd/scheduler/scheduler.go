// Package scheduler parses scheduler command flags and serves the SQLite
// backed schedule plugin.
package scheduler

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/capbridge/appenv"
	scheduleservice "github.com/louisbranch/capbridge/internal/examples/scheduler"
	"github.com/louisbranch/capbridge/internal/examples/scheduler/storage/sqlite"
	entrypoint "github.com/louisbranch/capbridge/internal/platform/cmd"
)

const defaultDBName = "schedules.db"

// Config holds scheduler command configuration.
type Config struct {
	DBPath       string        `env:"CAPBRIDGE_SCHEDULER_DB_PATH"`
	Tick         time.Duration `env:"CAPBRIDGE_SCHEDULER_TICK" envDefault:"1s"`
	ShellDir     string        `env:"CAPBRIDGE_SCHEDULER_SHELL_DIR"`
	ShellTimeout time.Duration `env:"CAPBRIDGE_SCHEDULER_SHELL_TIMEOUT" envDefault:"1m"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The schedule SQLite database path (defaults to the app data dir)")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "How often due schedules are checked")
	fs.StringVar(&cfg.ShellDir, "shell-dir", cfg.ShellDir, "Working directory for bash tasks")
	fs.DurationVar(&cfg.ShellTimeout, "shell-timeout", cfg.ShellTimeout, "Maximum run time of a bash task")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the schedule capability and fires due schedules until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScheduler, func(ctx context.Context) error {
		a, logger, err := entrypoint.NewApp(entrypoint.ServiceScheduler)
		if err != nil {
			return err
		}

		dbPath := ResolveDBPath(cfg.DBPath, a.Env())
		store, err := sqlite.Open(ctx, dbPath)
		if err != nil {
			return fmt.Errorf("open schedule store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("close schedule store", "error", err)
			}
		}()
		logger.Info("schedule store opened", "path", dbPath)

		svc := scheduleservice.NewService(store,
			scheduleservice.WithTick(cfg.Tick),
			scheduleservice.WithLogger(logger),
			scheduleservice.WithRunner(scheduleservice.ShellRunner{Dir: cfg.ShellDir, Timeout: cfg.ShellTimeout}),
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return svc.Run(gctx) })
		g.Go(func() error { return a.RegisterSchedule(svc).Run(gctx) })
		return g.Wait()
	})
}

// ResolveDBPath returns path, or the default database file inside the app
// data dir when path is empty.
func ResolveDBPath(path string, env appenv.Env) string {
	if path = strings.TrimSpace(path); path != "" {
		return path
	}
	if dir := strings.TrimSpace(env.DataDir); dir != "" {
		return filepath.Join(dir, defaultDBName)
	}
	return defaultDBName
}
