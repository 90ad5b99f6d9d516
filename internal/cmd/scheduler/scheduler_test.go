package scheduler

import (
	"context"
	"errors"
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/capbridge/app"
	"github.com/louisbranch/capbridge/appenv"
)

func TestParseConfig_ParsesDefaultsAndFlags(t *testing.T) {
	fs := flag.NewFlagSet("scheduler", flag.ContinueOnError)
	t.Setenv("CAPBRIDGE_SCHEDULER_SHELL_DIR", "/srv/tasks")

	cfg, err := ParseConfig(fs, []string{"-tick", "250ms", "-db-path", "data/test.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Tick != 250*time.Millisecond {
		t.Fatalf("tick = %v, want 250ms", cfg.Tick)
	}
	if cfg.DBPath != "data/test.db" {
		t.Fatalf("db path = %q, want %q", cfg.DBPath, "data/test.db")
	}
	if cfg.ShellDir != "/srv/tasks" {
		t.Fatalf("shell dir = %q, want %q", cfg.ShellDir, "/srv/tasks")
	}
	if cfg.ShellTimeout != time.Minute {
		t.Fatalf("shell timeout = %v, want 1m", cfg.ShellTimeout)
	}
}

func TestResolveDBPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		env  appenv.Env
		want string
	}{
		{name: "explicit", path: " custom.db ", env: appenv.Env{DataDir: "/data"}, want: "custom.db"},
		{name: "data dir", env: appenv.Env{DataDir: "/data"}, want: filepath.Join("/data", defaultDBName)},
		{name: "fallback", want: defaultDBName},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveDBPath(tc.path, tc.env); got != tc.want {
				t.Fatalf("ResolveDBPath = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRunRequiresSockPath(t *testing.T) {
	t.Setenv("CAPBRIDGE_APP_SOCK", "")
	if err := Run(context.Background(), Config{}); !errors.Is(err, app.ErrNoSockPath) {
		t.Fatalf("run error = %v, want %v", err, app.ErrNoSockPath)
	}
}
