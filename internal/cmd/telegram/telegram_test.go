package telegram

import (
	"context"
	"errors"
	"flag"
	"testing"

	"github.com/louisbranch/capbridge/app"
)

func TestParseConfig_ParsesDefaultsAndFlags(t *testing.T) {
	fs := flag.NewFlagSet("telegram", flag.ContinueOnError)
	t.Setenv("CAPBRIDGE_TELEGRAM_TOKEN", "123:abc")

	cfg, err := ParseConfig(fs, []string{"-allow-from", "7, 42,"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Token != "123:abc" {
		t.Fatalf("token = %q, want %q", cfg.Token, "123:abc")
	}

	ch := cfg.Channel()
	if len(ch.AllowFrom) != 2 || ch.AllowFrom[0] != "7" || ch.AllowFrom[1] != "42" {
		t.Fatalf("allow from = %v", ch.AllowFrom)
	}
}

func TestChannelConfigEmptyAllowList(t *testing.T) {
	if got := (Config{}).Channel().AllowFrom; got != nil {
		t.Fatalf("allow from = %v, want nil", got)
	}
}

func TestRunRequiresSockPath(t *testing.T) {
	t.Setenv("CAPBRIDGE_APP_SOCK", "")
	if err := Run(context.Background(), Config{}); !errors.Is(err, app.ErrNoSockPath) {
		t.Fatalf("run error = %v, want %v", err, app.ErrNoSockPath)
	}
}
