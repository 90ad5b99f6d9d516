// Package telegram parses telegram command flags and serves the Telegram
// channel plugin.
package telegram

import (
	"context"
	"flag"
	"strings"

	telegramchannel "github.com/louisbranch/capbridge/internal/examples/telegram"
	entrypoint "github.com/louisbranch/capbridge/internal/platform/cmd"
)

// Config holds telegram command configuration.
type Config struct {
	Token string `env:"CAPBRIDGE_TELEGRAM_TOKEN"`
	// AllowFrom is a comma separated list of sender ids.
	AllowFrom string `env:"CAPBRIDGE_TELEGRAM_ALLOW_FROM"`
	APIServer string `env:"CAPBRIDGE_TELEGRAM_API_SERVER"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.AllowFrom, "allow-from", cfg.AllowFrom, "Comma separated Telegram user ids allowed to message the bot")
	fs.StringVar(&cfg.APIServer, "api-server", cfg.APIServer, "Telegram Bot API server URL")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Channel builds the channel handler described by cfg.
func (cfg Config) Channel() telegramchannel.Config {
	var allow []string
	for _, id := range strings.Split(cfg.AllowFrom, ",") {
		if id = strings.TrimSpace(id); id != "" {
			allow = append(allow, id)
		}
	}
	return telegramchannel.Config{
		Token:     strings.TrimSpace(cfg.Token),
		AllowFrom: allow,
		APIServer: strings.TrimSpace(cfg.APIServer),
	}
}

// Run serves the channel capability until ctx ends. The bot connects when
// the host calls Connect.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTelegram, func(ctx context.Context) error {
		a, logger, err := entrypoint.NewApp(entrypoint.ServiceTelegram)
		if err != nil {
			return err
		}
		ch := telegramchannel.New(cfg.Channel(), logger)
		defer func() { _ = ch.Disconnect(context.Background()) }()
		return a.RegisterChannel(ch).Run(ctx)
	})
}
