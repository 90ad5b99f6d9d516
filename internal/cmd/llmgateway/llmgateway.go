// Package llmgateway parses gateway command flags and serves the LLM gateway
// plugin.
package llmgateway

import (
	"context"
	"flag"
	"fmt"

	gatewayservice "github.com/louisbranch/capbridge/internal/examples/llmgateway"
	entrypoint "github.com/louisbranch/capbridge/internal/platform/cmd"
)

// Config holds gateway command configuration.
type Config struct {
	Provider string `env:"CAPBRIDGE_GATEWAY_PROVIDER" envDefault:"ollama"`
	APIKey   string `env:"CAPBRIDGE_GATEWAY_API_KEY"`
	BaseURL  string `env:"CAPBRIDGE_GATEWAY_BASE_URL"`
	Model    string `env:"CAPBRIDGE_GATEWAY_MODEL"`
	Thinking bool   `env:"CAPBRIDGE_GATEWAY_THINKING"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Provider, "provider", cfg.Provider, "LLM provider: openai, ollama or gemini")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Provider API base URL")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Model used when a request names none")
	fs.BoolVar(&cfg.Thinking, "thinking", cfg.Thinking, "Request reasoning output when the provider supports it")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the gateway capability until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGateway, func(ctx context.Context) error {
		a, logger, err := entrypoint.NewApp(entrypoint.ServiceGateway)
		if err != nil {
			return err
		}
		provider, err := gatewayservice.NewProvider(ctx, gatewayservice.ProviderConfig{
			Name:     cfg.Provider,
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
			Thinking: cfg.Thinking,
		})
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}
		logger.Info("gateway provider ready", "provider", provider.Name(), "model", cfg.Model)

		gw := gatewayservice.New(provider,
			gatewayservice.WithDefaultModel(cfg.Model),
			gatewayservice.WithLogger(logger),
		)
		return a.RegisterGateway(gw).Run(ctx)
	})
}
