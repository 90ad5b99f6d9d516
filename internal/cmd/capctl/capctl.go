// Package capctl builds the capctl command tree, a host-side CLI that dials a
// running plugin over its unix socket and drives its capability services.
package capctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/client"
	entrypoint "github.com/louisbranch/capbridge/internal/platform/cmd"
)

// Config holds capctl defaults read from the environment.
type Config struct {
	SockPath string        `env:"CAPBRIDGE_APP_SOCK"`
	Timeout  time.Duration `env:"CAPBRIDGE_CAPCTL_TIMEOUT" envDefault:"10s"`
}

type runner struct {
	cfg Config
	out io.Writer
}

// NewRootCommand returns the capctl command tree writing results to out.
func NewRootCommand(out io.Writer) (*cobra.Command, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return nil, err
	}
	r := &runner{cfg: cfg, out: out}

	root := &cobra.Command{
		Use:           "capctl",
		Short:         "Inspect and drive a capbridge plugin",
		Long:          "capctl dials a plugin over its unix socket and calls its capability services.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&r.cfg.SockPath, "sock", r.cfg.SockPath, "plugin unix socket path")
	root.PersistentFlags().DurationVar(&r.cfg.Timeout, "timeout", r.cfg.Timeout, "dial and unary call timeout")

	root.AddCommand(
		r.healthCommand(),
		r.toolCommand(),
		r.scheduleCommand(),
		r.channelCommand(),
		r.gatewayCommand(),
		r.configureCommand(),
	)
	return root, nil
}

func (r *runner) dial(ctx context.Context) (*client.Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	return client.Dial(dialCtx, strings.TrimSpace(r.cfg.SockPath))
}

// call dials the plugin, runs fn with a timeout-bound context and closes the
// connection.
func (r *runner) call(ctx context.Context, fn func(context.Context, *client.Client) error) error {
	c, err := r.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()
	callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	return fn(callCtx, c)
}

func (r *runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *runner) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show which capabilities the plugin serves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.call(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				services, err := c.Services(ctx, client.ServiceNames...)
				if err != nil {
					return err
				}
				var identity *appsv0.HealthCheckResponse
				for _, name := range client.ServiceNames {
					if !services[name] {
						r.printf("%-26s absent\n", name)
						continue
					}
					r.printf("%-26s serving\n", name)
					if identity == nil {
						identity, err = healthCheck(ctx, c, name)
						if err != nil {
							return err
						}
					}
				}
				if identity != nil {
					r.printf("name: %s\nversion: %s\nhealthy: %t\n", identity.GetName(), identity.GetVersion(), identity.GetHealthy())
				}
				return nil
			})
		},
	}
}

// healthCheck calls the capability HealthCheck of service.
func healthCheck(ctx context.Context, c *client.Client, service string) (*appsv0.HealthCheckResponse, error) {
	req := &appsv0.HealthCheckRequest{}
	switch service {
	case appsv0.ToolService_ServiceDesc.ServiceName:
		return c.Tool().HealthCheck(ctx, req)
	case appsv0.ChannelService_ServiceDesc.ServiceName:
		return c.Channel().HealthCheck(ctx, req)
	case appsv0.GatewayService_ServiceDesc.ServiceName:
		return c.Gateway().HealthCheck(ctx, req)
	case appsv0.UiService_ServiceDesc.ServiceName:
		return c.Ui().HealthCheck(ctx, req)
	case appsv0.CommService_ServiceDesc.ServiceName:
		return c.Comm().HealthCheck(ctx, req)
	case appsv0.ScheduleService_ServiceDesc.ServiceName:
		return c.Schedule().HealthCheck(ctx, req)
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
}

// configure pushes settings to one capability service.
func configure(ctx context.Context, c *client.Client, service string, settings *appsv0.SettingsMap) error {
	var err error
	switch service {
	case appsv0.ToolService_ServiceDesc.ServiceName:
		_, err = c.Tool().Configure(ctx, settings)
	case appsv0.ChannelService_ServiceDesc.ServiceName:
		_, err = c.Channel().Configure(ctx, settings)
	case appsv0.GatewayService_ServiceDesc.ServiceName:
		_, err = c.Gateway().Configure(ctx, settings)
	case appsv0.UiService_ServiceDesc.ServiceName:
		_, err = c.Ui().Configure(ctx, settings)
	case appsv0.CommService_ServiceDesc.ServiceName:
		_, err = c.Comm().Configure(ctx, settings)
	case appsv0.ScheduleService_ServiceDesc.ServiceName:
		_, err = c.Schedule().Configure(ctx, settings)
	default:
		err = fmt.Errorf("unknown service %q", service)
	}
	return err
}

func (r *runner) configureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure key=value...",
		Short: "Push settings to every capability the plugin serves",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ParseSettings(args)
			if err != nil {
				return err
			}
			return r.call(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				services, err := c.Services(ctx, client.ServiceNames...)
				if err != nil {
					return err
				}
				pushed := 0
				for _, name := range client.ServiceNames {
					if !services[name] {
						continue
					}
					if err := configure(ctx, c, name, &appsv0.SettingsMap{Values: settings}); err != nil {
						return fmt.Errorf("configure %s: %w", name, err)
					}
					pushed++
				}
				if pushed == 0 {
					return errors.New("plugin serves no capability")
				}
				keys := make([]string, 0, len(settings))
				for k := range settings {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				r.printf("configured %s on %d service(s)\n", strings.Join(keys, ", "), pushed)
				return nil
			})
		},
	}
}

// ParseSettings turns key=value arguments into a settings map. Later keys
// override earlier ones.
func ParseSettings(args []string) (map[string]string, error) {
	settings := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid setting %q, want key=value", arg)
		}
		settings[key] = value
	}
	return settings, nil
}
