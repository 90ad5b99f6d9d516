// Package client dials a capability plugin from the host side and exposes
// typed service clients over the shared connection.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	platformgrpc "github.com/louisbranch/capbridge/internal/platform/grpc"
	"github.com/louisbranch/capbridge/internal/platform/timeouts"
)

// ErrNoSockPath is returned by Dial for an empty socket path.
var ErrNoSockPath = errors.New("client: socket path is required")

type options struct {
	dialer   platformgrpc.Dialer
	logger   *slog.Logger
	dialOpts []grpc.DialOption
}

// Option customizes Dial.
type Option func(*options)

// WithDialer replaces the connection factory. Tests use it to dial bufconn.
func WithDialer(d platformgrpc.Dialer) Option {
	return func(o *options) { o.dialer = d }
}

// WithLogger sets the logger used while waiting for the plugin to serve.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDialOptions appends gRPC dial options to the defaults.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOpts = append(o.dialOpts, opts...) }
}

// Client is a connection to one plugin process.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to the plugin listening on sockPath and blocks until its
// health service reports SERVING or ctx ends.
func Dial(ctx context.Context, sockPath string, opts ...Option) (*Client, error) {
	if sockPath == "" {
		return nil, ErrNoSockPath
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	dialOpts := append(platformgrpc.DefaultClientDialOptions(), o.dialOpts...)
	conn, err := platformgrpc.DialWithHealth(ctx, o.dialer, sockPath, timeouts.GRPCDial, o.logger, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", sockPath, err)
	}
	return &Client{conn: conn}, nil
}

// NewFromConn wraps an existing connection.
func NewFromConn(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn}
}

// Conn returns the underlying connection.
func (c *Client) Conn() *grpc.ClientConn { return c.conn }

// Close closes the connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) Tool() appsv0.ToolServiceClient { return appsv0.NewToolServiceClient(c.conn) }

func (c *Client) Channel() appsv0.ChannelServiceClient {
	return appsv0.NewChannelServiceClient(c.conn)
}

func (c *Client) Gateway() appsv0.GatewayServiceClient {
	return appsv0.NewGatewayServiceClient(c.conn)
}

func (c *Client) Ui() appsv0.UiServiceClient { return appsv0.NewUiServiceClient(c.conn) }

func (c *Client) Comm() appsv0.CommServiceClient { return appsv0.NewCommServiceClient(c.conn) }

func (c *Client) Schedule() appsv0.ScheduleServiceClient {
	return appsv0.NewScheduleServiceClient(c.conn)
}

// Health returns the standard gRPC health client.
func (c *Client) Health() grpc_health_v1.HealthClient {
	return grpc_health_v1.NewHealthClient(c.conn)
}

// Services reports which capability services the plugin serves. A service
// the health server does not know is treated as absent.
func (c *Client) Services(ctx context.Context, names ...string) (map[string]bool, error) {
	health := c.Health()
	out := make(map[string]bool, len(names))
	for _, name := range names {
		resp, err := health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: name})
		if err != nil {
			if statusNotFound(err) {
				out[name] = false
				continue
			}
			return nil, fmt.Errorf("check %s: %w", name, err)
		}
		out[name] = resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING
	}
	return out, nil
}
