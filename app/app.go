// Package app is the plugin runtime: it collects capability handlers, serves
// one gRPC bridge per registered capability on a unix socket, and drains
// everything on shutdown.
package app

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sync"
	"time"

	"google.golang.org/grpc"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/appenv"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/channel"
	"github.com/louisbranch/capbridge/comm"
	"github.com/louisbranch/capbridge/gateway"
	"github.com/louisbranch/capbridge/internal/platform/timeouts"
	"github.com/louisbranch/capbridge/schedule"
	"github.com/louisbranch/capbridge/tool"
	"github.com/louisbranch/capbridge/ui"
)

// Kind identifies a capability.
type Kind string

// Capability kinds, in the order their services are registered.
const (
	KindTool     Kind = "tool"
	KindChannel  Kind = "channel"
	KindGateway  Kind = "gateway"
	KindUi       Kind = "ui"
	KindComm     Kind = "comm"
	KindSchedule Kind = "schedule"
)

var kinds = []Kind{KindTool, KindChannel, KindGateway, KindUi, KindComm, KindSchedule}

// ServiceName returns the gRPC service name serving k.
func (k Kind) ServiceName() string {
	switch k {
	case KindTool:
		return appsv0.ToolService_ServiceDesc.ServiceName
	case KindChannel:
		return appsv0.ChannelService_ServiceDesc.ServiceName
	case KindGateway:
		return appsv0.GatewayService_ServiceDesc.ServiceName
	case KindUi:
		return appsv0.UiService_ServiceDesc.ServiceName
	case KindComm:
		return appsv0.CommService_ServiceDesc.ServiceName
	case KindSchedule:
		return appsv0.ScheduleService_ServiceDesc.ServiceName
	default:
		return ""
	}
}

var (
	// ErrNoSockPath is returned by New when the environment has no socket path.
	ErrNoSockPath = errors.New("app: socket path is required (CAPBRIDGE_APP_SOCK)")
	// ErrNoHandlers is returned by Run when no capability was registered.
	ErrNoHandlers = errors.New("app: no capability handlers registered")
	// ErrAlreadyRunning is returned by a second call to Run.
	ErrAlreadyRunning = errors.New("app: already running")
)

// ConfigureFunc receives settings pushed by the host through any capability.
type ConfigureFunc = bridge.ConfigureFunc

// Option customizes an App.
type Option func(*App)

// WithLogger sets the logger used for RPC and lifecycle logs.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithOutput sets where the startup line is printed. Defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.out = w
		}
	}
}

// WithShutdownTimeout bounds how long Run waits for in-flight calls before
// stopping the server forcefully.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}

// WithServerOptions appends gRPC server options.
func WithServerOptions(opts ...grpc.ServerOption) Option {
	return func(a *App) {
		a.serverOpts = append(a.serverOpts, opts...)
	}
}

// App is a capability plugin. Build it with New, register handlers, then call
// Run once.
type App struct {
	env             appenv.Env
	logger          *slog.Logger
	out             io.Writer
	shutdownTimeout time.Duration
	serverOpts      []grpc.ServerOption

	mu          sync.Mutex
	handlers    map[Kind]any
	onConfigure ConfigureFunc
	started     bool
}

// New returns an App for env. It fails with ErrNoSockPath when env has no
// socket path.
func New(env appenv.Env, opts ...Option) (*App, error) {
	if env.SockPath == "" {
		return nil, ErrNoSockPath
	}
	a := &App{
		env:             env,
		logger:          slog.Default(),
		out:             os.Stderr,
		shutdownTimeout: timeouts.Shutdown,
		handlers:        make(map[Kind]any),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Env returns the environment the App was built with.
func (a *App) Env() appenv.Env {
	return a.env
}

func (a *App) register(kind Kind, h any) *App {
	a.mu.Lock()
	defer a.mu.Unlock()
	if isNilHandler(h) {
		delete(a.handlers, kind)
		return a
	}
	a.handlers[kind] = h
	return a
}

// isNilHandler reports whether h is nil or a typed nil such as (*T)(nil).
// A typed nil would only fail later, on the first call through the bridge.
func isNilHandler(h any) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// RegisterTool exposes h as the ToolService. A nil handler, typed or not,
// clears the slot; the same holds for every Register method.
func (a *App) RegisterTool(h tool.Handler) *App { return a.register(KindTool, h) }

// RegisterChannel exposes h as the ChannelService.
func (a *App) RegisterChannel(h channel.Handler) *App { return a.register(KindChannel, h) }

// RegisterGateway exposes h as the GatewayService.
func (a *App) RegisterGateway(h gateway.Handler) *App { return a.register(KindGateway, h) }

// RegisterUi exposes h as the UiService.
func (a *App) RegisterUi(h ui.Handler) *App { return a.register(KindUi, h) }

// RegisterComm exposes h as the CommService.
func (a *App) RegisterComm(h comm.Handler) *App { return a.register(KindComm, h) }

// RegisterSchedule exposes h as the ScheduleService.
func (a *App) RegisterSchedule(h schedule.Handler) *App { return a.register(KindSchedule, h) }

// OnConfigure sets the callback that receives Configure pushes.
func (a *App) OnConfigure(fn ConfigureFunc) *App {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onConfigure = fn
	return a
}

// Kinds returns the registered capability kinds in registration order.
func (a *App) Kinds() []Kind {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []Kind
	for _, k := range kinds {
		if _, ok := a.handlers[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// registerServices installs one bridge per registered handler on server and
// returns the registered service names.
func (a *App) registerServices(server grpc.ServiceRegistrar) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	base := bridge.Base{Env: a.env, OnConfigure: a.onConfigure}
	var names []string
	for _, k := range kinds {
		h, ok := a.handlers[k]
		if !ok {
			continue
		}
		switch k {
		case KindTool:
			appsv0.RegisterToolServiceServer(server, tool.NewBridge(h.(tool.Handler), base))
		case KindChannel:
			appsv0.RegisterChannelServiceServer(server, channel.NewBridge(h.(channel.Handler), base))
		case KindGateway:
			appsv0.RegisterGatewayServiceServer(server, gateway.NewBridge(h.(gateway.Handler), base))
		case KindUi:
			appsv0.RegisterUiServiceServer(server, ui.NewBridge(h.(ui.Handler), base))
		case KindComm:
			appsv0.RegisterCommServiceServer(server, comm.NewBridge(h.(comm.Handler), base))
		case KindSchedule:
			appsv0.RegisterScheduleServiceServer(server, schedule.NewBridge(h.(schedule.Handler), base))
		}
		names = append(names, k.ServiceName())
	}
	return names
}
