package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Run binds the socket and serves until ctx is cancelled. On cancellation it
// marks the process NOT_SERVING, ends every open stream with an OK status,
// lets in-flight unary calls finish within the shutdown timeout, and removes
// the socket file. Run may be called once.
func (a *App) Run(ctx context.Context) error {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	if len(a.handlers) == 0 {
		a.mu.Unlock()
		return ErrNoHandlers
	}
	a.started = true
	a.mu.Unlock()

	path := a.env.SockPath
	if err := removeStaleSocket(path); err != nil {
		return err
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", path, err)
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			a.logger.Warn("remove socket", "path", path, "error", err)
		}
	}()

	drainCtx, drain := context.WithCancel(context.Background())
	defer drain()

	opts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(unaryLogging(a.logger)),
		grpc.ChainStreamInterceptor(drainStreams(drainCtx), streamLogging(a.logger)),
	}
	server := grpc.NewServer(append(opts, a.serverOpts...)...)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	services := a.registerServices(server)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range services {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	fmt.Fprintf(a.out, "[%s] listening on %s\n", a.env.DisplayName(), path)
	a.logger.Info("serving capabilities", "socket", path, "services", services)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.shutdown(server, healthServer, drain)
		return nil
	})
	return g.Wait()
}

func (a *App) shutdown(server *grpc.Server, healthServer *health.Server, drain context.CancelFunc) {
	a.logger.Info("shutting down")
	healthServer.Shutdown()
	drain()

	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(a.shutdownTimeout)
	defer timer.Stop()
	select {
	case <-stopped:
	case <-timer.C:
		a.logger.Warn("graceful stop timed out, forcing", "timeout", a.shutdownTimeout)
		server.Stop()
		<-stopped
	}
}

// removeStaleSocket deletes a leftover file at path. A missing file is fine;
// any other failure aborts startup before bind.
func removeStaleSocket(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale socket %s: %w", path, err)
	}
	return nil
}
