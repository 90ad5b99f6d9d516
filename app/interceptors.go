package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// rpcAttrs returns the method and, when the call is traced, its trace and
// span ids.
func rpcAttrs(ctx context.Context, method string) []any {
	attrs := []any{"method", method}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		attrs = append(attrs, "trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}
	return attrs
}

func unaryLogging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		attrs := append(rpcAttrs(ctx, info.FullMethod),
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		logger.DebugContext(ctx, "rpc finished", attrs...)
		return resp, err
	}
}

func streamLogging(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		ctx := ss.Context()
		logger.InfoContext(ctx, "stream opened", rpcAttrs(ctx, info.FullMethod)...)
		err := handler(srv, ss)
		attrs := append(rpcAttrs(ctx, info.FullMethod),
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		logger.InfoContext(ctx, "stream closed", attrs...)
		return err
	}
}

// drainStreams derives every stream's context from drainCtx as well as the
// client's, so cancelling drainCtx ends all open streams.
func drainStreams(drainCtx context.Context) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, cancel := context.WithCancel(ss.Context())
		defer cancel()
		stop := context.AfterFunc(drainCtx, cancel)
		defer stop()
		return handler(srv, &drainingStream{ServerStream: ss, ctx: ctx})
	}
}

type drainingStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *drainingStream) Context() context.Context {
	return s.ctx
}
