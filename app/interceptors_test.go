package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func tracedContext() context.Context {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestRPCAttrsWithoutSpan(t *testing.T) {
	attrs := rpcAttrs(context.Background(), "/apps.v0.ToolService/Execute")
	if len(attrs) != 2 {
		t.Fatalf("attrs = %v", attrs)
	}
}

func TestUnaryLoggingRecordsCodeAndTrace(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	interceptor := unaryLogging(logger)
	info := &grpc.UnaryServerInfo{FullMethod: "/apps.v0.ToolService/Execute"}
	_, err := interceptor(tracedContext(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("err = %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["msg"] != "rpc finished" || entry["code"] != "NotFound" {
		t.Fatalf("entry = %v", entry)
	}
	if entry["trace_id"] != "0102030405060708090a0b0c0d0e0f10" || entry["span_id"] != "0102030405060708" {
		t.Fatalf("trace attrs = %v %v", entry["trace_id"], entry["span_id"])
	}
}
