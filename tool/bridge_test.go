package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/appenv"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/internal/testkit"
)

type echoTool struct {
	schema   json.RawMessage
	lastArgs json.RawMessage
	err      error
}

func (e *echoTool) Name() string            { return "echo" }
func (e *echoTool) Description() string     { return "Echoes its input" }
func (e *echoTool) Schema() json.RawMessage { return e.schema }

func (e *echoTool) Execute(_ context.Context, input json.RawMessage) (string, error) {
	e.lastArgs = input
	if e.err != nil {
		return "", e.err
	}
	return string(input), nil
}

type guardedTool struct{ echoTool }

func (guardedTool) RequiresApproval() bool { return true }

func newClient(t *testing.T, h Handler) appsv0.ToolServiceClient {
	t.Helper()
	base := bridge.Base{Env: appenv.Env{Name: "echo-app", Version: "2.0.0"}}
	conn := testkit.Serve(t, func(s *grpc.Server) {
		appsv0.RegisterToolServiceServer(s, NewBridge(h, base))
	})
	return appsv0.NewToolServiceClient(conn)
}

func TestBridgeDescribesTool(t *testing.T) {
	client := newClient(t, &echoTool{schema: json.RawMessage(`{"type":"object"}`)})
	ctx := testkit.Context(t, 5*time.Second)

	name, err := client.Name(ctx, &appsv0.Empty{})
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	if name.GetName() != "echo" {
		t.Fatalf("name = %q", name.GetName())
	}
	desc, err := client.Description(ctx, &appsv0.Empty{})
	if err != nil {
		t.Fatalf("description: %v", err)
	}
	if desc.GetDescription() != "Echoes its input" {
		t.Fatalf("description = %q", desc.GetDescription())
	}
	schema, err := client.Schema(ctx, &appsv0.Empty{})
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if string(schema.GetSchema()) != `{"type":"object"}` {
		t.Fatalf("schema = %s", schema.GetSchema())
	}
}

func TestBridgeReportsInvalidSchemaAsEmptyObject(t *testing.T) {
	client := newClient(t, &echoTool{schema: json.RawMessage(`{broken`)})

	schema, err := client.Schema(testkit.Context(t, 5*time.Second), &appsv0.Empty{})
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if string(schema.GetSchema()) != "{}" {
		t.Fatalf("schema = %s, want {}", schema.GetSchema())
	}
}

func TestBridgeExecuteSuccess(t *testing.T) {
	handler := &echoTool{}
	client := newClient(t, handler)

	resp, err := client.Execute(testkit.Context(t, 5*time.Second), &appsv0.ExecuteRequest{Input: []byte(`{"a":1}`)})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.GetIsError() {
		t.Fatal("expected success")
	}
	if resp.GetContent() != `{"a":1}` {
		t.Fatalf("content = %q", resp.GetContent())
	}
}

func TestBridgeExecuteNormalizesInput(t *testing.T) {
	tests := map[string][]byte{
		"empty":   nil,
		"invalid": []byte("not json"),
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			handler := &echoTool{}
			client := newClient(t, handler)

			if _, err := client.Execute(testkit.Context(t, 5*time.Second), &appsv0.ExecuteRequest{Input: input}); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if string(handler.lastArgs) != "{}" {
				t.Fatalf("handler input = %s, want {}", handler.lastArgs)
			}
		})
	}
}

func TestBridgeExecuteErrorIsInBand(t *testing.T) {
	client := newClient(t, &echoTool{err: errors.New("division by zero")})

	resp, err := client.Execute(testkit.Context(t, 5*time.Second), &appsv0.ExecuteRequest{Input: []byte(`{}`)})
	if err != nil {
		t.Fatalf("execute returned transport error: %v", err)
	}
	if !resp.GetIsError() {
		t.Fatal("expected is_error")
	}
	if resp.GetContent() != "division by zero" {
		t.Fatalf("content = %q", resp.GetContent())
	}
}

func TestBridgeRequiresApproval(t *testing.T) {
	ctx := testkit.Context(t, 5*time.Second)

	plain, err := newClient(t, &echoTool{}).RequiresApproval(ctx, &appsv0.Empty{})
	if err != nil {
		t.Fatalf("requires approval: %v", err)
	}
	if plain.GetRequiresApproval() {
		t.Fatal("plain tool should not require approval")
	}

	guarded, err := newClient(t, &guardedTool{}).RequiresApproval(ctx, &appsv0.Empty{})
	if err != nil {
		t.Fatalf("requires approval: %v", err)
	}
	if !guarded.GetRequiresApproval() {
		t.Fatal("guarded tool should require approval")
	}
}

func TestBridgeHealthCheckAndConfigure(t *testing.T) {
	var settings map[string]string
	base := bridge.Base{
		Env:         appenv.Env{Name: "echo-app", Version: "2.0.0"},
		OnConfigure: func(v map[string]string) { settings = v },
	}
	conn := testkit.Serve(t, func(s *grpc.Server) {
		appsv0.RegisterToolServiceServer(s, NewBridge(&echoTool{}, base))
	})
	client := appsv0.NewToolServiceClient(conn)
	ctx := testkit.Context(t, 5*time.Second)

	health, err := client.HealthCheck(ctx, &appsv0.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if !health.GetHealthy() || health.GetName() != "echo-app" || health.GetVersion() != "2.0.0" {
		t.Fatalf("health = %+v", health)
	}

	if _, err := client.Configure(ctx, &appsv0.SettingsMap{Values: map[string]string{"mode": "strict"}}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if settings["mode"] != "strict" {
		t.Fatalf("settings = %v", settings)
	}
}
