package tool

import (
	"context"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/bridge"
)

// Bridge serves ToolService by delegating to a Handler.
type Bridge struct {
	appsv0.UnimplementedToolServiceServer
	base    bridge.Base
	handler Handler
}

// NewBridge returns a ToolService implementation backed by h.
func NewBridge(h Handler, base bridge.Base) *Bridge {
	return &Bridge{base: base, handler: h}
}

func (b *Bridge) HealthCheck(ctx context.Context, in *appsv0.HealthCheckRequest) (*appsv0.HealthCheckResponse, error) {
	return b.base.HealthCheck(ctx, in)
}

func (b *Bridge) Configure(ctx context.Context, in *appsv0.SettingsMap) (*appsv0.Empty, error) {
	return b.base.Configure(ctx, in)
}

func (b *Bridge) Name(context.Context, *appsv0.Empty) (*appsv0.NameResponse, error) {
	return &appsv0.NameResponse{Name: b.handler.Name()}, nil
}

func (b *Bridge) Description(context.Context, *appsv0.Empty) (*appsv0.DescriptionResponse, error) {
	return &appsv0.DescriptionResponse{Description: b.handler.Description()}, nil
}

func (b *Bridge) Schema(context.Context, *appsv0.Empty) (*appsv0.SchemaResponse, error) {
	return &appsv0.SchemaResponse{Schema: normalizeSchema(b.handler.Schema())}, nil
}

// Execute runs the handler. A handler error becomes the response content
// with IsError set; the call itself succeeds.
func (b *Bridge) Execute(ctx context.Context, in *appsv0.ExecuteRequest) (*appsv0.ExecuteResponse, error) {
	content, err := b.handler.Execute(ctx, normalizeInput(in.GetInput()))
	if err != nil {
		return &appsv0.ExecuteResponse{Content: err.Error(), IsError: true}, nil
	}
	return &appsv0.ExecuteResponse{Content: content}, nil
}

func (b *Bridge) RequiresApproval(context.Context, *appsv0.Empty) (*appsv0.ApprovalResponse, error) {
	approver, ok := b.handler.(ApprovalRequirer)
	return &appsv0.ApprovalResponse{RequiresApproval: ok && approver.RequiresApproval()}, nil
}
