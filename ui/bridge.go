package ui

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/relay"
)

// Bridge serves UiService by delegating to a Handler.
type Bridge struct {
	appsv0.UnimplementedUiServiceServer
	base    bridge.Base
	handler Handler
}

// NewBridge returns a UiService implementation backed by h.
func NewBridge(h Handler, base bridge.Base) *Bridge {
	return &Bridge{base: base, handler: h}
}

func (b *Bridge) HealthCheck(ctx context.Context, in *appsv0.HealthCheckRequest) (*appsv0.HealthCheckResponse, error) {
	return b.base.HealthCheck(ctx, in)
}

func (b *Bridge) Configure(ctx context.Context, in *appsv0.SettingsMap) (*appsv0.Empty, error) {
	return b.base.Configure(ctx, in)
}

func (b *Bridge) GetView(ctx context.Context, in *appsv0.ViewContext) (*appsv0.GetViewResponse, error) {
	view, err := b.handler.GetView(ctx, ViewContext{
		ViewID:   in.GetViewId(),
		Path:     in.GetPath(),
		Locale:   in.GetLocale(),
		Settings: in.GetSettings(),
	})
	if err != nil {
		return &appsv0.GetViewResponse{Error: err.Error()}, nil
	}
	return &appsv0.GetViewResponse{View: ViewToProto(view)}, nil
}

// OnEvent forwards a user event. A handler error and a handler-reported
// EventResult.Error both land in the response's error field.
func (b *Bridge) OnEvent(ctx context.Context, in *appsv0.UiEvent) (*appsv0.UiEventResponse, error) {
	result, err := b.handler.OnEvent(ctx, Event{
		ViewID:  in.GetViewId(),
		BlockID: in.GetBlockId(),
		Action:  in.GetAction(),
		Value:   in.GetValue(),
	})
	if err != nil {
		return &appsv0.UiEventResponse{Error: err.Error()}, nil
	}
	resp := &appsv0.UiEventResponse{Error: result.Error, Toast: result.Toast}
	if result.View != nil {
		resp.View = ViewToProto(*result.View)
	}
	return resp, nil
}

func (b *Bridge) StreamUpdates(_ *appsv0.Empty, stream appsv0.UiService_StreamUpdatesServer) error {
	streamer, ok := b.handler.(UpdateStreamer)
	if !ok {
		return status.Error(codes.Unimplemented, "ui handler does not stream updates")
	}
	ctx := stream.Context()
	updates, err := streamer.StreamUpdates(ctx)
	if err != nil {
		return apperr.Status(err)
	}
	return relay.Pipe[View, appsv0.UiView](ctx, updates, stream, relay.DefaultBuffer, ViewToProto)
}

// HandleRequest proxies an HTTP request. Unlike view calls, a handler error
// fails the RPC so the host can answer the browser with a 5xx.
func (b *Bridge) HandleRequest(ctx context.Context, in *appsv0.HttpRequest) (*appsv0.HttpResponse, error) {
	h, ok := b.handler.(HTTPHandler)
	if !ok {
		return nil, status.Error(codes.Unimplemented, "ui handler does not serve http requests")
	}
	resp, err := h.HandleRequest(ctx, HTTPRequest{
		Method:  in.GetMethod(),
		Path:    in.GetPath(),
		Query:   in.GetQuery(),
		Headers: in.GetHeaders(),
		Body:    in.GetBody(),
	})
	if err != nil {
		return nil, apperr.Status(err)
	}
	return &appsv0.HttpResponse{
		StatusCode: int32(resp.StatusCode),
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}
