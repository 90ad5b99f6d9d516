package gateway

import (
	"context"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/relay"
)

// Bridge serves GatewayService by delegating to a Handler.
type Bridge struct {
	appsv0.UnimplementedGatewayServiceServer
	base    bridge.Base
	handler Handler
}

// NewBridge returns a GatewayService implementation backed by h.
func NewBridge(h Handler, base bridge.Base) *Bridge {
	return &Bridge{base: base, handler: h}
}

func (b *Bridge) HealthCheck(ctx context.Context, in *appsv0.HealthCheckRequest) (*appsv0.HealthCheckResponse, error) {
	return b.base.HealthCheck(ctx, in)
}

func (b *Bridge) Configure(ctx context.Context, in *appsv0.SettingsMap) (*appsv0.Empty, error) {
	return b.base.Configure(ctx, in)
}

// Stream relays completion events. The stream's context is handed to the
// handler, so a departed caller also stops the provider call.
func (b *Bridge) Stream(in *appsv0.GatewayRequest, stream appsv0.GatewayService_StreamServer) error {
	ctx := stream.Context()
	events, err := b.handler.Stream(ctx, requestFromProto(in))
	if err != nil {
		return apperr.Status(err)
	}
	return relay.Pipe[Event, appsv0.GatewayEvent](ctx, events, stream, relay.GatewayBuffer, eventToProto)
}

// Poll returns buffered events when the handler implements Poller and an
// empty, incomplete batch otherwise.
func (b *Bridge) Poll(ctx context.Context, in *appsv0.PollRequest) (*appsv0.PollResponse, error) {
	poller, ok := b.handler.(Poller)
	if !ok {
		return &appsv0.PollResponse{Events: []*appsv0.GatewayEvent{}}, nil
	}
	events, complete, err := poller.Poll(ctx, in.GetRequestId())
	if err != nil {
		return &appsv0.PollResponse{Events: []*appsv0.GatewayEvent{
			eventToProto(Event{Type: EventError, Content: err.Error(), RequestID: in.GetRequestId()}),
		}, Complete: true}, nil
	}
	out := &appsv0.PollResponse{Complete: complete}
	for _, ev := range events {
		out.Events = append(out.Events, eventToProto(ev))
	}
	return out, nil
}

func (b *Bridge) Cancel(ctx context.Context, in *appsv0.CancelRequest) (*appsv0.CancelResponse, error) {
	if err := b.handler.Cancel(ctx, in.GetRequestId()); err != nil {
		return &appsv0.CancelResponse{Error: err.Error()}, nil
	}
	return &appsv0.CancelResponse{Cancelled: true}, nil
}
