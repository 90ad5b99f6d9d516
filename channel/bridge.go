package channel

import (
	"context"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/relay"
)

// Bridge serves ChannelService by delegating to a Handler.
type Bridge struct {
	appsv0.UnimplementedChannelServiceServer
	base    bridge.Base
	handler Handler
}

// NewBridge returns a ChannelService implementation backed by h.
func NewBridge(h Handler, base bridge.Base) *Bridge {
	return &Bridge{base: base, handler: h}
}

func (b *Bridge) HealthCheck(ctx context.Context, in *appsv0.HealthCheckRequest) (*appsv0.HealthCheckResponse, error) {
	return b.base.HealthCheck(ctx, in)
}

func (b *Bridge) Configure(ctx context.Context, in *appsv0.SettingsMap) (*appsv0.Empty, error) {
	return b.base.Configure(ctx, in)
}

func (b *Bridge) Id(context.Context, *appsv0.Empty) (*appsv0.IdResponse, error) {
	return &appsv0.IdResponse{Id: b.handler.ID()}, nil
}

func (b *Bridge) Connect(ctx context.Context, in *appsv0.ChannelConnectRequest) (*appsv0.ChannelConnectResponse, error) {
	config := in.GetConfig()
	if config == nil {
		config = map[string]string{}
	}
	err := b.handler.Connect(ctx, config)
	return &appsv0.ChannelConnectResponse{Error: bridge.ErrorText(err)}, nil
}

func (b *Bridge) Disconnect(ctx context.Context, _ *appsv0.Empty) (*appsv0.ChannelDisconnectResponse, error) {
	err := b.handler.Disconnect(ctx)
	return &appsv0.ChannelDisconnectResponse{Error: bridge.ErrorText(err)}, nil
}

func (b *Bridge) Send(ctx context.Context, in *appsv0.ChannelSendRequest) (*appsv0.ChannelSendResponse, error) {
	id, err := b.handler.Send(ctx, FromProto(in.GetEnvelope()))
	if err != nil {
		return &appsv0.ChannelSendResponse{Error: err.Error()}, nil
	}
	return &appsv0.ChannelSendResponse{MessageId: id}, nil
}

// Receive streams inbound envelopes until the handler closes its channel or
// the caller goes away. Failing to open the stream is a transport fault.
func (b *Bridge) Receive(_ *appsv0.Empty, stream appsv0.ChannelService_ReceiveServer) error {
	ctx := stream.Context()
	inbound, err := b.handler.Receive(ctx)
	if err != nil {
		return apperr.Status(err)
	}
	return relay.Pipe[Envelope, appsv0.ChannelEnvelope](ctx, inbound, stream, relay.DefaultBuffer, ToProto)
}
