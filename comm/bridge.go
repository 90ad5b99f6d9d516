package comm

import (
	"context"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/relay"
)

// Bridge serves CommService by delegating to a Handler.
type Bridge struct {
	appsv0.UnimplementedCommServiceServer
	base    bridge.Base
	handler Handler
}

// NewBridge returns a CommService implementation backed by h.
func NewBridge(h Handler, base bridge.Base) *Bridge {
	return &Bridge{base: base, handler: h}
}

func (b *Bridge) HealthCheck(ctx context.Context, in *appsv0.HealthCheckRequest) (*appsv0.HealthCheckResponse, error) {
	return b.base.HealthCheck(ctx, in)
}

func (b *Bridge) Configure(ctx context.Context, in *appsv0.SettingsMap) (*appsv0.Empty, error) {
	return b.base.Configure(ctx, in)
}

func (b *Bridge) Name(context.Context, *appsv0.Empty) (*appsv0.CommNameResponse, error) {
	return &appsv0.CommNameResponse{Name: b.handler.Name()}, nil
}

func (b *Bridge) Version(context.Context, *appsv0.Empty) (*appsv0.CommVersionResponse, error) {
	return &appsv0.CommVersionResponse{Version: b.handler.Version()}, nil
}

func (b *Bridge) Connect(ctx context.Context, in *appsv0.CommConnectRequest) (*appsv0.CommConnectResponse, error) {
	config := in.GetConfig()
	if config == nil {
		config = map[string]string{}
	}
	return &appsv0.CommConnectResponse{Error: bridge.ErrorText(b.handler.Connect(ctx, config))}, nil
}

func (b *Bridge) Disconnect(ctx context.Context, _ *appsv0.Empty) (*appsv0.CommDisconnectResponse, error) {
	return &appsv0.CommDisconnectResponse{Error: bridge.ErrorText(b.handler.Disconnect(ctx))}, nil
}

func (b *Bridge) IsConnected(context.Context, *appsv0.Empty) (*appsv0.CommIsConnectedResponse, error) {
	return &appsv0.CommIsConnectedResponse{Connected: b.handler.IsConnected()}, nil
}

func (b *Bridge) Send(ctx context.Context, in *appsv0.CommSendRequest) (*appsv0.CommSendResponse, error) {
	return &appsv0.CommSendResponse{Error: bridge.ErrorText(b.handler.Send(ctx, FromProto(in.GetMessage())))}, nil
}

func (b *Bridge) Subscribe(ctx context.Context, in *appsv0.CommSubscribeRequest) (*appsv0.CommSubscribeResponse, error) {
	return &appsv0.CommSubscribeResponse{Error: bridge.ErrorText(b.handler.Subscribe(ctx, in.GetTopic()))}, nil
}

func (b *Bridge) Unsubscribe(ctx context.Context, in *appsv0.CommUnsubscribeRequest) (*appsv0.CommUnsubscribeResponse, error) {
	return &appsv0.CommUnsubscribeResponse{Error: bridge.ErrorText(b.handler.Unsubscribe(ctx, in.GetTopic()))}, nil
}

func (b *Bridge) Register(ctx context.Context, in *appsv0.CommRegisterRequest) (*appsv0.CommRegisterResponse, error) {
	err := b.handler.Register(ctx, in.GetAgentId(), in.GetCapabilities())
	return &appsv0.CommRegisterResponse{Error: bridge.ErrorText(err)}, nil
}

func (b *Bridge) Deregister(ctx context.Context, _ *appsv0.Empty) (*appsv0.CommDeregisterResponse, error) {
	return &appsv0.CommDeregisterResponse{Error: bridge.ErrorText(b.handler.Deregister(ctx))}, nil
}

func (b *Bridge) Receive(_ *appsv0.Empty, stream appsv0.CommService_ReceiveServer) error {
	ctx := stream.Context()
	inbound, err := b.handler.Receive(ctx)
	if err != nil {
		return apperr.Status(err)
	}
	return relay.Pipe[Message, appsv0.CommMessage](ctx, inbound, stream, relay.DefaultBuffer, ToProto)
}
