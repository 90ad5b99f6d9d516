package appsv0

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	GatewayService_HealthCheck_FullMethodName = "/apps.v0.GatewayService/HealthCheck"
	GatewayService_Stream_FullMethodName      = "/apps.v0.GatewayService/Stream"
	GatewayService_Poll_FullMethodName        = "/apps.v0.GatewayService/Poll"
	GatewayService_Cancel_FullMethodName      = "/apps.v0.GatewayService/Cancel"
	GatewayService_Configure_FullMethodName   = "/apps.v0.GatewayService/Configure"
)

// GatewayServiceClient is the host-side client API for GatewayService.
type GatewayServiceClient interface {
	HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
	Stream(ctx context.Context, in *GatewayRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GatewayEvent], error)
	Poll(ctx context.Context, in *PollRequest, opts ...grpc.CallOption) (*PollResponse, error)
	Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*CancelResponse, error)
	Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error)
}

type gatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGatewayServiceClient returns a client that encodes calls with the CBOR codec.
func NewGatewayServiceClient(cc grpc.ClientConnInterface) GatewayServiceClient {
	return &gatewayServiceClient{cc}
}

func (c *gatewayServiceClient) HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(HealthCheckResponse)
	err := c.cc.Invoke(ctx, GatewayService_HealthCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gatewayServiceClient) Stream(ctx context.Context, in *GatewayRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GatewayEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &GatewayService_ServiceDesc.Streams[0], GatewayService_Stream_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GatewayRequest, GatewayEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// GatewayService_StreamClient is the host-side view of the Stream stream.
type GatewayService_StreamClient = grpc.ServerStreamingClient[GatewayEvent]

func (c *gatewayServiceClient) Poll(ctx context.Context, in *PollRequest, opts ...grpc.CallOption) (*PollResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(PollResponse)
	err := c.cc.Invoke(ctx, GatewayService_Poll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gatewayServiceClient) Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*CancelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(CancelResponse)
	err := c.cc.Invoke(ctx, GatewayService_Cancel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gatewayServiceClient) Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, GatewayService_Configure_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GatewayServiceServer is the plugin-side API for GatewayService.
// Implementations must embed UnimplementedGatewayServiceServer.
type GatewayServiceServer interface {
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error)
	Stream(*GatewayRequest, grpc.ServerStreamingServer[GatewayEvent]) error
	Poll(context.Context, *PollRequest) (*PollResponse, error)
	Cancel(context.Context, *CancelRequest) (*CancelResponse, error)
	Configure(context.Context, *SettingsMap) (*Empty, error)
	mustEmbedUnimplementedGatewayServiceServer()
}

// UnimplementedGatewayServiceServer answers every method with codes.Unimplemented.
type UnimplementedGatewayServiceServer struct{}

func (UnimplementedGatewayServiceServer) HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealthCheck not implemented")
}

func (UnimplementedGatewayServiceServer) Stream(*GatewayRequest, grpc.ServerStreamingServer[GatewayEvent]) error {
	return status.Error(codes.Unimplemented, "method Stream not implemented")
}

func (UnimplementedGatewayServiceServer) Poll(context.Context, *PollRequest) (*PollResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Poll not implemented")
}

func (UnimplementedGatewayServiceServer) Cancel(context.Context, *CancelRequest) (*CancelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Cancel not implemented")
}

func (UnimplementedGatewayServiceServer) Configure(context.Context, *SettingsMap) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Configure not implemented")
}

func (UnimplementedGatewayServiceServer) mustEmbedUnimplementedGatewayServiceServer() {}

// RegisterGatewayServiceServer registers srv on s.
func RegisterGatewayServiceServer(s grpc.ServiceRegistrar, srv GatewayServiceServer) {
	s.RegisterService(&GatewayService_ServiceDesc, srv)
}

func _GatewayService_HealthCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GatewayServiceServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GatewayService_HealthCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GatewayServiceServer).HealthCheck(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GatewayService_Stream_Handler(srv any, stream grpc.ServerStream) error {
	m := new(GatewayRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(GatewayServiceServer).Stream(m, &grpc.GenericServerStream[GatewayRequest, GatewayEvent]{ServerStream: stream})
}

// GatewayService_StreamServer is the plugin-side view of the Stream stream.
type GatewayService_StreamServer = grpc.ServerStreamingServer[GatewayEvent]

func _GatewayService_Poll_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PollRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GatewayServiceServer).Poll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GatewayService_Poll_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GatewayServiceServer).Poll(ctx, req.(*PollRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GatewayService_Cancel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CancelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GatewayServiceServer).Cancel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GatewayService_Cancel_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GatewayServiceServer).Cancel(ctx, req.(*CancelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GatewayService_Configure_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SettingsMap)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GatewayServiceServer).Configure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GatewayService_Configure_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GatewayServiceServer).Configure(ctx, req.(*SettingsMap))
	}
	return interceptor(ctx, in, info, handler)
}

// GatewayService_ServiceDesc is the grpc.ServiceDesc for GatewayService.
var GatewayService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "apps.v0.GatewayService",
	HandlerType: (*GatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HealthCheck",
			Handler:    _GatewayService_HealthCheck_Handler,
		},
		{
			MethodName: "Poll",
			Handler:    _GatewayService_Poll_Handler,
		},
		{
			MethodName: "Cancel",
			Handler:    _GatewayService_Cancel_Handler,
		},
		{
			MethodName: "Configure",
			Handler:    _GatewayService_Configure_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Stream",
			Handler:       _GatewayService_Stream_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "apps/v0/gateway.proto",
}
