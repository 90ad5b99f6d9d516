package appsv0

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ChannelService_HealthCheck_FullMethodName = "/apps.v0.ChannelService/HealthCheck"
	ChannelService_Id_FullMethodName          = "/apps.v0.ChannelService/Id"
	ChannelService_Connect_FullMethodName     = "/apps.v0.ChannelService/Connect"
	ChannelService_Disconnect_FullMethodName  = "/apps.v0.ChannelService/Disconnect"
	ChannelService_Send_FullMethodName        = "/apps.v0.ChannelService/Send"
	ChannelService_Receive_FullMethodName     = "/apps.v0.ChannelService/Receive"
	ChannelService_Configure_FullMethodName   = "/apps.v0.ChannelService/Configure"
)

// ChannelServiceClient is the host-side client API for ChannelService.
type ChannelServiceClient interface {
	HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
	Id(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*IdResponse, error)
	Connect(ctx context.Context, in *ChannelConnectRequest, opts ...grpc.CallOption) (*ChannelConnectResponse, error)
	Disconnect(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ChannelDisconnectResponse, error)
	Send(ctx context.Context, in *ChannelSendRequest, opts ...grpc.CallOption) (*ChannelSendResponse, error)
	Receive(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChannelEnvelope], error)
	Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error)
}

type channelServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewChannelServiceClient returns a client that encodes calls with the CBOR codec.
func NewChannelServiceClient(cc grpc.ClientConnInterface) ChannelServiceClient {
	return &channelServiceClient{cc}
}

func (c *channelServiceClient) HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(HealthCheckResponse)
	err := c.cc.Invoke(ctx, ChannelService_HealthCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *channelServiceClient) Id(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*IdResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(IdResponse)
	err := c.cc.Invoke(ctx, ChannelService_Id_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *channelServiceClient) Connect(ctx context.Context, in *ChannelConnectRequest, opts ...grpc.CallOption) (*ChannelConnectResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ChannelConnectResponse)
	err := c.cc.Invoke(ctx, ChannelService_Connect_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *channelServiceClient) Disconnect(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ChannelDisconnectResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ChannelDisconnectResponse)
	err := c.cc.Invoke(ctx, ChannelService_Disconnect_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *channelServiceClient) Send(ctx context.Context, in *ChannelSendRequest, opts ...grpc.CallOption) (*ChannelSendResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ChannelSendResponse)
	err := c.cc.Invoke(ctx, ChannelService_Send_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *channelServiceClient) Receive(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChannelEnvelope], error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &ChannelService_ServiceDesc.Streams[0], ChannelService_Receive_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Empty, ChannelEnvelope]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ChannelService_ReceiveClient is the host-side view of the Receive stream.
type ChannelService_ReceiveClient = grpc.ServerStreamingClient[ChannelEnvelope]

func (c *channelServiceClient) Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, ChannelService_Configure_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ChannelServiceServer is the plugin-side API for ChannelService.
// Implementations must embed UnimplementedChannelServiceServer.
type ChannelServiceServer interface {
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error)
	Id(context.Context, *Empty) (*IdResponse, error)
	Connect(context.Context, *ChannelConnectRequest) (*ChannelConnectResponse, error)
	Disconnect(context.Context, *Empty) (*ChannelDisconnectResponse, error)
	Send(context.Context, *ChannelSendRequest) (*ChannelSendResponse, error)
	Receive(*Empty, grpc.ServerStreamingServer[ChannelEnvelope]) error
	Configure(context.Context, *SettingsMap) (*Empty, error)
	mustEmbedUnimplementedChannelServiceServer()
}

// UnimplementedChannelServiceServer answers every method with codes.Unimplemented.
type UnimplementedChannelServiceServer struct{}

func (UnimplementedChannelServiceServer) HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealthCheck not implemented")
}

func (UnimplementedChannelServiceServer) Id(context.Context, *Empty) (*IdResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Id not implemented")
}

func (UnimplementedChannelServiceServer) Connect(context.Context, *ChannelConnectRequest) (*ChannelConnectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Connect not implemented")
}

func (UnimplementedChannelServiceServer) Disconnect(context.Context, *Empty) (*ChannelDisconnectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Disconnect not implemented")
}

func (UnimplementedChannelServiceServer) Send(context.Context, *ChannelSendRequest) (*ChannelSendResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Send not implemented")
}

func (UnimplementedChannelServiceServer) Receive(*Empty, grpc.ServerStreamingServer[ChannelEnvelope]) error {
	return status.Error(codes.Unimplemented, "method Receive not implemented")
}

func (UnimplementedChannelServiceServer) Configure(context.Context, *SettingsMap) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Configure not implemented")
}

func (UnimplementedChannelServiceServer) mustEmbedUnimplementedChannelServiceServer() {}

// RegisterChannelServiceServer registers srv on s.
func RegisterChannelServiceServer(s grpc.ServiceRegistrar, srv ChannelServiceServer) {
	s.RegisterService(&ChannelService_ServiceDesc, srv)
}

func _ChannelService_HealthCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChannelServiceServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChannelService_HealthCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChannelServiceServer).HealthCheck(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChannelService_Id_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChannelServiceServer).Id(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChannelService_Id_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChannelServiceServer).Id(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChannelService_Connect_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChannelConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChannelServiceServer).Connect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChannelService_Connect_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChannelServiceServer).Connect(ctx, req.(*ChannelConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChannelService_Disconnect_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChannelServiceServer).Disconnect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChannelService_Disconnect_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChannelServiceServer).Disconnect(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChannelService_Send_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChannelSendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChannelServiceServer).Send(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChannelService_Send_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChannelServiceServer).Send(ctx, req.(*ChannelSendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChannelService_Receive_Handler(srv any, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChannelServiceServer).Receive(m, &grpc.GenericServerStream[Empty, ChannelEnvelope]{ServerStream: stream})
}

// ChannelService_ReceiveServer is the plugin-side view of the Receive stream.
type ChannelService_ReceiveServer = grpc.ServerStreamingServer[ChannelEnvelope]

func _ChannelService_Configure_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SettingsMap)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChannelServiceServer).Configure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChannelService_Configure_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChannelServiceServer).Configure(ctx, req.(*SettingsMap))
	}
	return interceptor(ctx, in, info, handler)
}

// ChannelService_ServiceDesc is the grpc.ServiceDesc for ChannelService.
var ChannelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "apps.v0.ChannelService",
	HandlerType: (*ChannelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HealthCheck",
			Handler:    _ChannelService_HealthCheck_Handler,
		},
		{
			MethodName: "Id",
			Handler:    _ChannelService_Id_Handler,
		},
		{
			MethodName: "Connect",
			Handler:    _ChannelService_Connect_Handler,
		},
		{
			MethodName: "Disconnect",
			Handler:    _ChannelService_Disconnect_Handler,
		},
		{
			MethodName: "Send",
			Handler:    _ChannelService_Send_Handler,
		},
		{
			MethodName: "Configure",
			Handler:    _ChannelService_Configure_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Receive",
			Handler:       _ChannelService_Receive_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "apps/v0/channel.proto",
}
