package appsv0

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	UiService_HealthCheck_FullMethodName   = "/apps.v0.UiService/HealthCheck"
	UiService_GetView_FullMethodName       = "/apps.v0.UiService/GetView"
	UiService_OnEvent_FullMethodName       = "/apps.v0.UiService/OnEvent"
	UiService_StreamUpdates_FullMethodName = "/apps.v0.UiService/StreamUpdates"
	UiService_HandleRequest_FullMethodName = "/apps.v0.UiService/HandleRequest"
	UiService_Configure_FullMethodName     = "/apps.v0.UiService/Configure"
)

// UiServiceClient is the host-side client API for UiService.
type UiServiceClient interface {
	HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
	GetView(ctx context.Context, in *ViewContext, opts ...grpc.CallOption) (*GetViewResponse, error)
	OnEvent(ctx context.Context, in *UiEvent, opts ...grpc.CallOption) (*UiEventResponse, error)
	StreamUpdates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[UiView], error)
	HandleRequest(ctx context.Context, in *HttpRequest, opts ...grpc.CallOption) (*HttpResponse, error)
	Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error)
}

type uiServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewUiServiceClient returns a client that encodes calls with the CBOR codec.
func NewUiServiceClient(cc grpc.ClientConnInterface) UiServiceClient {
	return &uiServiceClient{cc}
}

func (c *uiServiceClient) HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(HealthCheckResponse)
	err := c.cc.Invoke(ctx, UiService_HealthCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uiServiceClient) GetView(ctx context.Context, in *ViewContext, opts ...grpc.CallOption) (*GetViewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(GetViewResponse)
	err := c.cc.Invoke(ctx, UiService_GetView_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uiServiceClient) OnEvent(ctx context.Context, in *UiEvent, opts ...grpc.CallOption) (*UiEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(UiEventResponse)
	err := c.cc.Invoke(ctx, UiService_OnEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uiServiceClient) StreamUpdates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[UiView], error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &UiService_ServiceDesc.Streams[0], UiService_StreamUpdates_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Empty, UiView]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// UiService_StreamUpdatesClient is the host-side view of the StreamUpdates stream.
type UiService_StreamUpdatesClient = grpc.ServerStreamingClient[UiView]

func (c *uiServiceClient) HandleRequest(ctx context.Context, in *HttpRequest, opts ...grpc.CallOption) (*HttpResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(HttpResponse)
	err := c.cc.Invoke(ctx, UiService_HandleRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uiServiceClient) Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, UiService_Configure_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UiServiceServer is the plugin-side API for UiService.
// Implementations must embed UnimplementedUiServiceServer.
type UiServiceServer interface {
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error)
	GetView(context.Context, *ViewContext) (*GetViewResponse, error)
	OnEvent(context.Context, *UiEvent) (*UiEventResponse, error)
	StreamUpdates(*Empty, grpc.ServerStreamingServer[UiView]) error
	HandleRequest(context.Context, *HttpRequest) (*HttpResponse, error)
	Configure(context.Context, *SettingsMap) (*Empty, error)
	mustEmbedUnimplementedUiServiceServer()
}

// UnimplementedUiServiceServer answers every method with codes.Unimplemented.
type UnimplementedUiServiceServer struct{}

func (UnimplementedUiServiceServer) HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealthCheck not implemented")
}

func (UnimplementedUiServiceServer) GetView(context.Context, *ViewContext) (*GetViewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetView not implemented")
}

func (UnimplementedUiServiceServer) OnEvent(context.Context, *UiEvent) (*UiEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnEvent not implemented")
}

func (UnimplementedUiServiceServer) StreamUpdates(*Empty, grpc.ServerStreamingServer[UiView]) error {
	return status.Error(codes.Unimplemented, "method StreamUpdates not implemented")
}

func (UnimplementedUiServiceServer) HandleRequest(context.Context, *HttpRequest) (*HttpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HandleRequest not implemented")
}

func (UnimplementedUiServiceServer) Configure(context.Context, *SettingsMap) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Configure not implemented")
}

func (UnimplementedUiServiceServer) mustEmbedUnimplementedUiServiceServer() {}

// RegisterUiServiceServer registers srv on s.
func RegisterUiServiceServer(s grpc.ServiceRegistrar, srv UiServiceServer) {
	s.RegisterService(&UiService_ServiceDesc, srv)
}

func _UiService_HealthCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UiServiceServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UiService_HealthCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UiServiceServer).HealthCheck(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UiService_GetView_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ViewContext)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UiServiceServer).GetView(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UiService_GetView_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UiServiceServer).GetView(ctx, req.(*ViewContext))
	}
	return interceptor(ctx, in, info, handler)
}

func _UiService_OnEvent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UiEvent)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UiServiceServer).OnEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UiService_OnEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UiServiceServer).OnEvent(ctx, req.(*UiEvent))
	}
	return interceptor(ctx, in, info, handler)
}

func _UiService_StreamUpdates_Handler(srv any, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UiServiceServer).StreamUpdates(m, &grpc.GenericServerStream[Empty, UiView]{ServerStream: stream})
}

// UiService_StreamUpdatesServer is the plugin-side view of the StreamUpdates stream.
type UiService_StreamUpdatesServer = grpc.ServerStreamingServer[UiView]

func _UiService_HandleRequest_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HttpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UiServiceServer).HandleRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UiService_HandleRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UiServiceServer).HandleRequest(ctx, req.(*HttpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UiService_Configure_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SettingsMap)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UiServiceServer).Configure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UiService_Configure_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UiServiceServer).Configure(ctx, req.(*SettingsMap))
	}
	return interceptor(ctx, in, info, handler)
}

// UiService_ServiceDesc is the grpc.ServiceDesc for UiService.
var UiService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "apps.v0.UiService",
	HandlerType: (*UiServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HealthCheck",
			Handler:    _UiService_HealthCheck_Handler,
		},
		{
			MethodName: "GetView",
			Handler:    _UiService_GetView_Handler,
		},
		{
			MethodName: "OnEvent",
			Handler:    _UiService_OnEvent_Handler,
		},
		{
			MethodName: "HandleRequest",
			Handler:    _UiService_HandleRequest_Handler,
		},
		{
			MethodName: "Configure",
			Handler:    _UiService_Configure_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamUpdates",
			Handler:       _UiService_StreamUpdates_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "apps/v0/ui.proto",
}
