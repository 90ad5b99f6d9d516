package appsv0

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ScheduleService_HealthCheck_FullMethodName = "/apps.v0.ScheduleService/HealthCheck"
	ScheduleService_Create_FullMethodName      = "/apps.v0.ScheduleService/Create"
	ScheduleService_Get_FullMethodName         = "/apps.v0.ScheduleService/Get"
	ScheduleService_List_FullMethodName        = "/apps.v0.ScheduleService/List"
	ScheduleService_Update_FullMethodName      = "/apps.v0.ScheduleService/Update"
	ScheduleService_Delete_FullMethodName      = "/apps.v0.ScheduleService/Delete"
	ScheduleService_Enable_FullMethodName      = "/apps.v0.ScheduleService/Enable"
	ScheduleService_Disable_FullMethodName     = "/apps.v0.ScheduleService/Disable"
	ScheduleService_Trigger_FullMethodName     = "/apps.v0.ScheduleService/Trigger"
	ScheduleService_History_FullMethodName     = "/apps.v0.ScheduleService/History"
	ScheduleService_Triggers_FullMethodName    = "/apps.v0.ScheduleService/Triggers"
	ScheduleService_Configure_FullMethodName   = "/apps.v0.ScheduleService/Configure"
)

// ScheduleServiceClient is the host-side client API for ScheduleService.
type ScheduleServiceClient interface {
	HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
	Create(ctx context.Context, in *CreateScheduleRequest, opts ...grpc.CallOption) (*ScheduleResponse, error)
	Get(ctx context.Context, in *GetScheduleRequest, opts ...grpc.CallOption) (*ScheduleResponse, error)
	List(ctx context.Context, in *ListSchedulesRequest, opts ...grpc.CallOption) (*ListSchedulesResponse, error)
	Update(ctx context.Context, in *UpdateScheduleRequest, opts ...grpc.CallOption) (*ScheduleResponse, error)
	Delete(ctx context.Context, in *DeleteScheduleRequest, opts ...grpc.CallOption) (*DeleteScheduleResponse, error)
	Enable(ctx context.Context, in *ScheduleNameRequest, opts ...grpc.CallOption) (*ScheduleResponse, error)
	Disable(ctx context.Context, in *ScheduleNameRequest, opts ...grpc.CallOption) (*ScheduleResponse, error)
	Trigger(ctx context.Context, in *ScheduleNameRequest, opts ...grpc.CallOption) (*TriggerResponse, error)
	History(ctx context.Context, in *ScheduleHistoryRequest, opts ...grpc.CallOption) (*ScheduleHistoryResponse, error)
	Triggers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ScheduleTrigger], error)
	Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error)
}

type scheduleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewScheduleServiceClient returns a client that encodes calls with the CBOR codec.
func NewScheduleServiceClient(cc grpc.ClientConnInterface) ScheduleServiceClient {
	return &scheduleServiceClient{cc}
}

func (c *scheduleServiceClient) HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(HealthCheckResponse)
	err := c.cc.Invoke(ctx, ScheduleService_HealthCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) Create(ctx context.Context, in *CreateScheduleRequest, opts ...grpc.CallOption) (*ScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ScheduleResponse)
	err := c.cc.Invoke(ctx, ScheduleService_Create_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) Get(ctx context.Context, in *GetScheduleRequest, opts ...grpc.CallOption) (*ScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ScheduleResponse)
	err := c.cc.Invoke(ctx, ScheduleService_Get_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) List(ctx context.Context, in *ListSchedulesRequest, opts ...grpc.CallOption) (*ListSchedulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ListSchedulesResponse)
	err := c.cc.Invoke(ctx, ScheduleService_List_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) Update(ctx context.Context, in *UpdateScheduleRequest, opts ...grpc.CallOption) (*ScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ScheduleResponse)
	err := c.cc.Invoke(ctx, ScheduleService_Update_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) Delete(ctx context.Context, in *DeleteScheduleRequest, opts ...grpc.CallOption) (*DeleteScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(DeleteScheduleResponse)
	err := c.cc.Invoke(ctx, ScheduleService_Delete_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) Enable(ctx context.Context, in *ScheduleNameRequest, opts ...grpc.CallOption) (*ScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ScheduleResponse)
	err := c.cc.Invoke(ctx, ScheduleService_Enable_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) Disable(ctx context.Context, in *ScheduleNameRequest, opts ...grpc.CallOption) (*ScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ScheduleResponse)
	err := c.cc.Invoke(ctx, ScheduleService_Disable_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) Trigger(ctx context.Context, in *ScheduleNameRequest, opts ...grpc.CallOption) (*TriggerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(TriggerResponse)
	err := c.cc.Invoke(ctx, ScheduleService_Trigger_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) History(ctx context.Context, in *ScheduleHistoryRequest, opts ...grpc.CallOption) (*ScheduleHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ScheduleHistoryResponse)
	err := c.cc.Invoke(ctx, ScheduleService_History_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleServiceClient) Triggers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ScheduleTrigger], error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &ScheduleService_ServiceDesc.Streams[0], ScheduleService_Triggers_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Empty, ScheduleTrigger]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ScheduleService_TriggersClient is the host-side view of the Triggers stream.
type ScheduleService_TriggersClient = grpc.ServerStreamingClient[ScheduleTrigger]

func (c *scheduleServiceClient) Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, ScheduleService_Configure_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScheduleServiceServer is the plugin-side API for ScheduleService.
// Implementations must embed UnimplementedScheduleServiceServer.
type ScheduleServiceServer interface {
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error)
	Create(context.Context, *CreateScheduleRequest) (*ScheduleResponse, error)
	Get(context.Context, *GetScheduleRequest) (*ScheduleResponse, error)
	List(context.Context, *ListSchedulesRequest) (*ListSchedulesResponse, error)
	Update(context.Context, *UpdateScheduleRequest) (*ScheduleResponse, error)
	Delete(context.Context, *DeleteScheduleRequest) (*DeleteScheduleResponse, error)
	Enable(context.Context, *ScheduleNameRequest) (*ScheduleResponse, error)
	Disable(context.Context, *ScheduleNameRequest) (*ScheduleResponse, error)
	Trigger(context.Context, *ScheduleNameRequest) (*TriggerResponse, error)
	History(context.Context, *ScheduleHistoryRequest) (*ScheduleHistoryResponse, error)
	Triggers(*Empty, grpc.ServerStreamingServer[ScheduleTrigger]) error
	Configure(context.Context, *SettingsMap) (*Empty, error)
	mustEmbedUnimplementedScheduleServiceServer()
}

// UnimplementedScheduleServiceServer answers every method with codes.Unimplemented.
type UnimplementedScheduleServiceServer struct{}

func (UnimplementedScheduleServiceServer) HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealthCheck not implemented")
}

func (UnimplementedScheduleServiceServer) Create(context.Context, *CreateScheduleRequest) (*ScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Create not implemented")
}

func (UnimplementedScheduleServiceServer) Get(context.Context, *GetScheduleRequest) (*ScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}

func (UnimplementedScheduleServiceServer) List(context.Context, *ListSchedulesRequest) (*ListSchedulesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}

func (UnimplementedScheduleServiceServer) Update(context.Context, *UpdateScheduleRequest) (*ScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Update not implemented")
}

func (UnimplementedScheduleServiceServer) Delete(context.Context, *DeleteScheduleRequest) (*DeleteScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}

func (UnimplementedScheduleServiceServer) Enable(context.Context, *ScheduleNameRequest) (*ScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Enable not implemented")
}

func (UnimplementedScheduleServiceServer) Disable(context.Context, *ScheduleNameRequest) (*ScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Disable not implemented")
}

func (UnimplementedScheduleServiceServer) Trigger(context.Context, *ScheduleNameRequest) (*TriggerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Trigger not implemented")
}

func (UnimplementedScheduleServiceServer) History(context.Context, *ScheduleHistoryRequest) (*ScheduleHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method History not implemented")
}

func (UnimplementedScheduleServiceServer) Triggers(*Empty, grpc.ServerStreamingServer[ScheduleTrigger]) error {
	return status.Error(codes.Unimplemented, "method Triggers not implemented")
}

func (UnimplementedScheduleServiceServer) Configure(context.Context, *SettingsMap) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Configure not implemented")
}

func (UnimplementedScheduleServiceServer) mustEmbedUnimplementedScheduleServiceServer() {}

// RegisterScheduleServiceServer registers srv on s.
func RegisterScheduleServiceServer(s grpc.ServiceRegistrar, srv ScheduleServiceServer) {
	s.RegisterService(&ScheduleService_ServiceDesc, srv)
}

func _ScheduleService_HealthCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_HealthCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).HealthCheck(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_Create_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).Create(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_Create_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).Create(ctx, req.(*CreateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_Get_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_Get_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).Get(ctx, req.(*GetScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListSchedulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_List_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).List(ctx, req.(*ListSchedulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_Update_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).Update(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_Update_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).Update(ctx, req.(*UpdateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_Delete_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_Delete_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).Delete(ctx, req.(*DeleteScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_Enable_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ScheduleNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).Enable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_Enable_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).Enable(ctx, req.(*ScheduleNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_Disable_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ScheduleNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).Disable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_Disable_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).Disable(ctx, req.(*ScheduleNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_Trigger_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ScheduleNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).Trigger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_Trigger_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).Trigger(ctx, req.(*ScheduleNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_History_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ScheduleHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).History(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_History_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).History(ctx, req.(*ScheduleHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScheduleService_Triggers_Handler(srv any, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ScheduleServiceServer).Triggers(m, &grpc.GenericServerStream[Empty, ScheduleTrigger]{ServerStream: stream})
}

// ScheduleService_TriggersServer is the plugin-side view of the Triggers stream.
type ScheduleService_TriggersServer = grpc.ServerStreamingServer[ScheduleTrigger]

func _ScheduleService_Configure_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SettingsMap)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServiceServer).Configure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScheduleService_Configure_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScheduleServiceServer).Configure(ctx, req.(*SettingsMap))
	}
	return interceptor(ctx, in, info, handler)
}

// ScheduleService_ServiceDesc is the grpc.ServiceDesc for ScheduleService.
var ScheduleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "apps.v0.ScheduleService",
	HandlerType: (*ScheduleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HealthCheck",
			Handler:    _ScheduleService_HealthCheck_Handler,
		},
		{
			MethodName: "Create",
			Handler:    _ScheduleService_Create_Handler,
		},
		{
			MethodName: "Get",
			Handler:    _ScheduleService_Get_Handler,
		},
		{
			MethodName: "List",
			Handler:    _ScheduleService_List_Handler,
		},
		{
			MethodName: "Update",
			Handler:    _ScheduleService_Update_Handler,
		},
		{
			MethodName: "Delete",
			Handler:    _ScheduleService_Delete_Handler,
		},
		{
			MethodName: "Enable",
			Handler:    _ScheduleService_Enable_Handler,
		},
		{
			MethodName: "Disable",
			Handler:    _ScheduleService_Disable_Handler,
		},
		{
			MethodName: "Trigger",
			Handler:    _ScheduleService_Trigger_Handler,
		},
		{
			MethodName: "History",
			Handler:    _ScheduleService_History_Handler,
		},
		{
			MethodName: "Configure",
			Handler:    _ScheduleService_Configure_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Triggers",
			Handler:       _ScheduleService_Triggers_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "apps/v0/schedule.proto",
}
