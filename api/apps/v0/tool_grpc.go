package appsv0

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ToolService_HealthCheck_FullMethodName      = "/apps.v0.ToolService/HealthCheck"
	ToolService_Name_FullMethodName             = "/apps.v0.ToolService/Name"
	ToolService_Description_FullMethodName      = "/apps.v0.ToolService/Description"
	ToolService_Schema_FullMethodName           = "/apps.v0.ToolService/Schema"
	ToolService_Execute_FullMethodName          = "/apps.v0.ToolService/Execute"
	ToolService_RequiresApproval_FullMethodName = "/apps.v0.ToolService/RequiresApproval"
	ToolService_Configure_FullMethodName        = "/apps.v0.ToolService/Configure"
)

// ToolServiceClient is the host-side client API for ToolService.
type ToolServiceClient interface {
	HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
	Name(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NameResponse, error)
	Description(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DescriptionResponse, error)
	Schema(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SchemaResponse, error)
	Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error)
	RequiresApproval(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ApprovalResponse, error)
	Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error)
}

type toolServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewToolServiceClient returns a client that encodes calls with the CBOR codec.
func NewToolServiceClient(cc grpc.ClientConnInterface) ToolServiceClient {
	return &toolServiceClient{cc}
}

func (c *toolServiceClient) HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(HealthCheckResponse)
	err := c.cc.Invoke(ctx, ToolService_HealthCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolServiceClient) Name(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NameResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(NameResponse)
	err := c.cc.Invoke(ctx, ToolService_Name_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolServiceClient) Description(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DescriptionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(DescriptionResponse)
	err := c.cc.Invoke(ctx, ToolService_Description_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolServiceClient) Schema(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SchemaResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(SchemaResponse)
	err := c.cc.Invoke(ctx, ToolService_Schema_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolServiceClient) Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ExecuteResponse)
	err := c.cc.Invoke(ctx, ToolService_Execute_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolServiceClient) RequiresApproval(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ApprovalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(ApprovalResponse)
	err := c.cc.Invoke(ctx, ToolService_RequiresApproval_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolServiceClient) Configure(ctx context.Context, in *SettingsMap, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, ToolService_Configure_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToolServiceServer is the plugin-side API for ToolService.
// Implementations must embed UnimplementedToolServiceServer.
type ToolServiceServer interface {
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error)
	Name(context.Context, *Empty) (*NameResponse, error)
	Description(context.Context, *Empty) (*DescriptionResponse, error)
	Schema(context.Context, *Empty) (*SchemaResponse, error)
	Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error)
	RequiresApproval(context.Context, *Empty) (*ApprovalResponse, error)
	Configure(context.Context, *SettingsMap) (*Empty, error)
	mustEmbedUnimplementedToolServiceServer()
}

// UnimplementedToolServiceServer answers every method with codes.Unimplemented.
type UnimplementedToolServiceServer struct{}

func (UnimplementedToolServiceServer) HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealthCheck not implemented")
}

func (UnimplementedToolServiceServer) Name(context.Context, *Empty) (*NameResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Name not implemented")
}

func (UnimplementedToolServiceServer) Description(context.Context, *Empty) (*DescriptionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Description not implemented")
}

func (UnimplementedToolServiceServer) Schema(context.Context, *Empty) (*SchemaResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Schema not implemented")
}

func (UnimplementedToolServiceServer) Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Execute not implemented")
}

func (UnimplementedToolServiceServer) RequiresApproval(context.Context, *Empty) (*ApprovalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequiresApproval not implemented")
}

func (UnimplementedToolServiceServer) Configure(context.Context, *SettingsMap) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Configure not implemented")
}

func (UnimplementedToolServiceServer) mustEmbedUnimplementedToolServiceServer() {}

// RegisterToolServiceServer registers srv on s.
func RegisterToolServiceServer(s grpc.ServiceRegistrar, srv ToolServiceServer) {
	s.RegisterService(&ToolService_ServiceDesc, srv)
}

func _ToolService_HealthCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolServiceServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolService_HealthCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ToolServiceServer).HealthCheck(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolService_Name_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolServiceServer).Name(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolService_Name_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ToolServiceServer).Name(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolService_Description_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolServiceServer).Description(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolService_Description_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ToolServiceServer).Description(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolService_Schema_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolServiceServer).Schema(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolService_Schema_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ToolServiceServer).Schema(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolService_Execute_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExecuteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolServiceServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolService_Execute_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ToolServiceServer).Execute(ctx, req.(*ExecuteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolService_RequiresApproval_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolServiceServer).RequiresApproval(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolService_RequiresApproval_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ToolServiceServer).RequiresApproval(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolService_Configure_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SettingsMap)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolServiceServer).Configure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolService_Configure_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ToolServiceServer).Configure(ctx, req.(*SettingsMap))
	}
	return interceptor(ctx, in, info, handler)
}

// ToolService_ServiceDesc is the grpc.ServiceDesc for ToolService.
var ToolService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "apps.v0.ToolService",
	HandlerType: (*ToolServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HealthCheck",
			Handler:    _ToolService_HealthCheck_Handler,
		},
		{
			MethodName: "Name",
			Handler:    _ToolService_Name_Handler,
		},
		{
			MethodName: "Description",
			Handler:    _ToolService_Description_Handler,
		},
		{
			MethodName: "Schema",
			Handler:    _ToolService_Schema_Handler,
		},
		{
			MethodName: "Execute",
			Handler:    _ToolService_Execute_Handler,
		},
		{
			MethodName: "RequiresApproval",
			Handler:    _ToolService_RequiresApproval_Handler,
		},
		{
			MethodName: "Configure",
			Handler:    _ToolService_Configure_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
	},
	Metadata: "apps/v0/tool.proto",
}
