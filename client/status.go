package client

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
)

// ServiceNames lists every capability service in registration order.
var ServiceNames = []string{
	appsv0.ToolService_ServiceDesc.ServiceName,
	appsv0.ChannelService_ServiceDesc.ServiceName,
	appsv0.GatewayService_ServiceDesc.ServiceName,
	appsv0.UiService_ServiceDesc.ServiceName,
	appsv0.CommService_ServiceDesc.ServiceName,
	appsv0.ScheduleService_ServiceDesc.ServiceName,
}

func statusNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
