// Package appsv0 defines the apps.v0 wire contract spoken between a host
// orchestrator and a capability plugin.
//
// Every capability is its own gRPC service (ToolService, ChannelService,
// GatewayService, UiService, CommService, ScheduleService). Each service also
// carries HealthCheck and Configure so the host can probe and configure a
// plugin through whichever capability it holds a client for.
//
// Messages are plain Go structs encoded with CBOR (see Codec). Nested
// messages are pointers; every field has a nil-safe getter returning the zero
// value when the field or its parent is absent, so callers can chain getters
// without checking for nil:
//
//	sender := req.GetEnvelope().GetSender().GetName()
package appsv0
