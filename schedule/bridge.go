package schedule

import (
	"context"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/relay"
)

// Bridge serves ScheduleService by delegating to a Handler.
type Bridge struct {
	appsv0.UnimplementedScheduleServiceServer
	base    bridge.Base
	handler Handler
}

// NewBridge returns a ScheduleService implementation backed by h.
func NewBridge(h Handler, base bridge.Base) *Bridge {
	return &Bridge{base: base, handler: h}
}

func (b *Bridge) HealthCheck(ctx context.Context, in *appsv0.HealthCheckRequest) (*appsv0.HealthCheckResponse, error) {
	return b.base.HealthCheck(ctx, in)
}

func (b *Bridge) Configure(ctx context.Context, in *appsv0.SettingsMap) (*appsv0.Empty, error) {
	return b.base.Configure(ctx, in)
}

func scheduleResponse(s Schedule, err error) (*appsv0.ScheduleResponse, error) {
	if err != nil {
		return &appsv0.ScheduleResponse{Error: err.Error()}, nil
	}
	return &appsv0.ScheduleResponse{Schedule: ToProto(s)}, nil
}

func (b *Bridge) Create(ctx context.Context, in *appsv0.CreateScheduleRequest) (*appsv0.ScheduleResponse, error) {
	return scheduleResponse(b.handler.Create(ctx, Definition{
		Name:       in.GetName(),
		Expression: in.GetExpression(),
		TaskType:   in.GetTaskType(),
		Command:    in.GetCommand(),
		Message:    in.GetMessage(),
		Deliver:    in.GetDeliver(),
		Metadata:   in.GetMetadata(),
	}))
}

func (b *Bridge) Get(ctx context.Context, in *appsv0.GetScheduleRequest) (*appsv0.ScheduleResponse, error) {
	return scheduleResponse(b.handler.Get(ctx, in.GetName()))
}

func (b *Bridge) List(ctx context.Context, in *appsv0.ListSchedulesRequest) (*appsv0.ListSchedulesResponse, error) {
	schedules, total, err := b.handler.List(ctx, ListOptions{
		Limit:       int(in.GetLimit()),
		Offset:      int(in.GetOffset()),
		EnabledOnly: in.GetEnabledOnly(),
	})
	if err != nil {
		return &appsv0.ListSchedulesResponse{Error: err.Error()}, nil
	}
	out := &appsv0.ListSchedulesResponse{Total: total}
	for _, s := range schedules {
		out.Schedules = append(out.Schedules, ToProto(s))
	}
	return out, nil
}

func (b *Bridge) Update(ctx context.Context, in *appsv0.UpdateScheduleRequest) (*appsv0.ScheduleResponse, error) {
	return scheduleResponse(b.handler.Update(ctx, Definition{
		Name:       in.GetName(),
		Expression: in.GetExpression(),
		TaskType:   in.GetTaskType(),
		Command:    in.GetCommand(),
		Message:    in.GetMessage(),
		Deliver:    in.GetDeliver(),
		Metadata:   in.GetMetadata(),
	}))
}

func (b *Bridge) Delete(ctx context.Context, in *appsv0.DeleteScheduleRequest) (*appsv0.DeleteScheduleResponse, error) {
	if err := b.handler.Delete(ctx, in.GetName()); err != nil {
		return &appsv0.DeleteScheduleResponse{Error: err.Error()}, nil
	}
	return &appsv0.DeleteScheduleResponse{Success: true}, nil
}

func (b *Bridge) Enable(ctx context.Context, in *appsv0.ScheduleNameRequest) (*appsv0.ScheduleResponse, error) {
	return scheduleResponse(b.handler.Enable(ctx, in.GetName()))
}

func (b *Bridge) Disable(ctx context.Context, in *appsv0.ScheduleNameRequest) (*appsv0.ScheduleResponse, error) {
	return scheduleResponse(b.handler.Disable(ctx, in.GetName()))
}

func (b *Bridge) Trigger(ctx context.Context, in *appsv0.ScheduleNameRequest) (*appsv0.TriggerResponse, error) {
	fired, output, err := b.handler.Trigger(ctx, in.GetName())
	if err != nil {
		return &appsv0.TriggerResponse{Error: err.Error()}, nil
	}
	return &appsv0.TriggerResponse{Success: fired, Output: output}, nil
}

func (b *Bridge) History(ctx context.Context, in *appsv0.ScheduleHistoryRequest) (*appsv0.ScheduleHistoryResponse, error) {
	entries, total, err := b.handler.History(ctx, in.GetName(), int(in.GetLimit()), int(in.GetOffset()))
	if err != nil {
		return &appsv0.ScheduleHistoryResponse{Error: err.Error()}, nil
	}
	out := &appsv0.ScheduleHistoryResponse{Total: total}
	for _, e := range entries {
		out.Entries = append(out.Entries, historyToProto(e))
	}
	return out, nil
}

func (b *Bridge) Triggers(_ *appsv0.Empty, stream appsv0.ScheduleService_TriggersServer) error {
	ctx := stream.Context()
	fired, err := b.handler.Triggers(ctx)
	if err != nil {
		return apperr.Status(err)
	}
	return relay.Pipe[Trigger, appsv0.ScheduleTrigger](ctx, fired, stream, relay.DefaultBuffer, triggerToProto)
}
