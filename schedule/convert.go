package schedule

import (
	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/bridge"
)

// ToProto converts a schedule to its wire form.
func ToProto(s Schedule) *appsv0.Schedule {
	return &appsv0.Schedule{
		Id:         s.ID,
		Name:       s.Name,
		Expression: s.Expression,
		TaskType:   s.TaskType,
		Command:    s.Command,
		Message:    s.Message,
		Deliver:    s.Deliver,
		Enabled:    s.Enabled,
		LastRun:    bridge.UnixMilli(s.LastRun),
		NextRun:    bridge.UnixMilli(s.NextRun),
		RunCount:   s.RunCount,
		LastError:  s.LastError,
		CreatedAt:  bridge.UnixMilli(s.CreatedAt),
		Metadata:   s.Metadata,
	}
}

// FromProto converts a wire schedule. Absent fields become zero values.
func FromProto(in *appsv0.Schedule) Schedule {
	return Schedule{
		ID: in.GetId(),
		Definition: Definition{
			Name:       in.GetName(),
			Expression: in.GetExpression(),
			TaskType:   in.GetTaskType(),
			Command:    in.GetCommand(),
			Message:    in.GetMessage(),
			Deliver:    in.GetDeliver(),
			Metadata:   in.GetMetadata(),
		},
		Enabled:   in.GetEnabled(),
		LastRun:   bridge.FromUnixMilli(in.GetLastRun()),
		NextRun:   bridge.FromUnixMilli(in.GetNextRun()),
		RunCount:  in.GetRunCount(),
		LastError: in.GetLastError(),
		CreatedAt: bridge.FromUnixMilli(in.GetCreatedAt()),
	}
}

func historyToProto(e HistoryEntry) *appsv0.ScheduleHistoryEntry {
	return &appsv0.ScheduleHistoryEntry{
		Id:           e.ID,
		ScheduleName: e.ScheduleName,
		StartedAt:    bridge.UnixMilli(e.StartedAt),
		FinishedAt:   bridge.UnixMilli(e.FinishedAt),
		Success:      e.Success,
		Output:       e.Output,
		Error:        e.Error,
	}
}

func triggerToProto(t Trigger) *appsv0.ScheduleTrigger {
	return &appsv0.ScheduleTrigger{
		ScheduleId: t.ScheduleID,
		Name:       t.Name,
		TaskType:   t.TaskType,
		Command:    t.Command,
		Message:    t.Message,
		Deliver:    t.Deliver,
		FiredAt:    bridge.UnixMilli(t.FiredAt),
		Metadata:   t.Metadata,
	}
}
