package appsv0

// Schedule is a named trigger definition with its run bookkeeping. Times are unix milliseconds.
type Schedule struct {
	Id         string            `cbor:"id,omitempty"`
	Name       string            `cbor:"name,omitempty"`
	Expression string            `cbor:"expression,omitempty"`
	TaskType   string            `cbor:"task_type,omitempty"`
	Command    string            `cbor:"command,omitempty"`
	Message    string            `cbor:"message,omitempty"`
	Deliver    string            `cbor:"deliver,omitempty"`
	Enabled    bool              `cbor:"enabled,omitempty"`
	LastRun    int64             `cbor:"last_run,omitempty"`
	NextRun    int64             `cbor:"next_run,omitempty"`
	RunCount   int64             `cbor:"run_count,omitempty"`
	LastError  string            `cbor:"last_error,omitempty"`
	CreatedAt  int64             `cbor:"created_at,omitempty"`
	Metadata   map[string]string `cbor:"metadata,omitempty"`
}

func (x *Schedule) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Schedule) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Schedule) GetExpression() string {
	if x != nil {
		return x.Expression
	}
	return ""
}

func (x *Schedule) GetTaskType() string {
	if x != nil {
		return x.TaskType
	}
	return ""
}

func (x *Schedule) GetCommand() string {
	if x != nil {
		return x.Command
	}
	return ""
}

func (x *Schedule) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Schedule) GetDeliver() string {
	if x != nil {
		return x.Deliver
	}
	return ""
}

func (x *Schedule) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

func (x *Schedule) GetLastRun() int64 {
	if x != nil {
		return x.LastRun
	}
	return 0
}

func (x *Schedule) GetNextRun() int64 {
	if x != nil {
		return x.NextRun
	}
	return 0
}

func (x *Schedule) GetRunCount() int64 {
	if x != nil {
		return x.RunCount
	}
	return 0
}

func (x *Schedule) GetLastError() string {
	if x != nil {
		return x.LastError
	}
	return ""
}

func (x *Schedule) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *Schedule) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type CreateScheduleRequest struct {
	Name       string            `cbor:"name,omitempty"`
	Expression string            `cbor:"expression,omitempty"`
	TaskType   string            `cbor:"task_type,omitempty"`
	Command    string            `cbor:"command,omitempty"`
	Message    string            `cbor:"message,omitempty"`
	Deliver    string            `cbor:"deliver,omitempty"`
	Metadata   map[string]string `cbor:"metadata,omitempty"`
}

func (x *CreateScheduleRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateScheduleRequest) GetExpression() string {
	if x != nil {
		return x.Expression
	}
	return ""
}

func (x *CreateScheduleRequest) GetTaskType() string {
	if x != nil {
		return x.TaskType
	}
	return ""
}

func (x *CreateScheduleRequest) GetCommand() string {
	if x != nil {
		return x.Command
	}
	return ""
}

func (x *CreateScheduleRequest) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *CreateScheduleRequest) GetDeliver() string {
	if x != nil {
		return x.Deliver
	}
	return ""
}

func (x *CreateScheduleRequest) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type UpdateScheduleRequest struct {
	Name       string            `cbor:"name,omitempty"`
	Expression string            `cbor:"expression,omitempty"`
	TaskType   string            `cbor:"task_type,omitempty"`
	Command    string            `cbor:"command,omitempty"`
	Message    string            `cbor:"message,omitempty"`
	Deliver    string            `cbor:"deliver,omitempty"`
	Metadata   map[string]string `cbor:"metadata,omitempty"`
}

func (x *UpdateScheduleRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateScheduleRequest) GetExpression() string {
	if x != nil {
		return x.Expression
	}
	return ""
}

func (x *UpdateScheduleRequest) GetTaskType() string {
	if x != nil {
		return x.TaskType
	}
	return ""
}

func (x *UpdateScheduleRequest) GetCommand() string {
	if x != nil {
		return x.Command
	}
	return ""
}

func (x *UpdateScheduleRequest) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *UpdateScheduleRequest) GetDeliver() string {
	if x != nil {
		return x.Deliver
	}
	return ""
}

func (x *UpdateScheduleRequest) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type GetScheduleRequest struct {
	Name string `cbor:"name,omitempty"`
}

func (x *GetScheduleRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type DeleteScheduleRequest struct {
	Name string `cbor:"name,omitempty"`
}

func (x *DeleteScheduleRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ScheduleNameRequest struct {
	Name string `cbor:"name,omitempty"`
}

func (x *ScheduleNameRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ScheduleResponse struct {
	Schedule *Schedule `cbor:"schedule,omitempty"`
	Error    string    `cbor:"error,omitempty"`
}

func (x *ScheduleResponse) GetSchedule() *Schedule {
	if x != nil {
		return x.Schedule
	}
	return nil
}

func (x *ScheduleResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListSchedulesRequest struct {
	Limit       int32 `cbor:"limit,omitempty"`
	Offset      int32 `cbor:"offset,omitempty"`
	EnabledOnly bool  `cbor:"enabled_only,omitempty"`
}

func (x *ListSchedulesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListSchedulesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *ListSchedulesRequest) GetEnabledOnly() bool {
	if x != nil {
		return x.EnabledOnly
	}
	return false
}

type ListSchedulesResponse struct {
	Schedules []*Schedule `cbor:"schedules,omitempty"`
	Total     int64       `cbor:"total,omitempty"`
	Error     string      `cbor:"error,omitempty"`
}

func (x *ListSchedulesResponse) GetSchedules() []*Schedule {
	if x != nil {
		return x.Schedules
	}
	return nil
}

func (x *ListSchedulesResponse) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ListSchedulesResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type DeleteScheduleResponse struct {
	Success bool   `cbor:"success,omitempty"`
	Error   string `cbor:"error,omitempty"`
}

func (x *DeleteScheduleResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *DeleteScheduleResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type TriggerResponse struct {
	Success bool   `cbor:"success,omitempty"`
	Output  string `cbor:"output,omitempty"`
	Error   string `cbor:"error,omitempty"`
}

func (x *TriggerResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *TriggerResponse) GetOutput() string {
	if x != nil {
		return x.Output
	}
	return ""
}

func (x *TriggerResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ScheduleHistoryRequest struct {
	Name   string `cbor:"name,omitempty"`
	Limit  int32  `cbor:"limit,omitempty"`
	Offset int32  `cbor:"offset,omitempty"`
}

func (x *ScheduleHistoryRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ScheduleHistoryRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ScheduleHistoryRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

// ScheduleHistoryEntry records one run of a schedule. Times are unix milliseconds.
type ScheduleHistoryEntry struct {
	Id           string `cbor:"id,omitempty"`
	ScheduleName string `cbor:"schedule_name,omitempty"`
	StartedAt    int64  `cbor:"started_at,omitempty"`
	FinishedAt   int64  `cbor:"finished_at,omitempty"`
	Success      bool   `cbor:"success,omitempty"`
	Output       string `cbor:"output,omitempty"`
	Error        string `cbor:"error,omitempty"`
}

func (x *ScheduleHistoryEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScheduleHistoryEntry) GetScheduleName() string {
	if x != nil {
		return x.ScheduleName
	}
	return ""
}

func (x *ScheduleHistoryEntry) GetStartedAt() int64 {
	if x != nil {
		return x.StartedAt
	}
	return 0
}

func (x *ScheduleHistoryEntry) GetFinishedAt() int64 {
	if x != nil {
		return x.FinishedAt
	}
	return 0
}

func (x *ScheduleHistoryEntry) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ScheduleHistoryEntry) GetOutput() string {
	if x != nil {
		return x.Output
	}
	return ""
}

func (x *ScheduleHistoryEntry) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ScheduleHistoryResponse struct {
	Entries []*ScheduleHistoryEntry `cbor:"entries,omitempty"`
	Total   int64                   `cbor:"total,omitempty"`
	Error   string                  `cbor:"error,omitempty"`
}

func (x *ScheduleHistoryResponse) GetEntries() []*ScheduleHistoryEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

func (x *ScheduleHistoryResponse) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ScheduleHistoryResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

// ScheduleTrigger is emitted each time a schedule fires.
type ScheduleTrigger struct {
	ScheduleId string            `cbor:"schedule_id,omitempty"`
	Name       string            `cbor:"name,omitempty"`
	TaskType   string            `cbor:"task_type,omitempty"`
	Command    string            `cbor:"command,omitempty"`
	Message    string            `cbor:"message,omitempty"`
	Deliver    string            `cbor:"deliver,omitempty"`
	FiredAt    int64             `cbor:"fired_at,omitempty"`
	Metadata   map[string]string `cbor:"metadata,omitempty"`
}

func (x *ScheduleTrigger) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

func (x *ScheduleTrigger) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ScheduleTrigger) GetTaskType() string {
	if x != nil {
		return x.TaskType
	}
	return ""
}

func (x *ScheduleTrigger) GetCommand() string {
	if x != nil {
		return x.Command
	}
	return ""
}

func (x *ScheduleTrigger) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ScheduleTrigger) GetDeliver() string {
	if x != nil {
		return x.Deliver
	}
	return ""
}

func (x *ScheduleTrigger) GetFiredAt() int64 {
	if x != nil {
		return x.FiredAt
	}
	return 0
}

func (x *ScheduleTrigger) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}
