// Package schedule defines the Schedule capability: named, recurring jobs
// whose firings are streamed to the host.
package schedule

import (
	"context"
	"time"
)

// Task types a schedule can run.
const (
	TaskBash  = "bash"
	TaskAgent = "agent"
)

// Handler owns schedule storage and timing.
type Handler interface {
	Create(ctx context.Context, def Definition) (Schedule, error)
	Get(ctx context.Context, name string) (Schedule, error)
	List(ctx context.Context, opts ListOptions) ([]Schedule, int64, error)
	Update(ctx context.Context, def Definition) (Schedule, error)
	Delete(ctx context.Context, name string) error
	Enable(ctx context.Context, name string) (Schedule, error)
	Disable(ctx context.Context, name string) (Schedule, error)
	// Trigger fires name immediately, outside its expression.
	Trigger(ctx context.Context, name string) (fired bool, output string, err error)
	History(ctx context.Context, name string, limit, offset int) ([]HistoryEntry, int64, error)
	// Triggers streams firings. The handler closes the channel when it stops.
	Triggers(ctx context.Context) (<-chan Trigger, error)
}

// Definition is the user-editable part of a schedule.
type Definition struct {
	Name       string
	Expression string
	TaskType   string
	Command    string
	Message    string
	// Deliver names the channel a task's output is sent to.
	Deliver  string
	Metadata map[string]string
}

// Schedule is a stored definition with its run bookkeeping.
type Schedule struct {
	ID string
	Definition
	Enabled   bool
	LastRun   time.Time
	NextRun   time.Time
	RunCount  int64
	LastError string
	CreatedAt time.Time
}

// ListOptions pages through schedules. A zero Limit means no limit.
type ListOptions struct {
	Limit       int
	Offset      int
	EnabledOnly bool
}

// HistoryEntry records one run.
type HistoryEntry struct {
	ID           string
	ScheduleName string
	StartedAt    time.Time
	FinishedAt   time.Time
	Success      bool
	Output       string
	Error        string
}

// Trigger is emitted when a schedule fires.
type Trigger struct {
	ScheduleID string
	Name       string
	TaskType   string
	Command    string
	Message    string
	Deliver    string
	FiredAt    time.Time
	Metadata   map[string]string
}
