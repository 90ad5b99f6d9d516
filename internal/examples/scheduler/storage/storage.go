// Package storage defines persistence contracts for the scheduler example.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/capbridge/schedule"
)

var (
	// ErrNotFound indicates a requested schedule is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a schedule name is taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// Store persists schedules and their run history.
type Store interface {
	CreateSchedule(ctx context.Context, s schedule.Schedule) error
	GetSchedule(ctx context.Context, name string) (schedule.Schedule, error)
	ListSchedules(ctx context.Context, opts schedule.ListOptions) ([]schedule.Schedule, int64, error)
	// PutSchedule replaces every mutable column of an existing schedule.
	PutSchedule(ctx context.Context, s schedule.Schedule) error
	DeleteSchedule(ctx context.Context, name string) error
	// DueSchedules returns enabled schedules whose next run is at or before now.
	DueSchedules(ctx context.Context, now time.Time) ([]schedule.Schedule, error)
	AppendRun(ctx context.Context, entry schedule.HistoryEntry) error
	ListRuns(ctx context.Context, name string, limit, offset int) ([]schedule.HistoryEntry, int64, error)
	Close() error
}
