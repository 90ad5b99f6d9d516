// Package scheduler is a reference Schedule handler: definitions and run
// history live in SQLite, a ticker fires due schedules, and every firing is
// published on the trigger stream.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/internal/examples/scheduler/storage"
	"github.com/louisbranch/capbridge/schedule"
)

// DefaultTick is how often the run loop looks for due schedules.
const DefaultTick = time.Second

// Option customizes a Service.
type Option func(*Service)

// WithRunner sets the task runner. Without one, firing only publishes the
// trigger.
func WithRunner(r Runner) Option {
	return func(s *Service) { s.runner = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTick sets the run loop interval.
func WithTick(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.tick = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service implements schedule.Handler over a storage.Store.
type Service struct {
	store    storage.Store
	runner   Runner
	now      func() time.Time
	tick     time.Duration
	logger   *slog.Logger
	triggers *broadcaster

	// mu serializes read-modify-write of schedule rows. It is never held
	// while a task runs.
	mu sync.Mutex
}

// NewService returns a Service backed by store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		now:      time.Now,
		tick:     DefaultTick,
		logger:   slog.Default(),
		triggers: newBroadcaster(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, def schedule.Definition) (schedule.Schedule, error) {
	def, expr, err := normalizeDefinition(def)
	if err != nil {
		return schedule.Schedule{}, err
	}
	now := s.now().UTC()
	sched := schedule.Schedule{
		ID:         uuid.NewString(),
		Definition: def,
		Enabled:    true,
		NextRun:    expr.Next(now),
		CreatedAt:  now,
	}
	if err := s.store.CreateSchedule(ctx, sched); err != nil {
		return schedule.Schedule{}, storeError(err, def.Name)
	}
	s.logger.Info("schedule created", "name", sched.Name, "expression", sched.Expression, "next_run", sched.NextRun)
	return sched, nil
}

func (s *Service) Get(ctx context.Context, name string) (schedule.Schedule, error) {
	sched, err := s.store.GetSchedule(ctx, strings.TrimSpace(name))
	if err != nil {
		return schedule.Schedule{}, storeError(err, name)
	}
	return sched, nil
}

func (s *Service) List(ctx context.Context, opts schedule.ListOptions) ([]schedule.Schedule, int64, error) {
	list, total, err := s.store.ListSchedules(ctx, opts)
	if err != nil {
		return nil, 0, storeError(err, "")
	}
	return list, total, nil
}

// Update replaces the definition of an existing schedule and recomputes its
// next run. Run bookkeeping is preserved.
func (s *Service) Update(ctx context.Context, def schedule.Definition) (schedule.Schedule, error) {
	def, expr, err := normalizeDefinition(def)
	if err != nil {
		return schedule.Schedule{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sched, err := s.Get(ctx, def.Name)
	if err != nil {
		return schedule.Schedule{}, err
	}
	sched.Definition = def
	if sched.Enabled {
		sched.NextRun = expr.Next(s.now().UTC())
	}
	if err := s.store.PutSchedule(ctx, sched); err != nil {
		return schedule.Schedule{}, storeError(err, def.Name)
	}
	return sched, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.store.DeleteSchedule(ctx, strings.TrimSpace(name)); err != nil {
		return storeError(err, name)
	}
	s.logger.Info("schedule deleted", "name", name)
	return nil
}

func (s *Service) Enable(ctx context.Context, name string) (schedule.Schedule, error) {
	return s.setEnabled(ctx, name, true)
}

func (s *Service) Disable(ctx context.Context, name string) (schedule.Schedule, error) {
	return s.setEnabled(ctx, name, false)
}

func (s *Service) setEnabled(ctx context.Context, name string, enabled bool) (schedule.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sched, err := s.Get(ctx, name)
	if err != nil {
		return schedule.Schedule{}, err
	}
	sched.Enabled = enabled
	sched.NextRun = time.Time{}
	if enabled {
		expr, err := ParseExpression(sched.Expression)
		if err != nil {
			return schedule.Schedule{}, err
		}
		sched.NextRun = expr.Next(s.now().UTC())
	}
	if err := s.store.PutSchedule(ctx, sched); err != nil {
		return schedule.Schedule{}, storeError(err, name)
	}
	return sched, nil
}

// Trigger fires name now, whether or not it is enabled. The next scheduled
// run is left in place.
func (s *Service) Trigger(ctx context.Context, name string) (bool, string, error) {
	sched, err := s.Get(ctx, name)
	if err != nil {
		return false, "", err
	}
	output, err := s.fire(ctx, sched, false)
	return true, output, err
}

func (s *Service) History(ctx context.Context, name string, limit, offset int) ([]schedule.HistoryEntry, int64, error) {
	if _, err := s.Get(ctx, name); err != nil {
		return nil, 0, err
	}
	entries, total, err := s.store.ListRuns(ctx, strings.TrimSpace(name), limit, offset)
	if err != nil {
		return nil, 0, storeError(err, name)
	}
	return entries, total, nil
}

// Triggers subscribes to firings until ctx ends. Each subscriber has a
// buffer of 16 triggers; a firing that finds the buffer full is dropped for
// that subscriber and logged, so a slow consumer never delays the scheduler.
// Consumers that must not miss a run should read History.
func (s *Service) Triggers(ctx context.Context) (<-chan schedule.Trigger, error) {
	return s.triggers.subscribe(ctx), nil
}

// Run fires due schedules every tick until ctx ends.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.fireDue(ctx)
		}
	}
}

func (s *Service) fireDue(ctx context.Context) {
	due, err := s.store.DueSchedules(ctx, s.now().UTC())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("load due schedules", "error", err)
		}
		return
	}
	for _, sched := range due {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.fire(ctx, sched, true); err != nil {
			s.logger.Warn("scheduled run failed", "name", sched.Name, "error", err)
		}
	}
}

// fire publishes the trigger, runs the task, and records the outcome. When
// advance is set the next run moves past now. Only the run bookkeeping is
// written back, on the row as it stands after the run.
func (s *Service) fire(ctx context.Context, sched schedule.Schedule, advance bool) (string, error) {
	started := s.now().UTC()
	delivered, dropped := s.triggers.publish(schedule.Trigger{
		ScheduleID: sched.ID,
		Name:       sched.Name,
		TaskType:   sched.TaskType,
		Command:    sched.Command,
		Message:    sched.Message,
		Deliver:    sched.Deliver,
		FiredAt:    started,
		Metadata:   sched.Metadata,
	})
	if dropped > 0 {
		s.logger.Warn("trigger dropped for slow subscribers", "name", sched.Name, "dropped", dropped)
	}
	s.logger.Debug("schedule fired", "name", sched.Name, "subscribers", delivered)

	var output string
	var runErr error
	if s.runner != nil {
		output, runErr = s.runner.Run(ctx, sched)
	}
	finished := s.now().UTC()

	entry := schedule.HistoryEntry{
		ID:           uuid.NewString(),
		ScheduleName: sched.Name,
		StartedAt:    started,
		FinishedAt:   finished,
		Success:      runErr == nil,
		Output:       output,
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}
	if err := s.store.AppendRun(ctx, entry); err != nil {
		return output, storeError(err, sched.Name)
	}
	if err := s.recordRun(ctx, sched.Name, started, runErr, advance); err != nil {
		return output, err
	}
	if runErr != nil {
		return output, apperr.Wrap(apperr.CodeExecution, runErr.Error(), runErr)
	}
	return output, nil
}

// recordRun applies a finished run to the current row. Edits made while the
// task ran survive; a schedule deleted meanwhile is left deleted.
func (s *Service) recordRun(ctx context.Context, name string, started time.Time, runErr error, advance bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.store.GetSchedule(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Info("schedule deleted during run", "name", name)
		return nil
	}
	if err != nil {
		return storeError(err, name)
	}
	cur.LastRun = started
	cur.RunCount++
	cur.LastError = ""
	if runErr != nil {
		cur.LastError = runErr.Error()
	}
	if advance && cur.Enabled {
		expr, err := ParseExpression(cur.Expression)
		if err != nil {
			cur.Enabled = false
			cur.NextRun = time.Time{}
			cur.LastError = err.Error()
		} else if !cur.NextRun.After(started) {
			cur.NextRun = expr.Next(started)
		}
	}
	if err := s.store.PutSchedule(ctx, cur); err != nil {
		return storeError(err, name)
	}
	return nil
}

func storeError(err error, name string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.Errorf(apperr.CodeNotFound, "schedule %q not found", name)
	case errors.Is(err, storage.ErrAlreadyExists):
		return apperr.Errorf(apperr.CodeAlreadyExists, "schedule %q already exists", name)
	default:
		return apperr.Wrap(apperr.CodeInternal, fmt.Sprintf("storage: %v", err), err)
	}
}

var _ schedule.Handler = (*Service)(nil)
