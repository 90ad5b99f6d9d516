package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/internal/examples/scheduler/storage/sqlite"
	"github.com/louisbranch/capbridge/schedule"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T, opts ...Option) (*Service, *fakeClock) {
	t.Helper()
	store, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	clock := &fakeClock{now: time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.Now), WithLogger(slog.New(slog.DiscardHandler))}, opts...)
	return NewService(store, opts...), clock
}

func TestCreateAndGet(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, schedule.Definition{Name: " backup ", Expression: "@every 1h", Command: "backup.sh"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Name != "backup" || created.TaskType != schedule.TaskBash {
		t.Fatalf("unexpected schedule: %+v", created)
	}
	if !created.Enabled || !created.NextRun.Equal(clock.Now().Add(time.Hour)) {
		t.Fatalf("enabled = %v next run = %v", created.Enabled, created.NextRun)
	}

	got, err := svc.Get(ctx, "backup")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("get id = %q, want %q", got.ID, created.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	tests := []schedule.Definition{
		{Expression: "@hourly", Command: "x"},
		{Name: "a", Expression: "@fortnightly", Command: "x"},
		{Name: "a", Expression: "@hourly"},
		{Name: "a", Expression: "@hourly", TaskType: schedule.TaskAgent},
		{Name: "a", Expression: "@hourly", TaskType: "python", Command: "x"},
	}
	for _, def := range tests {
		if _, err := svc.Create(ctx, def); apperr.CodeOf(err) != apperr.CodeInvalidInput {
			t.Fatalf("create %+v = %v, want INVALID_INPUT", def, err)
		}
	}
}

func TestCreateDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	def := schedule.Definition{Name: "ping", Expression: "@hourly", TaskType: schedule.TaskAgent, Message: "ping"}
	if _, err := svc.Create(ctx, def); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, def); apperr.CodeOf(err) != apperr.CodeAlreadyExists {
		t.Fatalf("duplicate create = %v, want ALREADY_EXISTS", err)
	}
}

func TestUnknownNameIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	notFound := &apperr.Error{Code: apperr.CodeNotFound}

	if _, err := svc.Get(ctx, "ghost"); !errors.Is(err, notFound) {
		t.Fatalf("get = %v", err)
	}
	if err := svc.Delete(ctx, "ghost"); !errors.Is(err, notFound) {
		t.Fatalf("delete = %v", err)
	}
	if _, err := svc.Enable(ctx, "ghost"); !errors.Is(err, notFound) {
		t.Fatalf("enable = %v", err)
	}
	if _, _, err := svc.Trigger(ctx, "ghost"); !errors.Is(err, notFound) {
		t.Fatalf("trigger = %v", err)
	}
	if _, _, err := svc.History(ctx, "ghost", 10, 0); !errors.Is(err, notFound) {
		t.Fatalf("history = %v", err)
	}
	if err := svc.Delete(ctx, "ghost"); err == nil || err.Error() != `schedule "ghost" not found` {
		t.Fatalf("delete message = %v", err)
	}
}

func TestUpdateKeepsBookkeeping(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Create(ctx, schedule.Definition{Name: "job", Expression: "@every 1m", Command: "true"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.Trigger(ctx, "job"); err != nil {
		t.Fatalf("trigger: %v", err)
	}

	clock.Advance(time.Minute)
	updated, err := svc.Update(ctx, schedule.Definition{Name: "job", Expression: "@hourly", Command: "echo hi"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.RunCount != 1 || updated.Command != "echo hi" {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if want := time.Date(2026, time.March, 4, 11, 0, 0, 0, time.UTC); !updated.NextRun.Equal(want) {
		t.Fatalf("next run = %v, want %v", updated.NextRun, want)
	}
}

func TestEnableDisable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Create(ctx, schedule.Definition{Name: "job", Expression: "@hourly", Command: "true"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	disabled, err := svc.Disable(ctx, "job")
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if disabled.Enabled || !disabled.NextRun.IsZero() {
		t.Fatalf("disabled = %+v", disabled)
	}
	list, total, err := svc.List(ctx, schedule.ListOptions{EnabledOnly: true})
	if err != nil || total != 0 || len(list) != 0 {
		t.Fatalf("enabled list = %v total %d err %v", list, total, err)
	}

	enabled, err := svc.Enable(ctx, "job")
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !enabled.Enabled || enabled.NextRun.IsZero() {
		t.Fatalf("enabled = %+v", enabled)
	}
}

func TestTriggerRunsAndRecordsHistory(t *testing.T) {
	var ran []string
	runner := RunnerFunc(func(_ context.Context, s schedule.Schedule) (string, error) {
		ran = append(ran, s.Name)
		if s.Command == "fail" {
			return "partial", errors.New("exit status 2")
		}
		return "done", nil
	})
	svc, _ := newTestService(t, WithRunner(runner))
	ctx := context.Background()
	for _, def := range []schedule.Definition{
		{Name: "ok", Expression: "@hourly", Command: "succeed"},
		{Name: "bad", Expression: "@hourly", Command: "fail"},
	} {
		if _, err := svc.Create(ctx, def); err != nil {
			t.Fatalf("create %s: %v", def.Name, err)
		}
	}

	fired, output, err := svc.Trigger(ctx, "ok")
	if err != nil || !fired || output != "done" {
		t.Fatalf("trigger ok = %v %q %v", fired, output, err)
	}
	fired, output, err = svc.Trigger(ctx, "bad")
	if apperr.CodeOf(err) != apperr.CodeExecution || !fired || output != "partial" {
		t.Fatalf("trigger bad = %v %q %v", fired, output, err)
	}

	entries, total, err := svc.History(ctx, "bad", 10, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if total != 1 || entries[0].Success || entries[0].Error != "exit status 2" {
		t.Fatalf("history = %+v", entries)
	}
	bad, err := svc.Get(ctx, "bad")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if bad.RunCount != 1 || bad.LastError != "exit status 2" || bad.LastRun.IsZero() {
		t.Fatalf("bookkeeping = %+v", bad)
	}
	if len(ran) != 2 {
		t.Fatalf("runner calls = %v", ran)
	}
}

// blockingRunner parks every run until release is closed.
type blockingRunner struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (r *blockingRunner) Run(context.Context, schedule.Schedule) (string, error) {
	r.started <- struct{}{}
	<-r.release
	return "ok", nil
}

// triggerDuring fires name in the background, runs edit while the task is
// parked, and waits for the trigger to finish.
func triggerDuring(t *testing.T, svc *Service, runner *blockingRunner, name string, edit func()) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		_, _, err := svc.Trigger(context.Background(), name)
		done <- err
	}()
	select {
	case <-runner.started:
	case <-time.After(5 * time.Second):
		t.Fatal("runner never started")
	}
	edit()
	close(runner.release)
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("trigger did not finish")
		return nil
	}
}

func TestDisableDuringRunIsKept(t *testing.T) {
	runner := newBlockingRunner()
	svc, _ := newTestService(t, WithRunner(runner))
	ctx := context.Background()
	if _, err := svc.Create(ctx, schedule.Definition{Name: "job", Expression: "@hourly", Command: "true"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := triggerDuring(t, svc, runner, "job", func() {
		if _, err := svc.Disable(ctx, "job"); err != nil {
			t.Errorf("disable: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}

	got, err := svc.Get(ctx, "job")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Enabled || !got.NextRun.IsZero() {
		t.Fatalf("after disable during run: enabled=%v next_run=%v", got.Enabled, got.NextRun)
	}
	if got.RunCount != 1 || got.LastRun.IsZero() {
		t.Fatalf("bookkeeping = %+v", got)
	}
}

func TestUpdateDuringRunIsKept(t *testing.T) {
	runner := newBlockingRunner()
	svc, _ := newTestService(t, WithRunner(runner))
	ctx := context.Background()
	if _, err := svc.Create(ctx, schedule.Definition{Name: "job", Expression: "@hourly", Command: "old.sh"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := triggerDuring(t, svc, runner, "job", func() {
		if _, err := svc.Update(ctx, schedule.Definition{Name: "job", Expression: "@daily", Command: "new.sh"}); err != nil {
			t.Errorf("update: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}

	got, err := svc.Get(ctx, "job")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Command != "new.sh" || got.Expression != "@daily" || got.RunCount != 1 {
		t.Fatalf("after update during run: %+v", got)
	}
}

func TestDeleteDuringRunStaysDeleted(t *testing.T) {
	runner := newBlockingRunner()
	svc, _ := newTestService(t, WithRunner(runner))
	ctx := context.Background()
	if _, err := svc.Create(ctx, schedule.Definition{Name: "job", Expression: "@hourly", Command: "true"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := triggerDuring(t, svc, runner, "job", func() {
		if err := svc.Delete(ctx, "job"); err != nil {
			t.Errorf("delete: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if _, err := svc.Get(ctx, "job"); apperr.CodeOf(err) != apperr.CodeNotFound {
		t.Fatalf("get after delete = %v, want not found", err)
	}
}

func TestTriggersStreamReceivesFirings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := svc.Create(ctx, schedule.Definition{
		Name: "remind", Expression: "@daily", TaskType: schedule.TaskAgent,
		Message: "stand up", Deliver: "telegram", Metadata: map[string]string{"chat": "42"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	triggers, err := svc.Triggers(ctx)
	if err != nil {
		t.Fatalf("triggers: %v", err)
	}
	if _, _, err := svc.Trigger(ctx, "remind"); err != nil {
		t.Fatalf("trigger: %v", err)
	}

	select {
	case trig := <-triggers:
		if trig.Name != "remind" || trig.Message != "stand up" || trig.Deliver != "telegram" || trig.Metadata["chat"] != "42" {
			t.Fatalf("unexpected trigger: %+v", trig)
		}
	case <-time.After(time.Second):
		t.Fatal("no trigger received")
	}

	cancel()
	select {
	case _, ok := <-triggers:
		if ok {
			t.Fatal("expected closed trigger channel")
		}
	case <-time.After(time.Second):
		t.Fatal("trigger channel not closed after cancel")
	}
}

func TestFireDueAdvancesNextRun(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Create(ctx, schedule.Definition{Name: "tick", Expression: "@every 1m", Command: "true"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc.fireDue(ctx)
	if got, _ := svc.Get(ctx, "tick"); got.RunCount != 0 {
		t.Fatalf("fired before due: %+v", got)
	}

	clock.Advance(time.Minute)
	svc.fireDue(ctx)
	got, err := svc.Get(ctx, "tick")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RunCount != 1 {
		t.Fatalf("run count = %d, want 1", got.RunCount)
	}
	if want := clock.Now().Add(time.Minute); !got.NextRun.Equal(want) {
		t.Fatalf("next run = %v, want %v", got.NextRun, want)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	svc, _ := newTestService(t, WithTick(10*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()
	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not stop")
	}
}

func TestShellRunnerSkipsAgentTasks(t *testing.T) {
	out, err := ShellRunner{}.Run(context.Background(), schedule.Schedule{Definition: schedule.Definition{TaskType: schedule.TaskAgent}})
	if err != nil || out != "" {
		t.Fatalf("agent task = %q %v", out, err)
	}
}
