package schedule

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/appenv"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/internal/testkit"
)

var fixedNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type memorySchedules struct {
	mu          sync.Mutex
	byName      map[string]Schedule
	fired       []Trigger
	triggersErr error
}

func newMemorySchedules() *memorySchedules {
	return &memorySchedules{byName: map[string]Schedule{}}
}

func (m *memorySchedules) Create(_ context.Context, def Definition) (Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if def.Name == "" {
		return Schedule{}, apperr.InvalidInput("name is required")
	}
	if _, ok := m.byName[def.Name]; ok {
		return Schedule{}, apperr.New(apperr.CodeAlreadyExists, "schedule already exists")
	}
	s := Schedule{ID: "id-" + def.Name, Definition: def, Enabled: true, CreatedAt: fixedNow}
	m.byName[def.Name] = s
	return s, nil
}

func (m *memorySchedules) Get(_ context.Context, name string) (Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byName[name]
	if !ok {
		return Schedule{}, apperr.NotFound("schedule not found: " + name)
	}
	return s, nil
}

func (m *memorySchedules) List(_ context.Context, opts ListOptions) ([]Schedule, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []Schedule
	for _, s := range m.byName {
		if opts.EnabledOnly && !s.Enabled {
			continue
		}
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if opts.Offset < len(all) {
		all = all[opts.Offset:]
	} else {
		all = nil
	}
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, total, nil
}

func (m *memorySchedules) Update(ctx context.Context, def Definition) (Schedule, error) {
	s, err := m.Get(ctx, def.Name)
	if err != nil {
		return Schedule{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s.Definition = def
	m.byName[def.Name] = s
	return s, nil
}

func (m *memorySchedules) Delete(ctx context.Context, name string) error {
	if _, err := m.Get(ctx, name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byName, name)
	return nil
}

func (m *memorySchedules) setEnabled(ctx context.Context, name string, enabled bool) (Schedule, error) {
	s, err := m.Get(ctx, name)
	if err != nil {
		return Schedule{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s.Enabled = enabled
	m.byName[name] = s
	return s, nil
}

func (m *memorySchedules) Enable(ctx context.Context, name string) (Schedule, error) {
	return m.setEnabled(ctx, name, true)
}

func (m *memorySchedules) Disable(ctx context.Context, name string) (Schedule, error) {
	return m.setEnabled(ctx, name, false)
}

func (m *memorySchedules) Trigger(ctx context.Context, name string) (bool, string, error) {
	s, err := m.Get(ctx, name)
	if err != nil {
		return false, "", err
	}
	return s.Enabled, "ran " + s.Command, nil
}

func (m *memorySchedules) History(_ context.Context, name string, limit, offset int) ([]HistoryEntry, int64, error) {
	if name == "broken" {
		return nil, 0, errors.New("history unavailable")
	}
	return []HistoryEntry{{ID: "h1", ScheduleName: name, StartedAt: fixedNow, Success: true, Output: "ok"}}, 1, nil
}

func (m *memorySchedules) Triggers(context.Context) (<-chan Trigger, error) {
	if m.triggersErr != nil {
		return nil, m.triggersErr
	}
	ch := make(chan Trigger, len(m.fired))
	for _, t := range m.fired {
		ch <- t
	}
	close(ch)
	return ch, nil
}

func newClient(t *testing.T, h Handler) appsv0.ScheduleServiceClient {
	t.Helper()
	conn := testkit.Serve(t, func(s *grpc.Server) {
		appsv0.RegisterScheduleServiceServer(s, NewBridge(h, bridge.Base{Env: appenv.Env{Name: "cron", Version: "1.1.0"}}))
	})
	return appsv0.NewScheduleServiceClient(conn)
}

func TestBridgeCreateGetUpdate(t *testing.T) {
	client := newClient(t, newMemorySchedules())
	ctx := testkit.Context(t, 5*time.Second)

	created, err := client.Create(ctx, &appsv0.CreateScheduleRequest{
		Name:       "backup",
		Expression: "@daily",
		TaskType:   TaskBash,
		Command:    "tar czf /tmp/b.tgz /data",
		Metadata:   map[string]string{"owner": "ops"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.GetError() != "" || created.GetSchedule().GetId() != "id-backup" || !created.GetSchedule().GetEnabled() {
		t.Fatalf("create = %+v", created)
	}
	if created.GetSchedule().GetCreatedAt() != fixedNow.UnixMilli() {
		t.Fatalf("created_at = %d", created.GetSchedule().GetCreatedAt())
	}

	dup, err := client.Create(ctx, &appsv0.CreateScheduleRequest{Name: "backup"})
	if err != nil {
		t.Fatalf("create duplicate: %v", err)
	}
	if dup.GetError() == "" || dup.GetSchedule() != nil {
		t.Fatalf("duplicate create = %+v", dup)
	}

	updated, err := client.Update(ctx, &appsv0.UpdateScheduleRequest{Name: "backup", Expression: "@hourly", TaskType: TaskBash})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.GetSchedule().GetExpression() != "@hourly" {
		t.Fatalf("update = %+v", updated)
	}

	got, err := client.Get(ctx, &appsv0.GetScheduleRequest{Name: "backup"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GetSchedule().GetExpression() != "@hourly" {
		t.Fatalf("get = %+v", got)
	}
}

func TestBridgeDeleteUnknownIsInBand(t *testing.T) {
	client := newClient(t, newMemorySchedules())

	resp, err := client.Delete(testkit.Context(t, 5*time.Second), &appsv0.DeleteScheduleRequest{Name: "ghost"})
	if err != nil {
		t.Fatalf("delete returned transport error: %v", err)
	}
	if resp.GetSuccess() {
		t.Fatal("expected success=false")
	}
	if resp.GetError() == "" {
		t.Fatal("expected error text")
	}
}

func TestBridgeDeleteExisting(t *testing.T) {
	handler := newMemorySchedules()
	client := newClient(t, handler)
	ctx := testkit.Context(t, 5*time.Second)

	if _, err := client.Create(ctx, &appsv0.CreateScheduleRequest{Name: "report"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	resp, err := client.Delete(ctx, &appsv0.DeleteScheduleRequest{Name: "report"})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !resp.GetSuccess() || resp.GetError() != "" {
		t.Fatalf("delete = %+v", resp)
	}
}

func TestBridgeListEnableDisable(t *testing.T) {
	client := newClient(t, newMemorySchedules())
	ctx := testkit.Context(t, 5*time.Second)

	for _, name := range []string{"a", "b", "c"} {
		if _, err := client.Create(ctx, &appsv0.CreateScheduleRequest{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	disabled, err := client.Disable(ctx, &appsv0.ScheduleNameRequest{Name: "b"})
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if disabled.GetSchedule().GetEnabled() {
		t.Fatal("expected b disabled")
	}

	enabledOnly, err := client.List(ctx, &appsv0.ListSchedulesRequest{EnabledOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if enabledOnly.GetTotal() != 2 || len(enabledOnly.GetSchedules()) != 2 {
		t.Fatalf("list enabled = %+v", enabledOnly)
	}

	page, err := client.List(ctx, &appsv0.ListSchedulesRequest{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if page.GetTotal() != 3 || len(page.GetSchedules()) != 1 || page.GetSchedules()[0].GetName() != "b" {
		t.Fatalf("list page = %+v", page)
	}

	enabled, err := client.Enable(ctx, &appsv0.ScheduleNameRequest{Name: "b"})
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !enabled.GetSchedule().GetEnabled() {
		t.Fatal("expected b enabled")
	}

	missing, err := client.Enable(ctx, &appsv0.ScheduleNameRequest{Name: "zzz"})
	if err != nil {
		t.Fatalf("enable missing: %v", err)
	}
	if missing.GetError() == "" || missing.GetSchedule() != nil {
		t.Fatalf("enable missing = %+v", missing)
	}
}

func TestBridgeTriggerAndHistory(t *testing.T) {
	client := newClient(t, newMemorySchedules())
	ctx := testkit.Context(t, 5*time.Second)

	if _, err := client.Create(ctx, &appsv0.CreateScheduleRequest{Name: "ping", Command: "echo hi"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	fired, err := client.Trigger(ctx, &appsv0.ScheduleNameRequest{Name: "ping"})
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if !fired.GetSuccess() || fired.GetOutput() != "ran echo hi" {
		t.Fatalf("trigger = %+v", fired)
	}

	missing, err := client.Trigger(ctx, &appsv0.ScheduleNameRequest{Name: "nope"})
	if err != nil {
		t.Fatalf("trigger missing: %v", err)
	}
	if missing.GetSuccess() || missing.GetError() == "" {
		t.Fatalf("trigger missing = %+v", missing)
	}

	history, err := client.History(ctx, &appsv0.ScheduleHistoryRequest{Name: "ping", Limit: 10})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history.GetTotal() != 1 || history.GetEntries()[0].GetOutput() != "ok" {
		t.Fatalf("history = %+v", history)
	}

	broken, err := client.History(ctx, &appsv0.ScheduleHistoryRequest{Name: "broken"})
	if err != nil {
		t.Fatalf("history broken: %v", err)
	}
	if broken.GetError() != "history unavailable" || len(broken.GetEntries()) != 0 {
		t.Fatalf("history broken = %+v", broken)
	}
}

func TestBridgeTriggersStream(t *testing.T) {
	handler := newMemorySchedules()
	handler.fired = []Trigger{
		{ScheduleID: "1", Name: "first", FiredAt: fixedNow},
		{ScheduleID: "2", Name: "second", FiredAt: fixedNow.Add(time.Minute)},
	}
	client := newClient(t, handler)

	stream, err := client.Triggers(testkit.Context(t, 5*time.Second), &appsv0.Empty{})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	var names []string
	for {
		tr, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("recv: %v", err)
		}
		names = append(names, tr.GetName())
	}
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Fatalf("triggers = %v", names)
	}
}

func TestBridgeTriggersOpenFailure(t *testing.T) {
	handler := newMemorySchedules()
	handler.triggersErr = errors.New("scheduler stopped")
	client := newClient(t, handler)

	stream, err := client.Triggers(testkit.Context(t, 5*time.Second), &appsv0.Empty{})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	if _, err := stream.Recv(); status.Code(err) != codes.Internal {
		t.Fatalf("recv error = %v, want Internal", err)
	}
}

func TestScheduleProtoConversion(t *testing.T) {
	s := Schedule{
		ID:         "s1",
		Definition: Definition{Name: "n", Expression: "@every 5m", Metadata: map[string]string{"k": "v"}},
		Enabled:    true,
		LastRun:    fixedNow,
		RunCount:   4,
	}
	back := FromProto(ToProto(s))
	if back.ID != "s1" || back.Expression != "@every 5m" || !back.LastRun.Equal(fixedNow) || back.RunCount != 4 {
		t.Fatalf("round trip = %+v", back)
	}
	if !back.NextRun.IsZero() {
		t.Fatalf("next run = %v, want zero", back.NextRun)
	}
}
