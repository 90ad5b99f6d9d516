package capctl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/capbridge/app"
	"github.com/louisbranch/capbridge/appenv"
	"github.com/louisbranch/capbridge/internal/examples/calculator"
	"github.com/louisbranch/capbridge/internal/examples/scheduler"
	"github.com/louisbranch/capbridge/internal/examples/scheduler/storage/sqlite"
	"github.com/louisbranch/capbridge/schedule"
)

// startPlugin serves the calculator tool and an in-memory scheduler.
func startPlugin(t *testing.T) (string, *scheduler.Service) {
	t.Helper()
	dir, err := os.MkdirTemp("", "cbctl")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	path := filepath.Join(dir, "plugin.sock")

	store, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	svc := scheduler.NewService(store, scheduler.WithLogger(slog.New(slog.DiscardHandler)))

	a, err := app.New(appenv.Env{SockPath: path, Name: "Toolbox", Version: "0.3.0"},
		app.WithLogger(slog.New(slog.DiscardHandler)),
		app.WithOutput(io.Discard),
	)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	a.RegisterTool(calculator.New()).RegisterSchedule(svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
		}
	})
	return path, svc
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root, err := NewRootCommand(&out)
	if err != nil {
		t.Fatalf("new root command: %v", err)
	}
	root.SetArgs(args)
	root.SetErr(io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = root.ExecuteContext(ctx)
	return out.String(), err
}

func TestParseSettings(t *testing.T) {
	settings, err := ParseSettings([]string{"token=abc", "mode=a=b", "token=def"})
	if err != nil {
		t.Fatalf("parse settings: %v", err)
	}
	if settings["token"] != "def" || settings["mode"] != "a=b" {
		t.Fatalf("settings = %v", settings)
	}
	if _, err := ParseSettings([]string{"novalue"}); err == nil {
		t.Fatal("expected error for missing =")
	}
	if _, err := ParseSettings([]string{"=x"}); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestHealthListsServedCapabilities(t *testing.T) {
	path, _ := startPlugin(t)

	out, err := execute(t, "--sock", path, "health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	for _, want := range []string{
		fmt.Sprintf("%-26s serving", "apps.v0.ToolService"),
		fmt.Sprintf("%-26s serving", "apps.v0.ScheduleService"),
		fmt.Sprintf("%-26s absent", "apps.v0.ChannelService"),
		"name: Toolbox",
		"version: 0.3.0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestToolDescribeAndExec(t *testing.T) {
	path, _ := startPlugin(t)

	out, err := execute(t, "--sock", path, "tool", "describe")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if !strings.Contains(out, "name: calculator") {
		t.Fatalf("describe output = %q", out)
	}

	out, err = execute(t, "--sock", path, "tool", "exec", `{"action":"add","a":2,"b":3}`)
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	if strings.TrimSpace(out) != "2 add 3 = 5" {
		t.Fatalf("exec output = %q", out)
	}

	_, err = execute(t, "--sock", path, "tool", "exec", `{"action":"divide","a":1,"b":0}`)
	if err == nil || !strings.Contains(err.Error(), "division by zero") {
		t.Fatalf("exec error = %v", err)
	}
}

func TestToolExecRejectsInvalidJSON(t *testing.T) {
	if _, err := execute(t, "--sock", "/nonexistent.sock", "tool", "exec", "{"); err == nil {
		t.Fatal("expected invalid JSON error")
	}
}

func TestScheduleListTriggerAndDelete(t *testing.T) {
	path, svc := startPlugin(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := svc.Create(ctx, schedule.Definition{
		Name:       "nightly",
		Expression: "@daily",
		TaskType:   schedule.TaskAgent,
		Message:    "summarize",
	}); err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	out, err := execute(t, "--sock", path, "schedule", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "nightly") || !strings.Contains(out, "1 of 1 schedule(s)") {
		t.Fatalf("list output = %q", out)
	}

	if _, err := execute(t, "--sock", path, "schedule", "trigger", "nightly"); err != nil {
		t.Fatalf("trigger: %v", err)
	}

	out, err = execute(t, "--sock", path, "schedule", "delete", "nightly")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if strings.TrimSpace(out) != "deleted nightly" {
		t.Fatalf("delete output = %q", out)
	}

	if _, err := execute(t, "--sock", path, "schedule", "delete", "nightly"); err == nil {
		t.Fatal("expected error deleting a missing schedule")
	}
}

func TestConfigurePushesToServedCapabilities(t *testing.T) {
	path, _ := startPlugin(t)

	out, err := execute(t, "--sock", path, "configure", "region=eu", "debug=true")
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if strings.TrimSpace(out) != "configured debug, region on 2 service(s)" {
		t.Fatalf("configure output = %q", out)
	}
}

func TestDialFailsWithoutSockPath(t *testing.T) {
	t.Setenv("CAPBRIDGE_APP_SOCK", "")
	if _, err := execute(t, "health"); err == nil {
		t.Fatal("expected error without socket path")
	}
}
