package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/louisbranch/capbridge/schedule"
)

// Runner executes the task of a fired schedule and returns its output.
type Runner interface {
	Run(ctx context.Context, s schedule.Schedule) (string, error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, s schedule.Schedule) (string, error)

// Run implements Runner.
func (fn RunnerFunc) Run(ctx context.Context, s schedule.Schedule) (string, error) {
	return fn(ctx, s)
}

// ShellRunner runs bash tasks with "sh -c". Agent tasks are left to the host,
// which receives them through the trigger stream.
type ShellRunner struct {
	Dir     string
	Timeout time.Duration
}

// Run implements Runner.
func (r ShellRunner) Run(ctx context.Context, s schedule.Schedule) (string, error) {
	if s.TaskType != schedule.TaskBash {
		return "", nil
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", s.Command)
	cmd.Dir = r.Dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	output := strings.TrimSpace(out.String())
	if err != nil {
		return output, fmt.Errorf("run %q: %w", s.Name, err)
	}
	return output, nil
}
