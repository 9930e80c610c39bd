package execute

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/flexigpt/llmtools-go/shelltool"

	"github.com/nash-app/nash-mcp/spec"
)

// ShellRunner executes command lines with sh -c semantics through a
// lazily created shelltool instance. The shell session ID is kept
// between calls so consecutive commands reuse one persistent shell.
type ShellRunner struct {
	mu sync.Mutex

	logger  *slog.Logger
	workdir string
	policy  shelltool.ShellCommandPolicy

	tool      *shelltool.ShellTool
	sessionID string
}

type ShellOption func(*ShellRunner) error

func WithShellLogger(l *slog.Logger) ShellOption {
	return func(r *ShellRunner) error {
		r.logger = l
		return nil
	}
}

// WithShellCommandPolicy overrides the shelltool command policy
// (timeouts, output caps, command blocking).
func WithShellCommandPolicy(p shelltool.ShellCommandPolicy) ShellOption {
	return func(r *ShellRunner) error {
		r.policy = p
		return nil
	}
}

func NewShellRunner(workdir string, opts ...ShellOption) (*ShellRunner, error) {
	if strings.TrimSpace(workdir) == "" {
		return nil, errors.New("shell runner: workdir is required")
	}
	r := &ShellRunner{
		logger:  slog.Default(),
		workdir: workdir,
		policy:  shelltool.DefaultShellCommandPolicy,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RunCommand runs one command line and returns its captured outcome.
// A non-zero exit is a result, not an error; errors mean the command
// could not be dispatched at all.
func (r *ShellRunner) RunCommand(ctx context.Context, command string) (spec.ExecResult, error) {
	if err := ctx.Err(); err != nil {
		return spec.ExecResult{}, err
	}
	if strings.TrimSpace(command) == "" {
		return spec.ExecResult{}, errors.New("shell runner: empty command")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tool == nil {
		st, err := shelltool.NewShellTool(
			shelltool.WithShellAllowedWorkdirRoots([]string{r.workdir}),
			shelltool.WithShellCommandPolicy(r.policy),
			// One persistent shell per runner is all this needs.
			shelltool.WithShellMaxSessions(8),
			shelltool.WithShellSessionTTL(30*time.Minute),
		)
		if err != nil {
			return spec.ExecResult{}, err
		}
		r.tool = st
	}

	r.logger.Info("executing command", "command", command)

	resp, err := r.tool.Run(ctx, shelltool.ShellCommandArgs{
		Commands:  []string{command},
		Workdir:   r.workdir,
		Shell:     shelltool.ShellNameSh,
		SessionID: r.sessionID,
	})
	if err != nil {
		return spec.ExecResult{}, err
	}
	if resp != nil && strings.TrimSpace(resp.SessionID) != "" {
		r.sessionID = resp.SessionID
	}
	if resp == nil || len(resp.Results) == 0 {
		return spec.ExecResult{}, errors.New("shell runner: no result")
	}

	res := resp.Results[0]
	out := spec.ExecResult{
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		TimedOut: res.TimedOut,
		Duration: time.Duration(res.DurationMS) * time.Millisecond,
	}
	if !out.Succeeded() {
		r.logger.Warn("command failed", "exit_code", out.ExitCode, "timed_out", out.TimedOut)
	}
	return out, nil
}
