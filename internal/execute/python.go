package execute

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flexigpt/llmtools-go/exectool"
	"github.com/google/uuid"

	"github.com/nash-app/nash-mcp/spec"
)

const pythonScriptName = "main.py"

// EnvSource supplies extra environment variables for code execution.
// The secrets provider is the usual implementation.
type EnvSource func() map[string]string

// PythonRunner executes Python source by writing it to a scratch file
// and running it through exectool, which selects the interpreter from
// the .py extension and enforces the execution policy.
type PythonRunner struct {
	logger     *slog.Logger
	scratchDir string
	env        EnvSource
	execPolicy exectool.ExecutionPolicy
}

type PythonOption func(*PythonRunner) error

func WithPythonLogger(l *slog.Logger) PythonOption {
	return func(r *PythonRunner) error {
		r.logger = l
		return nil
	}
}

// WithEnvSource injects environment variables (secrets) into every
// code execution.
func WithEnvSource(src EnvSource) PythonOption {
	return func(r *PythonRunner) error {
		r.env = src
		return nil
	}
}

// WithExecutionPolicy overrides the exectool execution policy
// (timeouts, output caps).
func WithExecutionPolicy(p exectool.ExecutionPolicy) PythonOption {
	return func(r *PythonRunner) error {
		r.execPolicy = p
		return nil
	}
}

func NewPythonRunner(scratchDir string, opts ...PythonOption) (*PythonRunner, error) {
	if strings.TrimSpace(scratchDir) == "" {
		return nil, errors.New("python runner: scratch dir is required")
	}
	r := &PythonRunner{
		logger:     slog.Default(),
		scratchDir: scratchDir,
		execPolicy: exectool.DefaultExecutionPolicy(),
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

// RunCode writes source to a per-invocation scratch directory, runs
// it, and removes the directory afterward. A non-zero exit is a
// result, not an error.
func (r *PythonRunner) RunCode(ctx context.Context, source string) (spec.ExecResult, error) {
	if err := ctx.Err(); err != nil {
		return spec.ExecResult{}, err
	}
	if strings.TrimSpace(source) == "" {
		return spec.ExecResult{}, errors.New("python runner: empty source")
	}

	execID := uuid.Must(uuid.NewV7()).String()
	dir := filepath.Join(r.scratchDir, "py-"+execID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return spec.ExecResult{}, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, pythonScriptName), []byte(source), 0o755); err != nil {
		return spec.ExecResult{}, fmt.Errorf("write script file: %w", err)
	}

	et, err := exectool.NewExecTool(
		exectool.WithAllowedRoots([]string{dir}),
		exectool.WithWorkBaseDir(dir),
		exectool.WithExecutionPolicy(r.execPolicy),
		exectool.WithRunScriptPolicy(exectool.DefaultRunScriptPolicy()),
	)
	if err != nil {
		return spec.ExecResult{}, err
	}

	var env map[string]string
	if r.env != nil {
		env = r.env()
	}

	r.logger.Info("executing python code", "exec_id", execID, "bytes", len(source))

	res, err := et.RunScript(ctx, exectool.RunScriptArgs{
		Path:    pythonScriptName,
		Env:     env,
		WorkDir: ".",
	})
	if err != nil {
		return spec.ExecResult{}, err
	}
	if res == nil {
		return spec.ExecResult{}, errors.New("python runner: no result")
	}

	out := spec.ExecResult{
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		TimedOut: res.TimedOut,
		Duration: time.Duration(res.DurationMS) * time.Millisecond,
	}
	if !out.Succeeded() {
		r.logger.Warn("python code failed", "exec_id", execID, "exit_code", out.ExitCode, "timed_out", out.TimedOut)
	}
	return out, nil
}
