// Package cli wires the task registry runtime into a cobra command
// tree so every tool is also usable from a terminal.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	nashmcp "github.com/nash-app/nash-mcp"
	"github.com/nash-app/nash-mcp/internal/config"
	"github.com/nash-app/nash-mcp/internal/execute"
	"github.com/nash-app/nash-mcp/internal/fetch"
	"github.com/nash-app/nash-mcp/internal/secrets"
)

// Version and Commit are set via LDFLAGS at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var (
	verbose    bool
	configFile string

	execTimeout time.Duration
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nashmcp",
		Short: "Task registry and script dispatch for host automation",
		Long:  "nashmcp stores named tasks with executable python/command scripts and dispatches them to sandboxed runners, alongside ad-hoc shell, Python, web-fetch and secrets tools.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigPath(), "path to config file")

	root.AddCommand(newTasksCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newExecCmd())
	root.AddCommand(newFetchCmd())
	root.AddCommand(newSecretsCmd())
	root.AddCommand(newToolsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// buildRuntime loads settings, sets up file logging and assembles the
// runtime with its runners. The returned closer flushes the log file.
func buildRuntime() (*nashmcp.Runtime, func(), error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	execTimeout = cfg.ExecTimeout

	logger, closeLog := newFileLogger(cfg.LogsPath)

	secretsProvider := secrets.NewProvider(cfg.SecretsPath, logger)

	shell, err := execute.NewShellRunner(cfg.BasePath, execute.WithShellLogger(logger))
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	code, err := execute.NewPythonRunner(
		filepath.Join(cfg.BasePath, "scratch"),
		execute.WithPythonLogger(logger),
		execute.WithEnvSource(secretsProvider.Env),
	)
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	rt, err := nashmcp.New(
		nashmcp.WithLogger(logger),
		nashmcp.WithTasksPath(cfg.TasksPath),
		nashmcp.WithSecretsPath(cfg.SecretsPath),
		nashmcp.WithShellRunner(shell),
		nashmcp.WithCodeRunner(code),
		nashmcp.WithFetcher(fetch.New()),
		nashmcp.WithPythonBin(cfg.PythonBin),
	)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return rt, closeLog, nil
}

// newFileLogger opens a timestamped log file under logsDir. If the
// directory cannot be created the logger falls back to stderr so the
// CLI still works.
func newFileLogger(logsDir string) (*slog.Logger, func()) {
	var w io.Writer = os.Stderr
	closeLog := func() {}

	if err := os.MkdirAll(logsDir, 0o755); err == nil {
		name := fmt.Sprintf("nash_mcp_%s.log", time.Now().Format("20060102_150405"))
		if f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			w = f
			closeLog = func() { f.Close() }
		}
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeLog
}

// execContext bounds runner invocations with the configured exec
// timeout. Zero means no bound beyond the command's own context.
func execContext(parent context.Context) (context.Context, context.CancelFunc) {
	if execTimeout <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, execTimeout)
}
