package nashmcp

import (
	"log/slog"

	"github.com/nash-app/nash-mcp/internal/fetch"
	"github.com/nash-app/nash-mcp/internal/secrets"
	"github.com/nash-app/nash-mcp/internal/taskstore"
	"github.com/nash-app/nash-mcp/spec"
)

type Option func(*Runtime) error

func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) error {
		r.logger = l
		return nil
	}
}

// WithTasksPath sets the durable task store document location.
func WithTasksPath(path string) Option {
	return func(r *Runtime) error {
		r.store = taskstore.New(path)
		return nil
	}
}

// WithShellRunner enables command scripts and exec.command.
func WithShellRunner(sh spec.ShellRunner) Option {
	return func(r *Runtime) error {
		r.shell = sh
		return nil
	}
}

// WithCodeRunner enables python scripts and exec.python.
func WithCodeRunner(cr spec.CodeRunner) Option {
	return func(r *Runtime) error {
		r.code = cr
		return nil
	}
}

// WithSecretsPath sets the secrets document location for the redacted
// secrets listing. The code runner's env injection is configured
// separately on the runner itself.
func WithSecretsPath(path string) Option {
	return func(r *Runtime) error {
		r.secrets = secrets.NewProvider(path, r.logger)
		return nil
	}
}

func WithFetcher(f *fetch.Fetcher) Option {
	return func(r *Runtime) error {
		r.fetcher = f
		return nil
	}
}

// WithPythonBin sets the interpreter used by the package listing.
func WithPythonBin(bin string) Option {
	return func(r *Runtime) error {
		r.pythonBin = bin
		return nil
	}
}
