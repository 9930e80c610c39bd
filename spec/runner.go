package spec

import "context"

// ShellRunner executes one shell command line in an isolated process
// and returns its captured output and exit code.
type ShellRunner interface {
	RunCommand(ctx context.Context, command string) (ExecResult, error)
}

// CodeRunner executes Python source text in an isolated process and
// returns its captured output and exit code. Environment injection
// (secrets) is the runner's concern, not the caller's.
type CodeRunner interface {
	RunCode(ctx context.Context, source string) (ExecResult, error)
}
