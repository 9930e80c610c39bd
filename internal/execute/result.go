// Package execute provides the command and Python runners backing the
// task registry, built on llmtools-go's shelltool and exectool.
package execute

import (
	"fmt"

	"github.com/nash-app/nash-mcp/spec"
)

// CommandReport renders a shell invocation outcome: stdout on
// success, an explicit no-output marker when stdout is empty, and the
// exit code plus both streams on failure.
func CommandReport(res spec.ExecResult) string {
	if res.Succeeded() {
		if res.Stdout == "" {
			return "Command executed (no output)."
		}
		return res.Stdout
	}
	if res.TimedOut {
		return fmt.Sprintf(
			"Command timed out (exit code %d).\nSTDOUT:\n%s\nSTDERR:\n%s",
			res.ExitCode, res.Stdout, res.Stderr,
		)
	}
	return fmt.Sprintf(
		"Command failed (exit code %d).\nSTDOUT:\n%s\nSTDERR:\n%s",
		res.ExitCode, res.Stdout, res.Stderr,
	)
}

// PythonReport renders a Python invocation outcome.
func PythonReport(res spec.ExecResult) string {
	if res.Succeeded() {
		if res.Stdout == "" {
			return "Code executed successfully (no output)"
		}
		return res.Stdout
	}
	if res.TimedOut {
		return fmt.Sprintf("Error: execution timed out (return code %d):\n%s", res.ExitCode, res.Stderr)
	}
	return fmt.Sprintf("Error (return code %d):\n%s", res.ExitCode, res.Stderr)
}
