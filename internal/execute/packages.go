package execute

import (
	"context"
	"fmt"

	"github.com/nash-app/nash-mcp/spec"
)

// ListPackages reports the Python interpreter version and the
// installed distributions, so an agent can check what is importable
// before writing code.
func ListPackages(ctx context.Context, sh spec.ShellRunner, pythonBin string) (spec.ExecResult, error) {
	if pythonBin == "" {
		pythonBin = "python3"
	}
	cmd := fmt.Sprintf("%s --version && %s -m pip list", pythonBin, pythonBin)
	return sh.RunCommand(ctx, cmd)
}
