package nashmcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nash-app/nash-mcp/internal/execute"
	"github.com/nash-app/nash-mcp/spec"
)

// The Report methods are the outermost boundary: each converts a
// registry operation's typed outcome into the public human-readable
// string and never returns an error. Callers distinguish success from
// failure only by message content; that is the deliberate contract.

func (r *Runtime) SaveTaskReport(ctx context.Context, args spec.SaveTaskArgs) string {
	res, err := r.SaveTask(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error saving task: %v", err)
	}
	return fmt.Sprintf("Task '%s' saved successfully with %d scripts.", res.Name, res.ScriptCount)
}

func (r *Runtime) ListTasksReport(ctx context.Context) string {
	summaries, err := r.ListTasks(ctx)
	switch {
	case errors.Is(err, spec.ErrNoTasksFile):
		return "No tasks file found. Use tasks.save to create tasks."
	case errors.Is(err, spec.ErrCorruptStore):
		return fmt.Sprintf("Error: %v", err)
	case err != nil:
		return fmt.Sprintf("Error listing tasks: %v", err)
	}
	if len(summaries) == 0 {
		return "No tasks available."
	}

	var b strings.Builder
	b.WriteString("Available tasks:\n\n")
	for _, t := range summaries {
		fmt.Fprintf(&b, "- %s", t.Name)
		if n := len(t.Scripts); n > 0 {
			fmt.Fprintf(&b, " (%d script%s)\n  Scripts:", n, plural(n))
			for _, s := range t.Scripts {
				fmt.Fprintf(&b, "\n  - %s (%s)", s.Name, s.Type)
			}
		} else {
			b.WriteString(" (no scripts)")
		}
		b.WriteString("\n\n")
	}
	b.WriteString("Use tasks.get to view complete task details.")
	return b.String()
}

func (r *Runtime) GetTaskReport(ctx context.Context, name string) string {
	detail, err := r.GetTask(ctx, name)
	if err != nil {
		return renderLookupError(name, err, "Error retrieving task")
	}
	return renderTaskView(detail, false)
}

func (r *Runtime) TaskDetailsReport(ctx context.Context, name string) string {
	detail, err := r.GetTask(ctx, name)
	if err != nil {
		return renderLookupError(name, err, "Error viewing task details")
	}
	return renderTaskView(detail, true)
}

func (r *Runtime) DeleteTaskReport(ctx context.Context, name string) string {
	err := r.DeleteTask(ctx, name)
	switch {
	case err == nil:
		return fmt.Sprintf("Task '%s' deleted successfully.", name)
	case errors.Is(err, spec.ErrNoTasksFile):
		return "No tasks file found. Nothing to delete."
	case errors.Is(err, spec.ErrTaskNotFound):
		return fmt.Sprintf("Task '%s' not found. Use tasks.list to see available tasks.", name)
	case errors.Is(err, spec.ErrCorruptStore):
		return fmt.Sprintf("Error: %v", err)
	default:
		return fmt.Sprintf("Error deleting task: %v", err)
	}
}

func (r *Runtime) ExecuteScriptReport(ctx context.Context, args spec.ExecuteScriptArgs) string {
	report, err := r.ExecuteScript(ctx, args)
	if err == nil {
		return report
	}

	var notFound *spec.ScriptNotFoundError
	var badType *spec.UnsupportedScriptTypeError
	switch {
	case errors.Is(err, spec.ErrNoTasksFile):
		return "No tasks file found. Use tasks.save to create tasks first."
	case errors.Is(err, spec.ErrCorruptStore):
		return fmt.Sprintf("Error: %v", err)
	case errors.Is(err, spec.ErrTaskNotFound):
		return fmt.Sprintf("Task '%s' not found. Use tasks.list to see available tasks.", args.Task)
	case errors.Is(err, spec.ErrNoScripts):
		return fmt.Sprintf("Task '%s' does not contain any scripts.", args.Task)
	case errors.As(err, &notFound):
		return fmt.Sprintf("Script '%s' not found in task '%s'. Available scripts: %s",
			notFound.Script, notFound.Task, strings.Join(notFound.Available, ", "))
	case errors.Is(err, spec.ErrEmptyScriptCode):
		return fmt.Sprintf("Script '%s' contains no code to execute.", args.Script)
	case errors.As(err, &badType):
		return fmt.Sprintf("Unknown script type '%s'. Supported types are '%s' and '%s'.",
			badType.Type, spec.ScriptTypePython, spec.ScriptTypeCommand)
	default:
		return fmt.Sprintf("Error executing script: %v", err)
	}
}

// CommandReport runs one shell command for the exec.command tool.
func (r *Runtime) CommandReport(ctx context.Context, command string) string {
	if strings.TrimSpace(command) == "" {
		return "Error: no command provided."
	}
	if r.shell == nil {
		return "Error: shell execution is not configured."
	}
	res, err := r.shell.RunCommand(ctx, command)
	if err != nil {
		return fmt.Sprintf("Exception: %v", err)
	}
	return execute.CommandReport(res)
}

// PythonReport runs Python source for the exec.python tool.
func (r *Runtime) PythonReport(ctx context.Context, code string) string {
	if strings.TrimSpace(code) == "" {
		return "Error: no code provided."
	}
	if r.code == nil {
		return "Error: python execution is not configured."
	}
	res, err := r.code.RunCode(ctx, code)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return execute.PythonReport(res)
}

// PackagesReport lists the Python interpreter version and installed
// distributions.
func (r *Runtime) PackagesReport(ctx context.Context) string {
	if r.shell == nil {
		return "Error: shell execution is not configured."
	}
	res, err := execute.ListPackages(ctx, r.shell, r.pythonBin)
	if err != nil {
		return fmt.Sprintf("Error listing packages: %v", err)
	}
	return execute.CommandReport(res)
}

// FetchReport retrieves a web page as readable text.
func (r *Runtime) FetchReport(ctx context.Context, url string) string {
	return r.fetcher.Report(ctx, url)
}

// SecretsReport lists secret keys and descriptions, never values.
func (r *Runtime) SecretsReport(ctx context.Context) string {
	if err := ctx.Err(); err != nil {
		return fmt.Sprintf("Error accessing secrets: %v", err)
	}
	return r.secrets.Describe()
}

func renderLookupError(name string, err error, fallback string) string {
	switch {
	case errors.Is(err, spec.ErrNoTasksFile):
		return "No tasks file found. Use tasks.save to create tasks."
	case errors.Is(err, spec.ErrTaskNotFound):
		return fmt.Sprintf("Task '%s' not found. Use tasks.list to see available tasks.", name)
	case errors.Is(err, spec.ErrCorruptStore):
		return fmt.Sprintf("Error: %v", err)
	default:
		return fmt.Sprintf("%s: %v", fallback, err)
	}
}

func renderTaskView(t spec.TaskDetail, includeCode bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TASK: %s\n\nPROMPT:\n%s\n", t.Name, t.Prompt)

	if len(t.Scripts) == 0 {
		b.WriteString("\nThis task has no executable scripts.")
		return b.String()
	}

	if includeCode {
		b.WriteString("\nSCRIPTS:\n")
	} else {
		b.WriteString("\nAVAILABLE SCRIPTS:\n")
	}
	for i, s := range t.Scripts {
		desc := s.Description
		if desc == "" {
			desc = "No description provided"
		}
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, s.Name, s.Type)
		fmt.Fprintf(&b, "   Description: %s\n", desc)
		if includeCode {
			fmt.Fprintf(&b, "   Code:\n```%s\n%s\n```\n", s.Type, s.Code)
		}
		fmt.Fprintf(&b, "   Execute with: tasks.run_script(task='%s', script='%s', args=[])\n", t.Name, s.Name)
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
