package spec

import "time"

// ScriptType selects the execution strategy for a script.
type ScriptType string

const (
	ScriptTypePython  ScriptType = "python"
	ScriptTypeCommand ScriptType = "command"
)

// Script is one executable unit attached to a task. Name is unique
// within the owning task's script list (lookup is case-sensitive,
// first match wins). Code is Python source for ScriptTypePython and a
// command template for ScriptTypeCommand.
type Script struct {
	Name        string     `json:"name"`
	Type        ScriptType `json:"type"`
	Code        string     `json:"code"`
	Description string     `json:"description,omitempty"`
}

// Task is a named, persisted unit of reusable work. The task name is
// the key in the durable store document, so it is not repeated here.
// A task with no scripts is a prompt-only task.
type Task struct {
	Prompt  string   `json:"prompt"`
	Scripts []Script `json:"scripts,omitempty"`
}

// SaveTaskArgs are the arguments for tasks.save.
type SaveTaskArgs struct {
	Name    string   `json:"name"`
	Prompt  string   `json:"prompt"`
	Scripts []Script `json:"scripts,omitempty"`
}

// TaskNameArgs address a task by its exact, case-sensitive name.
type TaskNameArgs struct {
	Name string `json:"name"`
}

// ExecuteScriptArgs address one script within a task.
//
// Args are opaque values forwarded to the selected runner. For
// command scripts they are stringified and appended to the command
// line with NO quoting or escaping; shell metacharacters pass through
// as-is. For python scripts they are bound as the task_args list.
type ExecuteScriptArgs struct {
	Task   string `json:"task"`
	Script string `json:"script"`
	Args   []any  `json:"args,omitempty"`
}

// CommandArgs are the arguments for exec.command.
type CommandArgs struct {
	Command string `json:"command"`
}

// PythonArgs are the arguments for exec.python.
type PythonArgs struct {
	Code string `json:"code"`
}

// FetchArgs are the arguments for web.fetch.
type FetchArgs struct {
	URL string `json:"url"`
}

// EmptyArgs is used by tools that take no arguments.
type EmptyArgs struct{}

// ToolReport is the uniform tool result: every tool returns a single
// human-readable report string, for success and failure alike.
type ToolReport struct {
	Report string `json:"report"`
}

// SaveResult is the typed outcome of a save operation.
type SaveResult struct {
	Name        string `json:"name"`
	ScriptCount int    `json:"script_count"`
}

// ScriptSummary is the listing view of a script (no code).
type ScriptSummary struct {
	Name string     `json:"name"`
	Type ScriptType `json:"type"`
}

// TaskSummary is the listing view of a task.
type TaskSummary struct {
	Name    string          `json:"name"`
	Scripts []ScriptSummary `json:"scripts,omitempty"`
}

// TaskDetail is the full retrieval view of a task.
type TaskDetail struct {
	Name    string   `json:"name"`
	Prompt  string   `json:"prompt"`
	Scripts []Script `json:"scripts,omitempty"`
}

// ExecResult is the outcome of one runner invocation. It is created
// fresh per invocation and never persisted.
type ExecResult struct {
	ExitCode int           `json:"exit_code"`
	Stdout   string        `json:"stdout,omitempty"`
	Stderr   string        `json:"stderr,omitempty"`
	TimedOut bool          `json:"timed_out,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Succeeded reports whether the invocation completed with a zero exit
// code and did not hit the runner's timeout.
func (r ExecResult) Succeeded() bool {
	return r.ExitCode == 0 && !r.TimedOut
}
