// Package nashmcp implements the Nash host-automation tool set: a
// persistent registry of named tasks with attached scripts, a
// dispatcher that routes each script to a shell or Python runner, and
// the supporting secret and web-fetch tools.
//
// The registry holds no state between calls: every operation loads
// the durable task document fresh, mutates it in memory, and rewrites
// it in full. Typed results and errors stay internal; the Report
// methods in render.go are the public string-only boundary.
package nashmcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/nash-app/nash-mcp/internal/fetch"
	"github.com/nash-app/nash-mcp/internal/secrets"
	"github.com/nash-app/nash-mcp/internal/taskstore"
	"github.com/nash-app/nash-mcp/spec"
)

type Runtime struct {
	logger *slog.Logger

	store *taskstore.Store

	shell spec.ShellRunner
	code  spec.CodeRunner

	fetcher   *fetch.Fetcher
	secrets   *secrets.Provider
	pythonBin string
}

func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		logger:    slog.Default(),
		fetcher:   fetch.New(),
		pythonBin: "python3",
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(r); err != nil {
			return nil, err
		}
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.store == nil {
		return nil, errors.New("tasks path is required")
	}
	if r.secrets == nil {
		r.secrets = secrets.NewProvider("", r.logger)
	}
	return r, nil
}

// SaveTask inserts or fully replaces the task at args.Name. A corrupt
// or missing store is treated as empty on this write path; the next
// Save overwrites it.
func (r *Runtime) SaveTask(ctx context.Context, args spec.SaveTaskArgs) (spec.SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return spec.SaveResult{}, err
	}
	if args.Name == "" {
		return spec.SaveResult{}, fmt.Errorf("%w: task name is required", spec.ErrInvalidArgument)
	}
	if args.Prompt == "" {
		return spec.SaveResult{}, fmt.Errorf("%w: task prompt is required", spec.ErrInvalidArgument)
	}

	tasks := r.store.LoadOrEmpty()
	if _, ok := tasks[args.Name]; ok {
		r.logger.Info("updating existing task", "task", args.Name, "scripts", len(args.Scripts))
	} else {
		r.logger.Info("creating new task", "task", args.Name, "scripts", len(args.Scripts))
	}
	tasks[args.Name] = spec.Task{Prompt: args.Prompt, Scripts: args.Scripts}

	if err := r.store.Save(tasks); err != nil {
		return spec.SaveResult{}, err
	}
	return spec.SaveResult{Name: args.Name, ScriptCount: len(args.Scripts)}, nil
}

// ListTasks returns a summary of every stored task, sorted by name.
func (r *Runtime) ListTasks(ctx context.Context) ([]spec.TaskSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.store.Exists() {
		return nil, spec.ErrNoTasksFile
	}
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]spec.TaskSummary, 0, len(names))
	for _, name := range names {
		t := tasks[name]
		s := spec.TaskSummary{Name: name}
		for _, sc := range t.Scripts {
			s.Scripts = append(s.Scripts, spec.ScriptSummary{Name: sc.Name, Type: sc.Type})
		}
		out = append(out, s)
	}
	return out, nil
}

// GetTask retrieves one task in full. Lookup is exact and
// case-sensitive.
func (r *Runtime) GetTask(ctx context.Context, name string) (spec.TaskDetail, error) {
	if err := ctx.Err(); err != nil {
		return spec.TaskDetail{}, err
	}
	if name == "" {
		return spec.TaskDetail{}, fmt.Errorf("%w: task name is required", spec.ErrInvalidArgument)
	}
	if !r.store.Exists() {
		return spec.TaskDetail{}, spec.ErrNoTasksFile
	}
	tasks, err := r.store.Load()
	if err != nil {
		return spec.TaskDetail{}, err
	}
	t, ok := tasks[name]
	if !ok {
		return spec.TaskDetail{}, fmt.Errorf("%w: %q", spec.ErrTaskNotFound, name)
	}
	return spec.TaskDetail{Name: name, Prompt: t.Prompt, Scripts: t.Scripts}, nil
}

// DeleteTask removes a task and persists the store. Irreversible.
func (r *Runtime) DeleteTask(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: task name is required", spec.ErrInvalidArgument)
	}
	if !r.store.Exists() {
		return spec.ErrNoTasksFile
	}
	tasks, err := r.store.Load()
	if err != nil {
		return err
	}
	if _, ok := tasks[name]; !ok {
		return fmt.Errorf("%w: %q", spec.ErrTaskNotFound, name)
	}
	delete(tasks, name)
	if err := r.store.Save(tasks); err != nil {
		return err
	}
	r.logger.Info("deleted task", "task", name)
	return nil
}

// ExecuteScript resolves one script inside a task and dispatches it
// with the caller-supplied arguments. The dispatcher's formatted
// output is returned unchanged.
func (r *Runtime) ExecuteScript(ctx context.Context, args spec.ExecuteScriptArgs) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if args.Task == "" || args.Script == "" {
		return "", fmt.Errorf("%w: task and script names are required", spec.ErrInvalidArgument)
	}
	if !r.store.Exists() {
		return "", spec.ErrNoTasksFile
	}
	tasks, err := r.store.Load()
	if err != nil {
		return "", err
	}
	t, ok := tasks[args.Task]
	if !ok {
		return "", fmt.Errorf("%w: %q", spec.ErrTaskNotFound, args.Task)
	}
	if len(t.Scripts) == 0 {
		return "", fmt.Errorf("%w: %q", spec.ErrNoScripts, args.Task)
	}

	// First match wins when names collide within a task.
	var script *spec.Script
	for i := range t.Scripts {
		if t.Scripts[i].Name == args.Script {
			script = &t.Scripts[i]
			break
		}
	}
	if script == nil {
		available := make([]string, 0, len(t.Scripts))
		for _, sc := range t.Scripts {
			available = append(available, sc.Name)
		}
		return "", &spec.ScriptNotFoundError{Task: args.Task, Script: args.Script, Available: available}
	}
	if script.Code == "" {
		return "", fmt.Errorf("%w: %q", spec.ErrEmptyScriptCode, args.Script)
	}

	r.logger.Info("executing task script",
		"task", args.Task, "script", args.Script, "type", script.Type, "args", len(args.Args))

	return r.dispatch(ctx, *script, args.Args)
}
