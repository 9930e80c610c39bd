package nashmcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nash-app/nash-mcp/spec"
)

type fakeShell struct {
	lastCommand string
	res         spec.ExecResult
	err         error
}

func (f *fakeShell) RunCommand(ctx context.Context, command string) (spec.ExecResult, error) {
	f.lastCommand = command
	return f.res, f.err
}

type fakeCode struct {
	lastSource string
	res        spec.ExecResult
	err        error
}

func (f *fakeCode) RunCode(ctx context.Context, source string) (spec.ExecResult, error) {
	f.lastSource = source
	return f.res, f.err
}

type testEnv struct {
	rt        *Runtime
	shell     *fakeShell
	code      *fakeCode
	tasksPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	sh := &fakeShell{res: spec.ExecResult{Stdout: "shell-ok\n"}}
	cr := &fakeCode{res: spec.ExecResult{Stdout: "code-ok\n"}}
	path := filepath.Join(t.TempDir(), "tasks.json")
	rt, err := New(
		WithTasksPath(path),
		WithShellRunner(sh),
		WithCodeRunner(cr),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &testEnv{rt: rt, shell: sh, code: cr, tasksPath: path}
}

func mustSave(t *testing.T, env *testEnv, args spec.SaveTaskArgs) {
	t.Helper()
	if _, err := env.rt.SaveTask(t.Context(), args); err != nil {
		t.Fatalf("SaveTask(%s): %v", args.Name, err)
	}
}

func TestNew_RequiresTasksPath(t *testing.T) {
	t.Parallel()

	if _, err := New(); err == nil {
		t.Fatalf("expected error without tasks path")
	}
}

func TestSaveThenGet_RoundTrip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	scripts := []spec.Script{
		{Name: "first", Type: spec.ScriptTypePython, Code: "print(1)", Description: "one"},
		{Name: "second", Type: spec.ScriptTypeCommand, Code: "echo two"},
	}
	mustSave(t, env, spec.SaveTaskArgs{Name: "demo", Prompt: "do the demo", Scripts: scripts})

	got, err := env.rt.GetTask(t.Context(), "demo")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Prompt != "do the demo" {
		t.Fatalf("prompt = %q", got.Prompt)
	}
	if len(got.Scripts) != 2 {
		t.Fatalf("scripts = %d, want 2", len(got.Scripts))
	}
	for i := range scripts {
		if got.Scripts[i] != scripts[i] {
			t.Fatalf("script %d = %+v, want %+v", i, got.Scripts[i], scripts[i])
		}
	}
}

func TestSaveTask_OverwriteReplacesInFull(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	mustSave(t, env, spec.SaveTaskArgs{
		Name:    "job",
		Prompt:  "old prompt",
		Scripts: []spec.Script{{Name: "s", Type: spec.ScriptTypeCommand, Code: "echo old"}},
	})
	mustSave(t, env, spec.SaveTaskArgs{Name: "job", Prompt: "new prompt"})

	summaries, err := env.rt.ListTasks(t.Context())
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("tasks = %d, want exactly 1", len(summaries))
	}

	got, err := env.rt.GetTask(t.Context(), "job")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Prompt != "new prompt" || len(got.Scripts) != 0 {
		t.Fatalf("overwrite was a merge, not a replace: %+v", got)
	}
}

func TestSaveTask_Validation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if _, err := env.rt.SaveTask(t.Context(), spec.SaveTaskArgs{Prompt: "p"}); !errors.Is(err, spec.ErrInvalidArgument) {
		t.Fatalf("missing name error = %v", err)
	}
	if _, err := env.rt.SaveTask(t.Context(), spec.SaveTaskArgs{Name: "n"}); !errors.Is(err, spec.ErrInvalidArgument) {
		t.Fatalf("missing prompt error = %v", err)
	}
}

func TestDeleteTask_ThenLookupsReportNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	mustSave(t, env, spec.SaveTaskArgs{Name: "gone", Prompt: "p"})

	if err := env.rt.DeleteTask(t.Context(), "gone"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := env.rt.GetTask(t.Context(), "gone"); !errors.Is(err, spec.ErrTaskNotFound) {
		t.Fatalf("GetTask after delete = %v", err)
	}
	_, err := env.rt.ExecuteScript(t.Context(), spec.ExecuteScriptArgs{Task: "gone", Script: "x"})
	if !errors.Is(err, spec.ErrTaskNotFound) {
		t.Fatalf("ExecuteScript after delete = %v", err)
	}
	// Second delete must also be a clean NotFound, no crash.
	if err := env.rt.DeleteTask(t.Context(), "gone"); !errors.Is(err, spec.ErrTaskNotFound) {
		t.Fatalf("second DeleteTask = %v", err)
	}
}

func TestListTasks_EmptyStoreSemantics(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	// File absent entirely.
	if _, err := env.rt.ListTasks(t.Context()); !errors.Is(err, spec.ErrNoTasksFile) {
		t.Fatalf("ListTasks without file = %v", err)
	}
	if got := env.rt.ListTasksReport(t.Context()); !strings.Contains(got, "No tasks file found.") {
		t.Fatalf("ListTasksReport = %q", got)
	}

	// File present but holding an empty document.
	if err := os.WriteFile(env.tasksPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	summaries, err := env.rt.ListTasks(t.Context())
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("summaries = %d, want 0", len(summaries))
	}
	if got := env.rt.ListTasksReport(t.Context()); got != "No tasks available." {
		t.Fatalf("ListTasksReport = %q", got)
	}
}

func TestExecuteScript_CommandArgConcatenation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	mustSave(t, env, spec.SaveTaskArgs{
		Name:    "echoer",
		Prompt:  "p",
		Scripts: []spec.Script{{Name: "run", Type: spec.ScriptTypeCommand, Code: "echo hi"}},
	})

	out, err := env.rt.ExecuteScript(t.Context(), spec.ExecuteScriptArgs{
		Task: "echoer", Script: "run", Args: []any{"a", "b"},
	})
	if err != nil {
		t.Fatalf("ExecuteScript: %v", err)
	}
	if env.shell.lastCommand != "echo hi a b" {
		t.Fatalf("dispatched command = %q, want %q", env.shell.lastCommand, "echo hi a b")
	}
	if out != "shell-ok\n" {
		t.Fatalf("report = %q", out)
	}
}

func TestExecuteScript_CommandWithoutArgsRunsVerbatim(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	mustSave(t, env, spec.SaveTaskArgs{
		Name:    "plain",
		Prompt:  "p",
		Scripts: []spec.Script{{Name: "run", Type: spec.ScriptTypeCommand, Code: "ls -la"}},
	})

	if _, err := env.rt.ExecuteScript(t.Context(), spec.ExecuteScriptArgs{Task: "plain", Script: "run"}); err != nil {
		t.Fatalf("ExecuteScript: %v", err)
	}
	if env.shell.lastCommand != "ls -la" {
		t.Fatalf("dispatched command = %q", env.shell.lastCommand)
	}
}

func TestExecuteScript_PythonArgBinding(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	mustSave(t, env, spec.SaveTaskArgs{
		Name:    "pyjob",
		Prompt:  "p",
		Scripts: []spec.Script{{Name: "run", Type: spec.ScriptTypePython, Code: "print(task_args)"}},
	})

	// JSON-decoded numbers arrive as float64, like the tool transport
	// delivers them.
	_, err := env.rt.ExecuteScript(t.Context(), spec.ExecuteScriptArgs{
		Task: "pyjob", Script: "run", Args: []any{float64(1), "x"},
	})
	if err != nil {
		t.Fatalf("ExecuteScript: %v", err)
	}
	want := "task_args = [1, \"x\"]\n\nprint(task_args)"
	if env.code.lastSource != want {
		t.Fatalf("dispatched source = %q, want %q", env.code.lastSource, want)
	}
}

func TestExecuteScript_FirstMatchWinsOnDuplicateNames(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	mustSave(t, env, spec.SaveTaskArgs{
		Name:   "dup",
		Prompt: "p",
		Scripts: []spec.Script{
			{Name: "twin", Type: spec.ScriptTypeCommand, Code: "echo first"},
			{Name: "twin", Type: spec.ScriptTypeCommand, Code: "echo second"},
		},
	})

	if _, err := env.rt.ExecuteScript(t.Context(), spec.ExecuteScriptArgs{Task: "dup", Script: "twin"}); err != nil {
		t.Fatalf("ExecuteScript: %v", err)
	}
	if env.shell.lastCommand != "echo first" {
		t.Fatalf("dispatched %q, want the first script in list order", env.shell.lastCommand)
	}
}

func TestExecuteScript_FailureLadder(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	mustSave(t, env, spec.SaveTaskArgs{
		Name:   "mixed",
		Prompt: "p",
		Scripts: []spec.Script{
			{Name: "good", Type: spec.ScriptTypeCommand, Code: "true"},
			{Name: "hollow", Type: spec.ScriptTypeCommand},
			{Name: "exotic", Type: "ruby", Code: "puts 1"},
		},
	})
	mustSave(t, env, spec.SaveTaskArgs{Name: "promptonly", Prompt: "just words"})

	ctx := t.Context()

	_, err := env.rt.ExecuteScript(ctx, spec.ExecuteScriptArgs{Task: "absent", Script: "x"})
	if !errors.Is(err, spec.ErrTaskNotFound) {
		t.Fatalf("missing task = %v", err)
	}

	_, err = env.rt.ExecuteScript(ctx, spec.ExecuteScriptArgs{Task: "promptonly", Script: "x"})
	if !errors.Is(err, spec.ErrNoScripts) {
		t.Fatalf("prompt-only task = %v", err)
	}

	_, err = env.rt.ExecuteScript(ctx, spec.ExecuteScriptArgs{Task: "mixed", Script: "nope"})
	var nf *spec.ScriptNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("missing script = %v", err)
	}
	if len(nf.Available) != 3 || nf.Available[0] != "good" {
		t.Fatalf("available scripts = %v", nf.Available)
	}

	_, err = env.rt.ExecuteScript(ctx, spec.ExecuteScriptArgs{Task: "mixed", Script: "hollow"})
	if !errors.Is(err, spec.ErrEmptyScriptCode) {
		t.Fatalf("empty code = %v", err)
	}

	_, err = env.rt.ExecuteScript(ctx, spec.ExecuteScriptArgs{Task: "mixed", Script: "exotic"})
	if !errors.Is(err, spec.ErrUnsupportedScriptType) {
		t.Fatalf("unsupported type = %v", err)
	}
}

func TestCorruptStore_StrictReadsLenientSave(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if err := os.WriteFile(env.tasksPath, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Read paths surface the distinct corrupt-store error.
	if _, err := env.rt.ListTasks(t.Context()); !errors.Is(err, spec.ErrCorruptStore) {
		t.Fatalf("ListTasks = %v", err)
	}
	if _, err := env.rt.GetTask(t.Context(), "x"); !errors.Is(err, spec.ErrCorruptStore) {
		t.Fatalf("GetTask = %v", err)
	}
	_, err := env.rt.ExecuteScript(t.Context(), spec.ExecuteScriptArgs{Task: "x", Script: "y"})
	if !errors.Is(err, spec.ErrCorruptStore) {
		t.Fatalf("ExecuteScript = %v", err)
	}

	// The save path silently starts fresh over the corrupt file.
	mustSave(t, env, spec.SaveTaskArgs{Name: "fresh", Prompt: "p"})
	summaries, err := env.rt.ListTasks(t.Context())
	if err != nil {
		t.Fatalf("ListTasks after save: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "fresh" {
		t.Fatalf("summaries = %+v", summaries)
	}
}

func TestScenario_PromptOnlyGreeting(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if got := env.rt.SaveTaskReport(t.Context(), spec.SaveTaskArgs{Name: "greeting", Prompt: "say hi"}); got != "Task 'greeting' saved successfully with 0 scripts." {
		t.Fatalf("SaveTaskReport = %q", got)
	}

	list := env.rt.ListTasksReport(t.Context())
	if !strings.Contains(list, "- greeting (no scripts)") {
		t.Fatalf("ListTasksReport = %q", list)
	}

	got := env.rt.ExecuteScriptReport(t.Context(), spec.ExecuteScriptArgs{Task: "greeting", Script: "anything"})
	if got != "Task 'greeting' does not contain any scripts." {
		t.Fatalf("ExecuteScriptReport = %q", got)
	}
}
