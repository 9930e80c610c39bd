package spec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoTasksFile is returned when the durable store document does
	// not exist at all (distinct from an existing-but-empty store).
	ErrNoTasksFile = errors.New("no tasks file")

	// ErrCorruptStore is returned by strict read paths when the
	// durable document exists but is not valid JSON.
	ErrCorruptStore = errors.New("tasks file contains invalid JSON")

	ErrTaskNotFound   = errors.New("task not found")
	ErrScriptNotFound = errors.New("script not found")

	// ErrNoScripts is returned when a script operation addresses a
	// prompt-only task.
	ErrNoScripts = errors.New("task has no scripts")

	// ErrEmptyScriptCode is returned when the matched script has no
	// code to execute. Runnability is validated here, not at save time.
	ErrEmptyScriptCode = errors.New("script contains no code")

	// ErrUnsupportedScriptType matches any UnsupportedScriptTypeError
	// via errors.Is.
	ErrUnsupportedScriptType = errors.New("unsupported script type")
)

// ScriptNotFoundError carries the owning task's script names so the
// boundary can enumerate them for the caller.
type ScriptNotFoundError struct {
	Task      string
	Script    string
	Available []string
}

func (e *ScriptNotFoundError) Error() string {
	return fmt.Sprintf(
		"script %q not found in task %q (available: %s)",
		e.Script, e.Task, strings.Join(e.Available, ", "),
	)
}

func (e *ScriptNotFoundError) Is(target error) bool { return target == ErrScriptNotFound }

// UnsupportedScriptTypeError names the unknown type tag on a script.
type UnsupportedScriptTypeError struct {
	Type ScriptType
}

func (e *UnsupportedScriptTypeError) Error() string {
	return fmt.Sprintf("unknown script type %q (supported: %s, %s)", e.Type, ScriptTypePython, ScriptTypeCommand)
}

func (e *UnsupportedScriptTypeError) Is(target error) bool { return target == ErrUnsupportedScriptType }
