package nashmcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/nash-app/nash-mcp/internal/execute"
	"github.com/nash-app/nash-mcp/spec"
)

// taskArgsName is the variable Python scripts read their arguments
// from; the dispatcher prepends a literal assignment to it.
const taskArgsName = "task_args"

// dispatch selects the runner for a script's declared type and shapes
// the argument-passing convention for it. The type tag is matched
// case-insensitively, like the source system.
func (r *Runtime) dispatch(ctx context.Context, script spec.Script, args []any) (string, error) {
	switch spec.ScriptType(strings.ToLower(string(script.Type))) {
	case spec.ScriptTypePython:
		if r.code == nil {
			return "", errors.New("no code runner configured")
		}
		source := taskArgsName + " = " + pythonArgsLiteral(args) + "\n\n" + script.Code
		res, err := r.code.RunCode(ctx, source)
		if err != nil {
			return "", err
		}
		return execute.PythonReport(res), nil

	case spec.ScriptTypeCommand:
		if r.shell == nil {
			return "", errors.New("no shell runner configured")
		}
		res, err := r.shell.RunCommand(ctx, commandLine(script.Code, args))
		if err != nil {
			return "", err
		}
		return execute.CommandReport(res), nil

	default:
		return "", &spec.UnsupportedScriptTypeError{Type: script.Type}
	}
}

// commandLine appends stringified args to the stored command template
// with single spaces and NO quoting. Shell metacharacters in an
// argument reach the shell as-is; that is the documented convention,
// not an oversight.
func commandLine(code string, args []any) string {
	if len(args) == 0 {
		return code
	}
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, stringifyArg(a))
	}
	return code + " " + strings.Join(parts, " ")
}

func stringifyArg(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatNumber(x)
	default:
		return fmt.Sprint(x)
	}
}

// pythonArgsLiteral renders the argument list as a Python list
// literal, so that `print(task_args)` inside the script prints the
// same values the caller passed.
func pythonArgsLiteral(args []any) string {
	if args == nil {
		args = []any{}
	}
	return pythonLiteral(args)
}

func pythonLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return pythonQuote(x)
	case float64:
		return formatNumber(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			parts = append(parts, pythonLiteral(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, pythonQuote(k)+": "+pythonLiteral(x[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return pythonQuote(fmt.Sprint(x))
	}
}

// formatNumber keeps JSON-decoded integers integral ("3", not "3.0").
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func pythonQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
