package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSecrets(t *testing.T, content string) *Provider {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return NewProvider(path, nil)
}

func TestDescribe_ListsKeysAndDescriptionsOnly(t *testing.T) {
	t.Parallel()

	p := writeSecrets(t, `[
	  {"key": "API_KEY_1", "value": "hunter2", "description": "First API key"},
	  {"key": "API_KEY_2", "value": "hunter3", "description": "Second API key"}
	]`)

	got := p.Describe()
	for _, want := range []string{"Available secrets:", "Key: API_KEY_1", "Description: First API key", "Key: API_KEY_2"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Describe = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "hunter2") || strings.Contains(got, "hunter3") {
		t.Fatalf("Describe leaked secret values: %q", got)
	}
}

func TestDescribe_MissingFile(t *testing.T) {
	t.Parallel()

	p := NewProvider(filepath.Join(t.TempDir(), "nope.json"), nil)
	if got := p.Describe(); !strings.Contains(got, "No secrets file found.") {
		t.Fatalf("Describe = %q", got)
	}
}

func TestDescribe_EmptyFile(t *testing.T) {
	t.Parallel()

	p := writeSecrets(t, `[]`)
	if got := p.Describe(); !strings.Contains(got, "No secrets available.") {
		t.Fatalf("Describe = %q", got)
	}
}

func TestEnv_SkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	p := writeSecrets(t, `[
	  {"key": "GOOD", "value": "v"},
	  {"key": "", "value": "orphan"},
	  {"key": "NO_VALUE"}
	]`)

	env := p.Env()
	if len(env) != 1 || env["GOOD"] != "v" {
		t.Fatalf("Env = %v", env)
	}
}

func TestEnv_UnparsableFileYieldsEmptyMap(t *testing.T) {
	t.Parallel()

	p := writeSecrets(t, `{broken`)
	if env := p.Env(); len(env) != 0 {
		t.Fatalf("Env on corrupt file = %v, want empty", env)
	}
}
