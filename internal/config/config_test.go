package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.BasePath == "" || s.TasksPath == "" || s.SecretsPath == "" || s.LogsPath == "" {
		t.Fatalf("defaults not applied: %+v", s)
	}
	if s.PythonBin != "python3" {
		t.Fatalf("PythonBin = %q", s.PythonBin)
	}
	if s.TasksPath != filepath.Join(s.BasePath, "tasks.json") {
		t.Fatalf("TasksPath = %q not under base %q", s.TasksPath, s.BasePath)
	}
}

func TestLoad_YAMLValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_path: /srv/nash\npython_bin: python3.12\nexec_timeout: 45s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.BasePath != "/srv/nash" {
		t.Fatalf("BasePath = %q", s.BasePath)
	}
	if s.PythonBin != "python3.12" {
		t.Fatalf("PythonBin = %q", s.PythonBin)
	}
	if s.ExecTimeout != 45*time.Second {
		t.Fatalf("ExecTimeout = %v", s.ExecTimeout)
	}
	if s.TasksPath != "/srv/nash/tasks.json" {
		t.Fatalf("TasksPath = %q", s.TasksPath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tasks_path: /from/file.json\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("NASH_TASKS_PATH", "/from/env.json")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.TasksPath != "/from/env.json" {
		t.Fatalf("TasksPath = %q, want env override", s.TasksPath)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\t broken ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
