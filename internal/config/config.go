// Package config holds persistent settings loaded from a YAML file,
// with NASH_* environment variables taking precedence and sensible
// defaults under the user's home directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the paths and execution knobs for the tool set.
type Settings struct {
	// BasePath is the working directory for shell execution and the
	// parent for default state paths.
	BasePath string `yaml:"base_path"`

	// TasksPath is the durable task store document.
	TasksPath string `yaml:"tasks_path"`

	// SecretsPath is the secrets document.
	SecretsPath string `yaml:"secrets_path"`

	// LogsPath is the directory for timestamped log files.
	LogsPath string `yaml:"logs_path"`

	// PythonBin is the interpreter used for package listing.
	PythonBin string `yaml:"python_bin"`

	// ExecTimeout bounds each runner invocation. Zero keeps the
	// runner defaults.
	ExecTimeout time.Duration `yaml:"exec_timeout"`
}

// Load reads settings from path. A missing file yields defaults; the
// NASH_BASE_PATH, NASH_TASKS_PATH, NASH_SECRETS_PATH and
// NASH_LOGS_PATH environment variables override both.
func Load(path string) (*Settings, error) {
	s := &Settings{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults apply.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, s); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	s.applyEnv()
	if err := s.applyDefaults(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyEnv() {
	if v := os.Getenv("NASH_BASE_PATH"); v != "" {
		s.BasePath = v
	}
	if v := os.Getenv("NASH_TASKS_PATH"); v != "" {
		s.TasksPath = v
	}
	if v := os.Getenv("NASH_SECRETS_PATH"); v != "" {
		s.SecretsPath = v
	}
	if v := os.Getenv("NASH_LOGS_PATH"); v != "" {
		s.LogsPath = v
	}
}

func (s *Settings) applyDefaults() error {
	if s.BasePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		s.BasePath = filepath.Join(home, ".nash")
	}
	if s.TasksPath == "" {
		s.TasksPath = filepath.Join(s.BasePath, "tasks.json")
	}
	if s.SecretsPath == "" {
		s.SecretsPath = filepath.Join(s.BasePath, "secrets.json")
	}
	if s.LogsPath == "" {
		s.LogsPath = filepath.Join(s.BasePath, "logs")
	}
	if s.PythonBin == "" {
		s.PythonBin = "python3"
	}
	return nil
}

// DefaultConfigPath is where the CLI looks for settings when no
// --config flag is given.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nash", "config.yaml")
}
