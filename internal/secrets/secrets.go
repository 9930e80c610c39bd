// Package secrets reads the secrets document and exposes it two ways:
// as an environment map injected into code execution, and as a
// redacted listing that never includes values.
package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Secret is one stored credential. Description is documentation only.
type Secret struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Provider reads the secrets JSON document (a flat array of Secret
// records) at a fixed path. Every call re-reads the file.
type Provider struct {
	path   string
	logger *slog.Logger
}

func NewProvider(path string, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{path: path, logger: logger}
}

// Load returns all secrets. A missing file yields an empty list.
func (p *Provider) Load() ([]Secret, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read secrets file: %w", err)
	}
	var out []Secret
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse secrets file: %w", err)
	}
	return out, nil
}

// Env returns key -> value for all well-formed entries. Failures are
// logged and yield an empty map so code execution can proceed without
// secrets, matching the lenient load in the original runner.
func (p *Provider) Env() map[string]string {
	list, err := p.Load()
	if err != nil {
		p.logger.Warn("error loading secrets", "err", err)
		return map[string]string{}
	}
	env := make(map[string]string, len(list))
	for _, s := range list {
		if s.Key == "" || s.Value == "" {
			continue
		}
		env[s.Key] = s.Value
	}
	return env
}

// Describe renders the redacted listing: keys and descriptions only.
func (p *Provider) Describe() string {
	if _, err := os.Stat(p.path); errors.Is(err, os.ErrNotExist) {
		return "No secrets file found. Add secrets to make credentials available to scripts."
	}

	list, err := p.Load()
	if err != nil {
		return fmt.Sprintf("Error accessing secrets: %v", err)
	}
	if len(list) == 0 {
		return "No secrets available."
	}

	var b strings.Builder
	b.WriteString("Available secrets:\n\n")
	for _, s := range list {
		desc := s.Description
		if desc == "" {
			desc = "No description provided"
		}
		fmt.Fprintf(&b, "Key: %s\nDescription: %s\n\n", s.Key, desc)
	}
	b.WriteString("Access these secrets in Python scripts with os.environ.get('SECRET_NAME').")
	return b.String()
}
