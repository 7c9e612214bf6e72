package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
prompt: "scheme> "
max_depth: 500
log_level: debug
history:
  enabled: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Prompt != "scheme> " || cfg.MaxDepth != 500 || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.History.Enabled {
		t.Fatalf("expected history disabled")
	}
	if cfg.History.Limit != Default().History.Limit {
		t.Fatalf("unset fields should keep defaults, got limit %d", cfg.History.Limit)
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Prompt != Default().Prompt {
		t.Fatalf("expected default prompt, got %q", cfg.Prompt)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, "promt: typo\n"))
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateAggregatesIssues(t *testing.T) {
	_, err := Load(writeConfig(t, `
max_depth: 0
log_level: loud
history:
  enabled: true
  path: ""
  limit: -1
`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Issues) != 4 {
		t.Fatalf("expected 4 issues, got %v", verr.Issues)
	}
}

func TestValidateRejectsExcessiveDepth(t *testing.T) {
	_, err := Load(writeConfig(t, "max_depth: 1000000000\n"))
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Issues) != 1 || !strings.Contains(verr.Issues[0], "max_depth") {
		t.Fatalf("expected a max_depth issue, got %v", err)
	}

	cfg, err := Load(writeConfig(t, "max_depth: 250000\n"))
	if err != nil || cfg.MaxDepth != 250000 {
		t.Fatalf("expected the largest depth to load, got %v (%v)", cfg, err)
	}
}

func TestParseLevel(t *testing.T) {
	for name, level := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Warn":    slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(name)
		if err != nil || got != level {
			t.Fatalf("ParseLevel(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
