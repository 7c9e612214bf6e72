package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dimbata23/minischeme/pkg/interpreter"
)

// DefaultPath is where the interpreter looks for its configuration when no
// path is given.
const DefaultPath = ".minischeme.yml"

// Config holds the settings of the command-line interpreter.
type Config struct {
	Prompt   string        `yaml:"prompt"`
	MaxDepth int           `yaml:"max_depth"`
	LogLevel string        `yaml:"log_level"`
	History  HistoryConfig `yaml:"history"`
}

// HistoryConfig controls the SQLite session transcript.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Limit   int    `yaml:"limit"` // entries preloaded into the line editor
}

// ValidationError aggregates configuration failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Prompt:   "> ",
		MaxDepth: interpreter.DefaultMaxDepth,
		LogLevel: "warn",
		History: HistoryConfig{
			Enabled: true,
			Path:    defaultHistoryPath(),
			Limit:   500,
		},
	}
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".minischeme_history.db"
	}
	return filepath.Join(dir, "minischeme", "history.db")
}

// Load reads the YAML file at path over the defaults. An empty path loads
// DefaultPath and tolerates its absence.
func Load(path string) (*Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultPath
	}

	file, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs ValidationError
	if c.MaxDepth <= 0 || c.MaxDepth > interpreter.MaxDepthLimit {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_depth must be between 1 and %d, got %d", interpreter.MaxDepthLimit, c.MaxDepth))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs.Issues = append(errs.Issues, err.Error())
	}
	if c.History.Enabled && c.History.Path == "" {
		errs.Issues = append(errs.Issues, "history.path must be set when history is enabled")
	}
	if c.History.Limit < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("history.limit must not be negative, got %d", c.History.Limit))
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// ParseLevel maps a log_level name onto a slog level. Besides the names slog
// understands it accepts "warning".
func ParseLevel(name string) (slog.Level, error) {
	if strings.EqualFold(name, "warning") {
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log_level %q is not one of debug, info, warn, error", name)
	}
	return level, nil
}
