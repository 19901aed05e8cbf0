package hooks

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PythonExtensions are the files the ruff hooks act on.
var PythonExtensions = []string{".py", ".pyi"}

// FallbackLineLength is passed to ruff format when the project has no ruff
// configuration of its own.
const FallbackLineLength = 120

//go:embed rules.yaml
var defaultRules []byte

// Rules are the rule codes passed to ruff check on top of the project config.
type Rules struct {
	Select []string `yaml:"select"`
	Ignore []string `yaml:"ignore"`
}

// DefaultRules returns the embedded rule set.
func DefaultRules() (Rules, error) {
	return parseRules(defaultRules)
}

// LoadRules reads a rule set from path. An empty path yields DefaultRules.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules: %w", err)
	}
	return parseRules(data)
}

func parseRules(data []byte) (Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("invalid rules: %w", err)
	}
	return r, nil
}

// CheckArgs builds `ruff check --fix` arguments for a file.
func CheckArgs(rules Rules) func(filePath string) []string {
	return func(filePath string) []string {
		args := []string{"check", "--fix"}
		if len(rules.Select) > 0 {
			args = append(args, "--extend-select", strings.Join(rules.Select, ","))
		}
		if len(rules.Ignore) > 0 {
			args = append(args, "--extend-ignore", strings.Join(rules.Ignore, ","))
		}
		return append(args, filePath)
	}
}

// FormatArgs builds `ruff format` arguments for a file. The fallback line
// length is only forced when no ruff configuration governs the file.
func FormatArgs(filePath string) []string {
	args := []string{"format"}
	if !HasRuffConfig(filePath) {
		args = append(args, "--line-length", fmt.Sprint(FallbackLineLength))
	}
	return append(args, filePath)
}

// HasRuffConfig walks up from the file's directory looking for ruff.toml,
// .ruff.toml, or a pyproject.toml with a [tool.ruff] table.
func HasRuffConfig(filePath string) bool {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return false
	}
	// The edited file may not exist yet; then resolve its directory only.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	} else if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}

	dir := filepath.Dir(abs)
	for {
		if isFile(filepath.Join(dir, "ruff.toml")) || isFile(filepath.Join(dir, ".ruff.toml")) {
			return true
		}
		if data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml")); err == nil {
			if strings.Contains(string(data), "[tool.ruff]") {
				return true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// NewCheckHook builds the lint hook around binary (usually "ruff").
func NewCheckHook(binary string, rules Rules, logger *slog.Logger) *Hook {
	return &Hook{
		Name:           "Ruff check",
		Extensions:     PythonExtensions,
		MissingMessage: "Ruff not found. Please install ruff.",
		Tool:           &ExecTool{Binary: binary, Args: CheckArgs(rules), Logger: logger},
		Policy:         CheckPolicy,
		Logger:         logger,
	}
}

// NewFormatHook builds the formatter hook around binary (usually "ruff").
func NewFormatHook(binary string, logger *slog.Logger) *Hook {
	return &Hook{
		Name:           "Ruff format",
		Extensions:     PythonExtensions,
		MissingMessage: "Ruff not found. Please install ruff.",
		Tool:           &ExecTool{Binary: binary, Args: FormatArgs, Logger: logger},
		Policy:         FormatPolicy,
		Logger:         logger,
	}
}
