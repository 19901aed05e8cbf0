package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
)

// ErrToolNotFound is returned when the tool binary cannot be located.
var ErrToolNotFound = errors.New("tool not found")

// Result is what a tool run produced.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Tool runs an external checker against a single file.
type Tool interface {
	Run(ctx context.Context, filePath string) (Result, error)
}

// ExecTool runs a binary on the host.
type ExecTool struct {
	Binary string
	// Args builds the argument list for filePath.
	Args   func(filePath string) []string
	Logger *slog.Logger
}

// Run executes the binary and captures its output. A non-zero exit is not an
// error: it is reported through Result.ExitCode.
func (t *ExecTool) Run(ctx context.Context, filePath string) (Result, error) {
	var args []string
	if t.Args != nil {
		args = t.Args(filePath)
	}

	if t.Logger != nil {
		t.Logger.Debug("executing tool", "binary", t.Binary, "args", args)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return res, fmt.Errorf("%s: %w", t.Binary, ErrToolNotFound)
	}
	return res, fmt.Errorf("%s failed to start: %w", t.Binary, err)
}

var _ Tool = (*ExecTool)(nil)
