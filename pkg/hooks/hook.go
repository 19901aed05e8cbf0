package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Hook binds a Tool to the file types it understands and the policy that
// turns its exit code into a Signal.
type Hook struct {
	// Name prefixes the skip message, e.g. "Ruff check".
	Name string
	// Extensions the hook applies to; other files are skipped.
	Extensions []string
	// MissingMessage is shown when the tool binary is absent.
	MissingMessage string
	Tool           Tool
	Policy         Policy
	Logger         *slog.Logger
}

// Handle processes one payload and returns the signal to exit with.
// It never fails: every problem inside the hook degrades to Warn.
func (h *Hook) Handle(ctx context.Context, in io.Reader, out Streams) Signal {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	payload, err := ReadPayload(in)
	if err != nil {
		fmt.Fprintf(out.Stderr, "Hook error: %v\n", err)
		return Warn
	}

	path := payload.ToolInput.FilePath
	if !h.applies(path) {
		fmt.Fprintf(out.Stderr, "%s: Not a python file, skipping.\n", h.Name)
		return Continue
	}

	res, err := h.Tool.Run(ctx, path)
	if err != nil {
		if errors.Is(err, ErrToolNotFound) {
			fmt.Fprintln(out.Stderr, h.MissingMessage)
			return Warn
		}
		fmt.Fprintf(out.Stderr, "Hook error: %v\n", err)
		return Warn
	}

	sig := h.Policy(res, out)
	logger.Debug("hook finished", "hook", h.Name, "file", path, "exit_code", res.ExitCode, "signal", sig)
	return sig
}

func (h *Hook) applies(path string) bool {
	if path == "" {
		return false
	}
	for _, ext := range h.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
