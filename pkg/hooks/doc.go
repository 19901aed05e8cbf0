// Package hooks wraps external code-quality tools as editor hooks.
//
// A hook reads the editor's JSON payload from stdin, runs one Tool against the
// edited file and maps the tool's exit code onto a Signal:
//
//   - Continue (0): proceed silently.
//   - Warn (1): show output but do not block.
//   - Block (2): stop the editor and show the output.
//
// A missing tool binary is always a warning, never a failure.
package hooks
