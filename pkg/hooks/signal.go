package hooks

import (
	"fmt"
	"io"
)

// Signal is the hook's outward verdict, used as the process exit code.
type Signal int

const (
	// Continue lets the editor proceed silently.
	Continue Signal = 0
	// Warn shows output but does not block.
	Warn Signal = 1
	// Block stops the editor and shows the error output.
	Block Signal = 2
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Warn:
		return "warn"
	case Block:
		return "block"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}

// Exit codes shared by ruff check and ruff format.
const (
	ExitSuccess    = 0
	ExitViolations = 1 // check only; format never uses it
	ExitError      = 2
)

// Streams are where a hook reports to the editor.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// echo relays tool output. With toStderr, stdout is redirected as well so the
// editor surfaces it.
func (s Streams) echo(res Result, toStderr bool) {
	if res.Stdout != "" {
		target := s.Stdout
		if toStderr {
			target = s.Stderr
		}
		io.WriteString(target, res.Stdout)
	}
	if res.Stderr != "" {
		io.WriteString(s.Stderr, res.Stderr)
	}
}

// Policy maps a finished tool run onto a Signal, reporting as it goes.
type Policy func(res Result, out Streams) Signal

// CheckPolicy is the lint mapping: violations block, tool errors warn.
// Unknown exit codes fall through to Continue.
func CheckPolicy(res Result, out Streams) Signal {
	switch res.ExitCode {
	case ExitSuccess:
		out.echo(res, false)
		return Continue
	case ExitViolations:
		out.echo(res, true)
		return Block
	case ExitError:
		fmt.Fprintf(out.Stderr, "Ruff error (exit code %d)\n", res.ExitCode)
		out.echo(res, false)
		return Warn
	default:
		return Continue
	}
}

// FormatPolicy is the formatter mapping: only internal errors warn.
// Unknown exit codes fall through to Continue.
func FormatPolicy(res Result, out Streams) Signal {
	switch res.ExitCode {
	case ExitSuccess:
		out.echo(res, false)
		return Continue
	case ExitError:
		fmt.Fprintln(out.Stderr, "Ruff format error")
		out.echo(res, true)
		return Warn
	default:
		return Continue
	}
}
