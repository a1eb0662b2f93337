package source

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/NVIDIA/chartops/pkg/errors"
)

// flagMarker identifies help-output lines that declare a flag.
const flagMarker = " --"

// ExitError reports a non-zero exit of the capture subprocess. The generator
// aborts without producing output, and the CLI surfaces the same exit code
// to its caller.
type ExitError struct {
	Program string
	Code    int
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Program, e.Code)
}

// Unwrap returns the underlying exec error.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the subprocess exit status so the CLI can propagate it
// verbatim.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Exec captures the help listing by invoking a locally built executable with
// a help flag and keeping only the lines that declare a flag.
type Exec struct {
	Program string
	Args    []string
}

// NewExec returns a Source that runs program with the given arguments and
// captures its standard output.
func NewExec(program string, args ...string) *Exec {
	return &Exec{Program: program, Args: args}
}

// Text runs the program and returns the flag-declaring lines of its output.
func (e *Exec) Text(ctx context.Context) (string, error) {
	path, err := exec.LookPath(e.Program)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNotFound,
			fmt.Sprintf("%s not found in PATH", e.Program), err)
	}

	cmd := exec.CommandContext(ctx, path, e.Args...)
	output, err := cmd.Output()
	if err != nil {
		var xerr *exec.ExitError
		if goerrors.As(err, &xerr) {
			return "", &ExitError{Program: e.Program, Code: xerr.ExitCode(), Cause: err}
		}
		return "", errors.WrapWithContext(errors.ErrCodeCaptureFailed,
			"failed to capture help listing", err,
			map[string]any{"program": e.Program, "args": e.Args})
	}

	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if strings.Contains(line, flagMarker) {
			lines = append(lines, line)
		}
	}

	slog.Debug("captured help listing", slog.String("program", e.Program), slog.Int("lines", len(lines)))
	return strings.Join(lines, "\n") + "\n", nil
}
