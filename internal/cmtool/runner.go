package cmtool

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner executes an external command and returns its combined
// stdout/stderr and exit status. err is reserved for failures to run the
// command at all; a non-zero exit is reported through exitCode.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (output string, exitCode int, err error)
}

// ExecRunner runs commands with os/exec and blocks until they finish.
type ExecRunner struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return buf.String(), exitErr.ExitCode(), nil
		}
		return buf.String(), -1, err
	}
	return buf.String(), 0, nil
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, name string, args ...string) (string, int, error)

func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	return f(ctx, name, args...)
}
