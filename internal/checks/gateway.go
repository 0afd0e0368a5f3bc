package checks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Gateway runs external commands and reads files on behalf of checks.
// Tests substitute a recording implementation; everything a check does
// to the outside world goes through here.
type Gateway interface {
	// Run executes argv and returns its combined output and exit
	// status. A non-zero exit is not an error; the returned error is
	// reserved for failure to launch the process at all.
	Run(ctx context.Context, argv []string) (*CommandResult, error)

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
}

// CommandResult is the outcome of one external command invocation.
type CommandResult struct {
	// Output is the combined stdout and stderr of the command.
	Output string

	// ExitCode is the process exit status.
	ExitCode int
}

// Failed reports whether the command exited non-zero.
func (r *CommandResult) Failed() bool {
	return r.ExitCode != 0
}

// SystemGateway is the real Gateway: subprocesses via os/exec, files
// from disk.
type SystemGateway struct {
	// Trace, when set, receives each argv before it runs (--verbose).
	Trace func(argv []string)
}

// Run executes argv, blocking until the subprocess terminates. There is
// no timeout; a hanging tool hangs the run.
func (g *SystemGateway) Run(ctx context.Context, argv []string) (*CommandResult, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("cannot run an empty command")
	}
	if g.Trace != nil {
		g.Trace(argv)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	result := &CommandResult{Output: string(out)}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", argv[0], err)
	}
	return result, nil
}

// ReadFile returns the contents of the file at path.
func (g *SystemGateway) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
