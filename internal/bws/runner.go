package bws

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

const waitDelay = 2 * time.Second

// Result holds the captured output of one bws invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the process exited with status 0
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a Command. Implementations must not retry.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecRunner runs commands as child processes
type ExecRunner struct {
	// Timeout bounds a single invocation; zero waits for the process to exit
	Timeout time.Duration
	// Env is appended to the current environment
	Env map[string]string
}

// NewExecRunner creates an ExecRunner
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{
		Timeout: timeout,
		Env:     make(map[string]string),
	}
}

// Run starts the command and waits for it.
// A non-zero exit status is reported through Result.ExitCode with a nil error;
// err is only set when the process could not be run at all.
func (e *ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	if cmd.Program() == "" {
		return nil, errors.New("empty command")
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Program(), cmd.Args()...)
	// children of a killed process may hold the output pipes open
	c.WaitDelay = waitDelay
	if len(e.Env) > 0 {
		c.Env = os.Environ()
		for k, v := range e.Env {
			c.Env = append(c.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
	case ctx.Err() != nil:
		result.ExitCode = -1
		return result, fmt.Errorf("command interrupted: %w", ctx.Err())
	default:
		result.ExitCode = -1
		return result, fmt.Errorf("command execution failed: %w", err)
	}

	return result, nil
}
