package mocks

import (
	"context"
	"fmt"
	"sync"

	"bwsAPI/internal/bws"
)

// MockRunner implements bws.Runner for tests without spawning processes.
type MockRunner struct {
	mu sync.Mutex

	// call flag and history for assertions
	RunCalled bool
	Commands  []bws.Command

	// forceable error (set in tests)
	RunErr error

	// Key - "<resource> <operation>", e.g. "secret list"
	Results map[string]bws.Result
}

func NewMockRunner() *MockRunner {
	return &MockRunner{
		Results: make(map[string]bws.Result),
	}
}

// helper: build the lookup key from the first two CLI arguments
func makeKey(cmd bws.Command) string {
	args := cmd.Args()
	if len(args) < 2 {
		return ""
	}
	return fmt.Sprintf("%s %s", args[0], args[1])
}

// Stub registers the output returned for a resource/operation pair.
func (m *MockRunner) Stub(kind bws.Kind, op bws.Operation, stdout, stderr string, exitCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results[fmt.Sprintf("%s %s", kind, op)] = bws.Result{
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
	}
}

// Run records the command and returns the stubbed result.
func (m *MockRunner) Run(ctx context.Context, cmd bws.Command) (*bws.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RunCalled = true
	m.Commands = append(m.Commands, cmd.With())

	if m.RunErr != nil {
		return nil, m.RunErr
	}

	res, ok := m.Results[makeKey(cmd)]
	if !ok {
		return &bws.Result{Stderr: "no stub for " + makeKey(cmd), ExitCode: 1}, nil
	}
	return &res, nil
}

// LastCommand returns the most recent command, or nil.
func (m *MockRunner) LastCommand() bws.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return nil
	}
	return m.Commands[len(m.Commands)-1]
}
