package bws

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shell(script string) Command {
	return Command{"/bin/sh", "-c", script}
}

// Testing - ExecRunner
func TestExecRunner_Success(t *testing.T) {
	r := NewExecRunner(0)

	res, err := r.Run(context.Background(), shell(`printf '[{"id":"1"}]'`))
	require.NoError(t, err)

	assert.True(t, res.Success())
	assert.Equal(t, `[{"id":"1"}]`, res.Stdout)
	assert.Empty(t, res.Stderr)
}

// a non-zero exit is a result, not an error
func TestExecRunner_NonZeroExit(t *testing.T) {
	r := NewExecRunner(0)

	res, err := r.Run(context.Background(), shell(`printf 'not found' >&2; exit 3`))
	require.NoError(t, err)

	assert.False(t, res.Success())
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "not found", res.Stderr)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner(0)

	_, err := r.Run(context.Background(), Command{"definitely-not-a-real-bws-binary"})
	assert.Error(t, err)
}

func TestExecRunner_EmptyCommand(t *testing.T) {
	_, err := NewExecRunner(0).Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestExecRunner_Timeout(t *testing.T) {
	r := NewExecRunner(100 * time.Millisecond)

	res, err := r.Run(context.Background(), shell(`sleep 5`))
	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
	assert.Less(t, res.Duration, 5*time.Second)
}

func TestExecRunner_Env(t *testing.T) {
	r := NewExecRunner(0)
	r.Env["BWS_TEST_VAR"] = "hello"

	res, err := r.Run(context.Background(), shell(`printf "$BWS_TEST_VAR"`))
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Stdout)
}
