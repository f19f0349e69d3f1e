package bws

import (
	"net/http"
	"testing"

	"bwsAPI/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Testing - Build
func TestBuild(t *testing.T) {
	fullBody := &models.CreateRequest{Name: "x", Value: "y", ProjectID: "p1", Note: "n"}

	tests := []struct {
		name      string
		kind      Kind
		op        Operation
		in        Input
		expected  Command
		expectErr error
	}{
		{
			name:     "secret create with every field",
			kind:     KindSecret,
			op:       OpCreate,
			in:       Input{Token: "tok", Method: http.MethodPost, Body: fullBody},
			expected: Command{"bws", "secret", "create", "-t", "tok", "x", "y", "p1", "--note", "n"},
		},
		{
			name:     "project create ignores projectId and note",
			kind:     KindProject,
			op:       OpCreate,
			in:       Input{Token: "tok", Method: http.MethodPost, Body: fullBody},
			expected: Command{"bws", "project", "create", "-t", "tok", "x", "y"},
		},
		{
			name:     "secret create without note and project",
			kind:     KindSecret,
			op:       OpCreate,
			in:       Input{Token: "tok", Method: http.MethodPost, Body: &models.CreateRequest{Name: "x", Value: "y"}},
			expected: Command{"bws", "secret", "create", "-t", "tok", "x", "y"},
		},
		{
			name:     "empty fields are omitted, not passed blank",
			kind:     KindSecret,
			op:       OpCreate,
			in:       Input{Token: "tok", Method: http.MethodPost, Body: &models.CreateRequest{Value: "y", Note: "n"}},
			expected: Command{"bws", "secret", "create", "-t", "tok", "y", "--note", "n"},
		},
		{
			name:     "server override",
			kind:     KindSecret,
			op:       OpList,
			in:       Input{Token: "tok", ServerURL: "https://vault.example.com", Method: http.MethodGet},
			expected: Command{"bws", "secret", "list", "-t", "tok", "--server-url", "https://vault.example.com"},
		},
		{
			name:     "GET ignores the body",
			kind:     KindSecret,
			op:       OpGet,
			in:       Input{Token: "tok", Method: http.MethodGet, Body: fullBody},
			expected: Command{"bws", "secret", "get", "-t", "tok"},
		},
		{
			name:     "HEAD ignores the body like GET",
			kind:     KindSecret,
			op:       OpList,
			in:       Input{Token: "tok", Method: http.MethodHead, Body: fullBody},
			expected: Command{"bws", "secret", "list", "-t", "tok"},
		},
		{
			name:      "missing token",
			kind:      KindProject,
			op:        OpList,
			in:        Input{Method: http.MethodGet},
			expectErr: ErrMissingAuthorization,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := Build("", tc.kind, tc.op, tc.in)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, cmd)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cmd)
		})
	}
}

func TestBuild_CustomBinary(t *testing.T) {
	cmd, err := Build("/opt/bws/bws", KindProject, OpList, Input{Token: "tok", Method: http.MethodGet})
	require.NoError(t, err)

	assert.Equal(t, "/opt/bws/bws", cmd.Program())
	assert.Equal(t, []string{"project", "list", "-t", "tok"}, cmd.Args())
}

// With must never share backing storage with the receiver
func TestCommand_WithDoesNotMutate(t *testing.T) {
	base := make(Command, 0, 16)
	base = append(base, "bws", "secret", "get")

	a := base.With("id-a")
	b := base.With("id-b")

	assert.Equal(t, Command{"bws", "secret", "get"}, base)
	assert.Equal(t, Command{"bws", "secret", "get", "id-a"}, a)
	assert.Equal(t, Command{"bws", "secret", "get", "id-b"}, b)
}

func TestMasked(t *testing.T) {
	cmd := Command{"bws", "secret", "list", "-t", "tok", "--server-url", "https://x"}

	assert.Equal(t, []string{"bws", "secret", "list", "-t", "***", "--server-url", "https://x"}, Masked(cmd))
	assert.Equal(t, "tok", cmd[4])
}

// create commands carry the secret itself as positional arguments
func TestMasked_CreateHidesValues(t *testing.T) {
	cmd := Command{"bws", "secret", "create", "-t", "tok", "--server-url", "https://x", "db-pass", "hunter2", "p1", "--note", "rotate monthly"}

	masked := Masked(cmd)

	assert.Equal(t, []string{"bws", "secret", "create", "-t", "***", "--server-url", "https://x", "***", "***", "***", "--note", "***"}, masked)
	for _, arg := range masked {
		assert.NotContains(t, []string{"tok", "db-pass", "hunter2", "rotate monthly"}, arg)
	}
}

// values that look like flags are still positional once the credential flags are consumed
func TestMasked_CreateValueLooksLikeFlag(t *testing.T) {
	cmd := Command{"bws", "project", "create", "-t", "tok", "--server-url", "https://x", "-t", "hunter2"}

	assert.Equal(t, []string{"bws", "project", "create", "-t", "***", "--server-url", "https://x", "***", "***"}, Masked(cmd))
}

// get keeps the id visible, it is needed to trace a request
func TestMasked_GetKeepsID(t *testing.T) {
	cmd := Command{"bws", "secret", "get", "-t", "tok", "abc"}

	assert.Equal(t, []string{"bws", "secret", "get", "-t", "***", "abc"}, Masked(cmd))
}
