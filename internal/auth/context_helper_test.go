package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Verify request id round-trip
func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	id, ok := GetRequestID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)
}

// Table-driven version
func TestContextHelpers_TableDriven(t *testing.T) {
	test := []struct {
		name     string
		withFunc func(context.Context) context.Context
		getFunc  func(context.Context) (string, bool)
		Value    string
		expectOk bool
	}{
		{"requestID - present", func(ctx context.Context) context.Context { return WithRequestID(ctx, "abc") }, GetRequestID, "abc", true},
		{"requestID - missing", func(ctx context.Context) context.Context { return ctx }, GetRequestID, "", false},
		{"resourceID - present", func(ctx context.Context) context.Context { return WithResourceID(ctx, "5f1c") }, GetResourceID, "5f1c", true},
		{"resourceID - missing", func(ctx context.Context) context.Context { return ctx }, GetResourceID, "", false},
	}

	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctx = tt.withFunc(ctx)
			val, ok := tt.getFunc(ctx)
			assert.Equal(t, tt.Value, val)
			assert.Equal(t, tt.expectOk, ok)
		})
	}
}
