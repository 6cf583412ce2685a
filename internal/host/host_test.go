package host

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostname(t *testing.T) {
	name, err := Hostname()
	require.NoError(t, err)
	assert.NotEmpty(t, name)

	want, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, want, name)
}

func TestHostname_stable(t *testing.T) {
	a, err := Hostname()
	require.NoError(t, err)
	b, err := Hostname()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func stubNodename(t *testing.T, fn func() (string, error)) {
	t.Helper()
	prev := nodename
	nodename = fn
	t.Cleanup(func() { nodename = prev })
}

func TestHostname_failure(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() (string, error)
		wantMsg string
	}{
		{
			name:    "uname error",
			fn:      func() (string, error) { return "", errors.New("uname: operation not permitted") },
			wantMsg: "operation not permitted",
		},
		{
			name:    "empty node name",
			fn:      func() (string, error) { return "", nil },
			wantMsg: "empty node name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubNodename(t, tt.fn)
			name, err := Hostname()
			assert.ErrorIs(t, err, ErrHostnameLookup)
			assert.ErrorContains(t, err, tt.wantMsg)
			assert.Empty(t, name)
		})
	}
}
