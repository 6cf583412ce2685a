package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "hellocpu.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "0.0.0.0:5000", c.Addr())
	assert.Equal(t, 10*time.Second, c.Burn())
	assert.Equal(t, "cpu", c.Variant)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	fn := writeFile(t, "port: 8081\nvariant: hello\nshutdown_grace: 3s\n")
	c := Default()
	require.NoError(t, c.LoadFile(fn))
	assert.Equal(t, 8081, c.Port)
	assert.Equal(t, "hello", c.Variant)
	assert.Equal(t, 3*time.Second, c.ShutdownGrace)
	assert.Equal(t, DefaultHost, c.Host, "absent keys keep their value")
	assert.Equal(t, DefaultBurnSeconds, c.BurnSeconds)
}

func TestLoadFile_noDocument(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "blank lines", content: "\n\n"},
		{name: "comment only", content: "# nothing set\n"},
		{name: "explicit null", content: "~\n"},
		{name: "document marker", content: "---\n# port: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.Port = 8081
			require.NoError(t, c.LoadFile(writeFile(t, tt.content)))
			want := Default()
			want.Port = 8081
			assert.Equal(t, want, c, "values set before the file are kept")
			assert.NoError(t, c.Validate())
		})
	}
}

func TestLoadFile_errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: "error opening config file",
		},
		{
			name:    "unknown key",
			path:    func(t *testing.T) string { return writeFile(t, "listen: 1.2.3.4\n") },
			wantErr: "error loading config file",
		},
		{
			name:    "wrong type",
			path:    func(t *testing.T) string { return writeFile(t, "port: lots\n") },
			wantErr: "error loading config file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			err := c.LoadFile(tt.path(t))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Parallel()
	c := Default()
	err := c.FromEnv(envMap(map[string]string{
		EnvHost:        "127.0.0.1",
		EnvPort:        "8081",
		EnvVariant:     "hello",
		EnvBurnSeconds: "2",
		EnvLogLevel:    "",
		EnvLogFormat:   "json",
	}))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", c.Addr())
	assert.Equal(t, "hello", c.Variant)
	assert.Equal(t, 2*time.Second, c.Burn())
	assert.Equal(t, DefaultLogLevel, c.LogLevel, "empty values are ignored")
	assert.Equal(t, "json", c.LogFormat)
}

func TestFromEnv_badNumber(t *testing.T) {
	t.Parallel()
	c := Default()
	err := c.FromEnv(envMap(map[string]string{EnvPort: "http"}))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "PORT")
	assert.Equal(t, DefaultPort, c.Port)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "hostname",
			mutate:  func(c *Config) { c.Host = "localhost" },
			wantErr: assert.NoError,
		},
		{
			name:   "empty host",
			mutate: func(c *Config) { c.Host = "" },
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "Host", msgAndArgs...)
			},
		},
		{
			name:   "port zero",
			mutate: func(c *Config) { c.Port = 0 },
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "Port", msgAndArgs...)
			},
		},
		{
			name:   "port too big",
			mutate: func(c *Config) { c.Port = 70000 },
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorIs(t, err, ErrInvalid, msgAndArgs...)
			},
		},
		{
			name:   "variant",
			mutate: func(c *Config) { c.Variant = "both" },
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "Variant", msgAndArgs...)
			},
		},
		{
			name:   "variant is case sensitive",
			mutate: func(c *Config) { c.Variant = "CPU" },
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorIs(t, err, ErrInvalid, msgAndArgs...)
			},
		},
		{
			name:   "burn",
			mutate: func(c *Config) { c.BurnSeconds = 0 },
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "BurnSeconds", msgAndArgs...)
			},
		},
		{
			name:   "log level",
			mutate: func(c *Config) { c.LogLevel = "loud" },
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "LogLevel", msgAndArgs...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			tt.wantErr(t, c.Validate())
		})
	}
}
