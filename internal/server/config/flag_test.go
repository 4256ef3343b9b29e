package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "9090", "-d", "db", "-s", "secret", "-t", "5", "-l", "debug"},
			expected: &Config{
				Port:                  "9090",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: 5 * time.Minute,
				LogLevel:              "debug",
			},
		},
		{
			name: "no -t keeps sub-minute duration",
			args: []string{"cmd", "-a", "9090"},
			expected: &Config{
				Port:                  "9090",
				TokenValidityDuration: 90 * time.Second,
			},
		},
		{
			name:        "bad int",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{TokenValidityDuration: 90 * time.Second}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
