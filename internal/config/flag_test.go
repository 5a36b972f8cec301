package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "db.sqlite", "-s", "key",
				"-t", "15", "-l", "debug", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			},
			expected: &Config{
				ListenAddr:     "127.0.0.1:9090",
				DatabaseDSN:    "db.sqlite",
				SessionKey:     "key",
				SessionTTL:     15 * time.Minute,
				LogLevel:       "debug",
				S3Bucket:       "bucket",
				S3Region:       "us-west-1",
				S3BaseEndpoint: "http://endpoint",
			},
		},
		{
			name:     "subcommand flags are not ours",
			args:     []string{"write", "-feeling", "Love", "-d", "x.db"},
			expected: &Config{DatabaseDSN: "x.db"},
		},
		{
			name:     "view secret is never taken from the command line",
			args:     []string{"-p", "secret", "-l", "info"},
			expected: &Config{LogLevel: "info"},
		},
		{
			name:    "non-numeric ttl",
			args:    []string{"-t", "ten"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
