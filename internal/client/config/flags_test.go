package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "no flags keeps values",
			args:   nil,
			mutate: func(*Config) {},
		},
		{
			name: "short and long forms",
			args: []string{"-a", "http://10.0.0.1:8000", "--timeout", "30s", "-o", "/tmp/out", "-l", "en", "--max-upload", "0"},
			mutate: func(c *Config) {
				c.ServerURL = "http://10.0.0.1:8000"
				c.RequestTimeout = 30 * time.Second
				c.DownloadDir = "/tmp/out"
				c.Locale = "en"
				c.MaxUploadSize = 0
			},
		},
		{
			name: "logging and s3",
			args: []string{"--log-backend=zap", "--log-level", "debug", "--s3-bucket", "b", "--s3-endpoint", "http://minio:9000"},
			mutate: func(c *Config) {
				c.LogBackend = "zap"
				c.LogLevel = "debug"
				c.S3.Bucket = "b"
				c.S3.Endpoint = "http://minio:9000"
			},
		},
		{
			name:    "bad duration",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()
			// pretend the JSON layer already changed something
			cfg.ServerURL = "http://from-json:8000"

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			BindFlags(fs, cfg)
			err := fs.Parse(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := &Config{}
			want.LoadDefaults()
			want.ServerURL = "http://from-json:8000"
			tt.mutate(want)

			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
