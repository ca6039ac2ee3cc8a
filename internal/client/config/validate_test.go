package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{
			name:    "endpoint required",
			mutate:  func(c *Config) { c.APIEndpoint = "" },
			wantErr: "APIEndpoint",
		},
		{
			name:    "endpoint must be a URL",
			mutate:  func(c *Config) { c.APIEndpoint = "not a url" },
			wantErr: "must be a valid URL",
		},
		{
			name:    "mode must be api or s3",
			mutate:  func(c *Config) { c.UploadMode = "carrier-pigeon" },
			wantErr: "must be one of",
		},
		{
			name:    "s3 mode needs bucket",
			mutate:  func(c *Config) { c.UploadMode = UploadModeS3; c.S3Region = "us-east-1" },
			wantErr: "S3Bucket",
		},
		{
			name: "s3 mode fully specified",
			mutate: func(c *Config) {
				c.UploadMode = UploadModeS3
				c.S3Bucket = "photos"
				c.S3Region = "us-east-1"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.RequestTimeout = 5 * time.Second
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
