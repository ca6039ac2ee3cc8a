package config

import "time"

// Upload backend selection.
const (
	UploadModeAPI = "api"
	UploadModeS3  = "s3"
)

// Config holds runtime settings for the photo album CLI.
//
// APIEndpoint and APIKey configure the gateway-backed deployment. The S3*
// fields are used only in s3 mode, where the client writes to the bucket
// directly instead of going through the gateway PUT proxy.
type Config struct {
	APIEndpoint    string `validate:"required,url"`
	APIKey         string
	UploadMode     string `validate:"oneof=api s3"`
	RequestTimeout time.Duration

	S3Bucket       string `validate:"required_if=UploadMode s3"`
	S3Region       string `validate:"required_if=UploadMode s3"`
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpoint = "http://127.0.0.1:8080"
	c.UploadMode = UploadModeAPI
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. The result is validated before use.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
