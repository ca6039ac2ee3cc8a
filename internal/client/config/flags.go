package config

import (
	"flag"
	"os"
	"time"

	"github.com/NitinMohan03/photo-album-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-m", "-t", "-b", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpoint, "a", cfg.APIEndpoint, "base URL of the photo API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key sent as the x-api-key header")
	fs.StringVar(&cfg.UploadMode, "m", cfg.UploadMode, "upload mode: api or s3")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "bucket name for direct uploads")
	fs.StringVar(&cfg.S3Region, "r", cfg.S3Region, "bucket region for direct uploads")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
