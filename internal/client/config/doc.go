// Package config loads runtime configuration for the photo album CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the photo API
//	-k string   API key sent as the x-api-key header
//	-m string   upload mode: api (PUT through the photo API) or s3 (direct)
//	-t int      request timeout (seconds)
//	-b string   bucket name for direct uploads
//	-r string   bucket region for direct uploads
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "30s" or integer nanoseconds:
//
//	{
//	  "api_endpoint": "https://abc123.execute-api.us-east-1.amazonaws.com/prod",
//	  "api_key": "…",
//	  "upload_mode": "api",
//	  "request_timeout": "30s"
//	}
//
// The loaded Config is validated (endpoint must be a URL, mode must be api or
// s3, s3 mode needs a bucket and region) before it is handed to the app.
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
