// Package common defines shared sentinel errors used across the photo album
// client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Local validation errors, surfaced before any network call is made.
	ErrEmptyQuery      = errors.New("empty query")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNothingToUpload = errors.New("nothing to upload")

	// Transport-level errors.
	ErrUploadFailed = errors.New("upload failed")
	ErrSearchFailed = errors.New("search failed")
)
