package models

import (
	"fmt"
	"time"
)

// UploadTask is the per-file payload handed to an uploader. It exists only
// for the duration of a single upload call.
type UploadTask struct {
	Key         string
	Label       string
	ContentType string
	Data        []byte
}

// NewObjectKey builds the object key for a file: a millisecond timestamp
// prefix joined to the original name. Two files keyed within the same
// millisecond collide; the backend contract leaves that unresolved.
func NewObjectKey(now time.Time, name string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), name)
}
