// Package models holds the client-side data model: pending files awaiting
// upload, ephemeral upload tasks, and search results.
package models

import (
	"github.com/NitinMohan03/photo-album-cli/internal/common"
)

// Content types admitted at selection time. Anything else is dropped
// silently. image/jpg is not a registered type but some user agents and
// servers still emit it for JPEG files.
var allowedContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
}

// ContentTypeAllowed reports whether ct is in the selection allow-list.
func ContentTypeAllowed(ct string) bool {
	_, ok := allowedContentTypes[ct]
	return ok
}

// PendingFile is a user-selected image awaiting upload. It holds the raw
// bytes for the whole of its lifetime; photos in this system are small.
type PendingFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// PendingList is the ordered set of files awaiting upload. It is owned by
// the application controller and mutated only from the REPL goroutine, so it
// needs no locking.
type PendingList struct {
	files []PendingFile
}

// Add appends every file whose content type passes the allow-list, in the
// given order, and returns the number admitted. Duplicates are kept.
func (l *PendingList) Add(files ...PendingFile) int {
	added := 0
	for _, f := range files {
		if !ContentTypeAllowed(f.ContentType) {
			continue
		}
		l.files = append(l.files, f)
		added++
	}
	return added
}

// RemoveAt deletes the entry at the zero-based index i, preserving the
// relative order of the rest.
func (l *PendingList) RemoveAt(i int) error {
	if i < 0 || i >= len(l.files) {
		return common.ErrIndexOutOfRange
	}
	l.files = append(l.files[:i], l.files[i+1:]...)
	return nil
}

// Clear empties the list.
func (l *PendingList) Clear() {
	l.files = nil
}

// Items returns a copy of the pending entries in order.
func (l *PendingList) Items() []PendingFile {
	out := make([]PendingFile, len(l.files))
	copy(out, l.files)
	return out
}

func (l *PendingList) Len() int {
	return len(l.files)
}
