// Package filex loads local files into pending-file records for selection.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NitinMohan03/photo-album-cli/internal/client/models"
)

var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// ContentTypeForPath maps the file extension to a MIME type, case
// insensitively. Unknown extensions yield an empty string; the selection
// allow-list then drops the file.
func ContentTypeForPath(path string) string {
	return contentTypes[strings.ToLower(filepath.Ext(path))]
}

// LoadFile reads the file at path into a PendingFile. The display name is
// the base name; the content type is derived from the extension.
func LoadFile(path string) (models.PendingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.PendingFile{}, fmt.Errorf("read %s: %w", path, err)
	}

	return models.PendingFile{
		Name:        filepath.Base(path),
		Size:        int64(len(data)),
		ContentType: ContentTypeForPath(path),
		Data:        data,
	}, nil
}
