package cli

import (
	"context"

	"github.com/NitinMohan03/photo-album-cli/internal/client/models"
	"github.com/NitinMohan03/photo-album-cli/internal/filex"
)

// Add loads the given paths and selects them into the pending list. Files
// outside the image allow-list are dropped without comment, matching the
// selection contract; unreadable paths are reported and skipped.
func (a *App) Add(ctx context.Context, paths []string) error {
	files := make([]models.PendingFile, 0, len(paths))
	for _, p := range paths {
		f, err := filex.LoadFile(p)
		if err != nil {
			printlnFn("Cannot read " + p + ": " + err.Error())
			continue
		}
		files = append(files, f)
	}

	added := a.album.Select(files...)
	if dropped := len(files) - added; dropped > 0 {
		a.log.Debug(ctx, "dropped files outside allow-list", "count", dropped)
	}

	return a.List(ctx)
}
