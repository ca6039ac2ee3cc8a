package cli

import (
	"context"
	"fmt"
)

// List renders the pending list, one line per entry, numbered from 1.
func (a *App) List(ctx context.Context) error {
	files := a.album.Pending()
	if len(files) == 0 {
		printlnFn("No files selected.")
		return nil
	}

	for i, f := range files {
		printlnFn(fmt.Sprintf("%3d. %s (%s, %s)", i+1, f.Name, f.ContentType, formatSize(f.Size)))
	}
	return nil
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
