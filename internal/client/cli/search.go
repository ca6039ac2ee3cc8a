package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NitinMohan03/photo-album-cli/internal/common"
)

// Search runs one free-text query and renders the results. The busy flag is
// set for the duration of the call and restored on every path, so a stray
// re-entry never stacks a second request.
func (a *App) Search(ctx context.Context, query string) error {
	if a.searching {
		return nil
	}
	a.searching = true
	defer func() { a.searching = false }()

	results, err := a.album.Search(ctx, query)
	if err != nil {
		if errors.Is(err, common.ErrEmptyQuery) {
			printlnFn("Please enter a search query.")
			return err
		}
		a.log.Error(ctx, "search failed", "query", query, "error", err)
		printlnFn("Search failed. Please try again.")
		return err
	}

	if len(results) == 0 {
		printlnFn("No results found for: " + strings.TrimSpace(query))
		return nil
	}

	for i, r := range results {
		printlnFn(fmt.Sprintf("%3d. %s", i+1, r.URL))
		printlnFn("     labels: " + strings.Join(r.Labels, ", "))
	}
	return nil
}
