package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/NitinMohan03/photo-album-cli/internal/common"
)

// Remove deletes the pending entry the user numbered from 1 in the list view.
func (a *App) Remove(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: remove <n>")
		return err
	}

	if err := a.album.Remove(n - 1); err != nil {
		if errors.Is(err, common.ErrIndexOutOfRange) {
			printlnFn(fmt.Sprintf("No pending entry %d.", n))
		}
		return err
	}

	return a.List(ctx)
}

// Clear empties the pending list.
func (a *App) Clear(ctx context.Context) error {
	a.album.ClearPending()
	printlnFn("Pending list cleared.")
	return nil
}
