// Package api implements the REST client for the photo-search backend and
// defines the interfaces the rest of the client programs against.
package api

import (
	"context"

	"github.com/NitinMohan03/photo-album-cli/internal/client/models"
	"github.com/NitinMohan03/photo-album-cli/internal/netx"
)

// Uploader stores one photo under its object key. Implementations report
// transfer progress through the optional callback.
type Uploader interface {
	UploadPhoto(ctx context.Context, task models.UploadTask, progress netx.ProgressFunc) error
}

// Searcher runs one free-text search against the photo index.
type Searcher interface {
	SearchPhotos(ctx context.Context, query string) ([]models.SearchResult, error)
}
