// Package services contains the client-side application services: pending
// list management, the sequential upload orchestrator, and search.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NitinMohan03/photo-album-cli/internal/client/api"
	"github.com/NitinMohan03/photo-album-cli/internal/client/models"
	"github.com/NitinMohan03/photo-album-cli/internal/common"
	"github.com/NitinMohan03/photo-album-cli/internal/logging"
)

// timeNow is a test seam for object key generation.
var timeNow = time.Now

// UploadProgressFunc reports byte progress for the file at the given batch
// position.
type UploadProgressFunc func(index int, sent, total int64)

type AlbumService interface {
	// Select filters files through the content-type allow-list and appends
	// survivors to the pending list, returning the number admitted.
	Select(files ...models.PendingFile) int

	// Pending returns the current pending entries in order.
	Pending() []models.PendingFile

	PendingCount() int

	// Remove deletes the pending entry at the zero-based index.
	Remove(index int) error

	ClearPending()

	// UploadAll uploads every pending file strictly sequentially, sharing one
	// optional label string. A failed file is recorded and the batch moves on.
	// The pending list is cleared once the whole batch has been processed.
	UploadAll(ctx context.Context, label string, progress UploadProgressFunc) (*models.BatchReport, error)

	// Search validates the query locally and runs one search request.
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

type albumService struct {
	uploader api.Uploader
	searcher api.Searcher
	pending  *models.PendingList
	log      logging.Logger
}

func NewAlbumService(uploader api.Uploader, searcher api.Searcher, log logging.Logger) AlbumService {
	return &albumService{
		uploader: uploader,
		searcher: searcher,
		pending:  &models.PendingList{},
		log:      log,
	}
}

func (s *albumService) Select(files ...models.PendingFile) int {
	return s.pending.Add(files...)
}

func (s *albumService) Pending() []models.PendingFile {
	return s.pending.Items()
}

func (s *albumService) PendingCount() int {
	return s.pending.Len()
}

func (s *albumService) Remove(index int) error {
	return s.pending.RemoveAt(index)
}

func (s *albumService) ClearPending() {
	s.pending.Clear()
}

func (s *albumService) UploadAll(ctx context.Context, label string, progress UploadProgressFunc) (*models.BatchReport, error) {
	files := s.pending.Items()
	if len(files) == 0 {
		return nil, common.ErrNothingToUpload
	}

	report := &models.BatchReport{ID: uuid.NewString()}
	s.log.Info(ctx, "starting upload batch", "batch", report.ID, "files", len(files), "label", label)

	for i, f := range files {
		task := models.UploadTask{
			Key:         models.NewObjectKey(timeNow(), f.Name),
			Label:       label,
			ContentType: f.ContentType,
			Data:        f.Data,
		}

		var fn func(sent, total int64)
		if progress != nil {
			idx := i
			fn = func(sent, total int64) { progress(idx, sent, total) }
		}

		// Each upload is awaited to completion before the next one starts.
		err := s.uploader.UploadPhoto(ctx, task, fn)
		if err != nil {
			s.log.Error(ctx, "upload failed", "batch", report.ID, "key", task.Key, "error", err)
		} else {
			s.log.Info(ctx, "uploaded", "batch", report.ID, "key", task.Key, "size", f.Size)
		}
		report.Outcomes = append(report.Outcomes, models.UploadOutcome{Key: task.Key, Name: f.Name, Err: err})
	}

	s.pending.Clear()
	s.log.Info(ctx, "upload batch finished", "batch", report.ID,
		"succeeded", report.Succeeded(), "failed", report.Failed())

	return report, nil
}

func (s *albumService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, common.ErrEmptyQuery
	}

	results, err := s.searcher.SearchPhotos(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}
	return results, nil
}
