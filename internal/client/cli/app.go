package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NitinMohan03/photo-album-cli/internal/client/api"
	"github.com/NitinMohan03/photo-album-cli/internal/client/config"
	"github.com/NitinMohan03/photo-album-cli/internal/client/services"
	"github.com/NitinMohan03/photo-album-cli/internal/client/storage"
	"github.com/NitinMohan03/photo-album-cli/internal/logging"
)

// App is the top-level application controller. It owns the pending-list
// state (through the album service) and all rendering; nothing in the client
// is mutated outside the REPL goroutine.
type App struct {
	config *config.Config
	album  services.AlbumService
	api    *api.Client
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	searching bool
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	apiClient := api.NewClient(cfg.APIEndpoint, cfg.APIKey, cfg.RequestTimeout, log)

	var uploader api.Uploader = apiClient
	if cfg.UploadMode == config.UploadModeS3 {
		s3Uploader, err := storage.New(context.Background(), cfg, log)
		if err != nil {
			return nil, err
		}
		uploader = s3Uploader
	}

	album := services.NewAlbumService(uploader, apiClient, log)

	return &App{
		config: cfg,
		album:  album,
		api:    apiClient,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Smart Photo Album CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	n := a.album.PendingCount()
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("(%d pending)", n)
}
