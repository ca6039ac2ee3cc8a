package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NitinMohan03/photo-album-cli/internal/client/models"
	"github.com/NitinMohan03/photo-album-cli/internal/common"
	"github.com/NitinMohan03/photo-album-cli/internal/logging"
	"github.com/NitinMohan03/photo-album-cli/internal/netx"
)

const (
	headerAPIKey       = "x-api-key"
	headerCustomLabels = "x-amz-meta-customLabels"
)

// searchResponse mirrors the search endpoint's JSON body.
type searchResponse struct {
	Results []models.SearchResult `json:"results"`
}

// Client talks to the photo API over plain HTTP: PUT for uploads, GET for
// search. It satisfies both Uploader and Searcher.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
	log     logging.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetAPIKey replaces the credential used on subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// UploadPhoto PUTs the raw bytes to {base}/photos/{key} with the content type
// and optional label metadata as headers. Any 2xx status is a success.
func (c *Client) UploadPhoto(ctx context.Context, task models.UploadTask, progress netx.ProgressFunc) error {
	body := netx.NewProgressReader(bytes.NewReader(task.Data), int64(len(task.Data)), progress)

	u := c.baseURL + "/photos/" + url.PathEscape(task.Key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, body)
	if err != nil {
		return err
	}
	req.ContentLength = int64(len(task.Data))
	req.Header.Set("Content-Type", task.ContentType)
	if task.Label != "" {
		req.Header.Set(headerCustomLabels, task.Label)
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	c.log.Debug(ctx, "uploading photo", "key", task.Key, "size", len(task.Data))

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s; body: %s", common.ErrUploadFailed, resp.Status, string(b))
	}
	return nil
}

// SearchPhotos GETs {base}/search?q=<encoded query> and decodes the results.
// The caller is responsible for rejecting empty queries before calling.
func (c *Client) SearchPhotos(ctx context.Context, query string) ([]models.SearchResult, error) {
	u := c.baseURL + "/search?q=" + encodeQuery(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	c.log.Debug(ctx, "searching photos", "query", query)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", common.ErrSearchFailed, resp.Status)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", common.ErrSearchFailed, err)
	}
	if sr.Results == nil {
		return []models.SearchResult{}, nil
	}
	return sr.Results, nil
}

// encodeQuery percent-encodes q for the query string, using %20 rather than
// '+' for spaces to match the gateway's decoder.
func encodeQuery(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}
