package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
)

// ErrInvalidRecord marks a record endpoint response whose 200 body decoded
// to a JSON string instead of an object; the registry reports per-id errors
// that way instead of using a 404.
var ErrInvalidRecord = errors.New("invalid record payload")

// RecordSource is the registry API surface the importer consumes.
type RecordSource interface {
	ListIDs(ctx context.Context) ([]string, error)
	Record(ctx context.Context, id string) (map[string]interface{}, error)
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *logger.Logger
}

func NewClient(cfg Config, log *logger.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 60 * time.Second},
		log:  log.With("component", "RegistryClient"),
	}
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("registry returned %d for %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}

// ListIDs fetches the full export id list. Any failure here is fatal to the
// whole run.
func (c *Client) ListIDs(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.cfg.ListURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var ids []string
	if err := json.NewDecoder(body).Decode(&ids); err != nil {
		return nil, fmt.Errorf("failed to decode registry id list: %w", err)
	}
	return ids, nil
}

// Record fetches one record. A 200 body holding a JSON string instead of an
// object yields ErrInvalidRecord.
func (c *Client) Record(ctx context.Context, id string) (map[string]interface{}, error) {
	url := strings.TrimRight(c.cfg.RecordURL, "/") + "/" + id
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var payload interface{}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", id, err)
	}

	switch t := payload.(type) {
	case map[string]interface{}:
		return t, nil
	case string:
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, t)
	default:
		return nil, fmt.Errorf("%w: unexpected payload type %T", ErrInvalidRecord, payload)
	}
}

// Download streams an attachment referenced by a record.
func (c *Client) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	return c.get(ctx, url)
}
