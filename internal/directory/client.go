// Package directory is the HTTP client for the brewery directory service.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"brewfinder/internal/models"
)

// DefaultBaseURL is the public Open Brewery DB endpoint.
const DefaultBaseURL = "https://api.openbrewerydb.org/v1/breweries"

// ErrUnexpectedStatus is returned when the directory answers outside 2xx.
var ErrUnexpectedStatus = errors.New("unexpected directory status")

// Client is the HTTP client for the brewery directory.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// New creates a directory client. A zero timeout leaves the transport default.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		log:        log,
	}
}

// Search fetches breweries matching the query. An empty directory answer
// is returned as a zero-length slice with a nil error. There is exactly
// one attempt per call. Failures are returned, not logged; the caller logs
// them with its own request context.
func (c *Client) Search(ctx context.Context, q models.Query) ([]models.Brewery, error) {
	reqURL := c.searchURL(q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "brewfinder/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var breweries []models.Brewery
	if err := json.NewDecoder(resp.Body).Decode(&breweries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if breweries == nil {
		breweries = []models.Brewery{}
	}

	c.log.Debug("directory answered", "url", reqURL, "results", len(breweries))
	return breweries, nil
}

// Ping checks that the directory answers at all.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("per_page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "brewfinder/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}

func (c *Client) searchURL(q models.Query) string {
	params := url.Values{}
	params.Set(q.Param(), q.Raw)
	if q.Type != "" {
		params.Set(models.ParamType, q.Type)
	}
	return fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
}
