package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Client fetches feed documents over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient builds a Client with a 90 second timeout, enough for large
// spreadsheet exports on slow links.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// Fetch downloads the document at url. There is no automatic retry; callers
// decide whether a reload is worth it.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	log.Info().Str("url", url).Msg("Fetching feed")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("%w: access denied (%d) for %s", ErrFetchFailure, resp.StatusCode, url)
		case http.StatusNotFound:
			return nil, fmt.Errorf("%w: %s not found", ErrFetchFailure, url)
		default:
			return nil, fmt.Errorf("%w: %s returned status %d", ErrFetchFailure, url, resp.StatusCode)
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrFetchFailure, err)
	}

	log.Debug().Str("url", url).Int("bytes", len(data)).Msg("Feed downloaded")
	return data, nil
}
