package favicon

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/logging"
)

// Fetcher downloads raw icon bytes from candidate URLs.
type Fetcher struct {
	client *http.Client
	opts   Options
}

// NewFetcher creates a new Fetcher. A nil client gets the default timeout.
func NewFetcher(client *http.Client, opts Options) *Fetcher {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	return &Fetcher{
		client: client,
		opts:   opts.withDefaults(),
	}
}

// Download retrieves iconURL. Anything other than a 2xx response with a
// non-empty body under the size cap is an error.
func (f *Fetcher) Download(ctx context.Context, iconURL string) ([]byte, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create favicon request: %w", err)
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	log.Debug().Str("url", iconURL).Msg("fetching favicon")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favicon: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		log.Debug().Int("status", resp.StatusCode).Str("url", iconURL).Msg("favicon request returned non-success status")
		return nil, &StatusError{URL: iconURL, StatusCode: resp.StatusCode}
	}

	data, truncated, err := readCapped(resp.Body, f.opts.MaxIconBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read favicon response: %w", err)
	}
	if truncated {
		return nil, fmt.Errorf("%s: %w (%d bytes)", iconURL, ErrTooLarge, f.opts.MaxIconBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", iconURL, ErrEmptyBody)
	}

	log.Debug().Str("url", iconURL).Int("bytes", len(data)).Msg("favicon fetched")
	return data, nil
}

var _ port.IconDownloader = (*Fetcher)(nil)
