package osmhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// retryTries/retryInitialDelay/retryMultiplier reproduce
// original_source/osmrx/apis_handler/core.py's @retry(tries=4, delay=3,
// backoff=2) decorator: 1 initial attempt plus 3 retries, starting at 3s
// and doubling each time.
const (
	retryTries        = 4
	retryInitialDelay = 3 * time.Second
	retryMultiplier   = 2
)

// client is the shared GET-with-retry collaborator both Overpass and
// Nominatim embed (original_source/osmrx/apis_handler/core.py's ApiCore).
type client struct {
	httpClient *http.Client
	logger     *slog.Logger

	tries           int
	initialInterval time.Duration
	multiplier      float64
}

func newClient(httpClient *http.Client, logger *slog.Logger) *client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &client{
		httpClient:      httpClient,
		logger:          logger,
		tries:           retryTries,
		initialInterval: retryInitialDelay,
		multiplier:      retryMultiplier,
	}
}

// getJSON issues a retried GET to rawURL with query params and headers,
// decoding the JSON body into out. Retries only on a non-200 response or a
// transport error, per spec.md §6.
func (c *client) getJSON(ctx context.Context, rawURL string, params url.Values, headers http.Header, out any) error {
	body, err := c.get(ctx, rawURL, params, headers)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("osmhttp: decode response body: %w", err)
	}

	return nil
}

// get issues a retried GET to rawURL with query params and headers and
// returns the raw response body. Retries only on a non-200 response or a
// transport error, per spec.md §6.
func (c *client) get(ctx context.Context, rawURL string, params url.Values, headers http.Header) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("osmhttp: parse url: %w", err)
	}
	u.RawQuery = params.Encode()

	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		for k, vs := range headers {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err // transport error: retryable
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errBadStatus(u.String(), resp.StatusCode) // retryable
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		return nil
	}

	attempt := 0
	notify := func(err error, wait time.Duration) {
		attempt++
		c.logger.Warn("retrying upstream request", "url", u.Host, "attempt", attempt, "wait", wait, "err", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval
	bo.Multiplier = c.multiplier
	bo.RandomizationFactor = 0
	bounded := backoff.WithContext(backoff.WithMaxRetries(bo, c.tries-1), ctx)

	if err := backoff.RetryNotify(operation, bounded, notify); err != nil {
		return nil, err
	}

	return body, nil
}
