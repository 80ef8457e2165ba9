package osmhttp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
)

const overpassURL = "https://overpass-api.de/api/interpreter"

// Overpass is the Overpass API collaborator (spec.md §6): it accepts an
// already-templated query string and returns the raw decoded
// {elements: [...]} JSON payload for osmrecord.Decode to translate.
type Overpass struct {
	client *client
}

// NewOverpass builds an Overpass collaborator. httpClient and logger are
// both optional; nil falls back to http.DefaultClient / slog.Default().
func NewOverpass(httpClient *http.Client, logger *slog.Logger) *Overpass {
	return &Overpass{client: newClient(httpClient, logger)}
}

// Query runs query against the Overpass interpreter and returns the raw
// JSON response body.
func (o *Overpass) Query(ctx context.Context, query string) ([]byte, error) {
	params := url.Values{"data": {query}}

	return o.client.get(ctx, overpassURL, params, nil)
}
