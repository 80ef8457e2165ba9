package osmhttp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

const nominatimURL = "https://nominatim.openstreetmap.org/search.php"

// nominatimAreaIDOffset is Nominatim's relation-id-to-area-id quirk
// (original_source/osmrx/apis_handler/models.py's NominatimItem.osm_id
// property): an area's Overpass id is its raw Nominatim osm_id plus this
// constant.
const nominatimAreaIDOffset = 3_600_000_000

// nominatimUserAgent is required: Nominatim rejects unidentified clients
// (spec.md §6).
const nominatimUserAgent = "Mozilla/5.0"

// Candidate is one Nominatim search result (original_source/osmrx/
// apis_handler/models.py's NominatimItem, trimmed to the fields this
// module actually consumes).
type Candidate struct {
	PlaceID     int64   `json:"place_id"`
	OSMID       int64   `json:"osm_id"`
	Lat         float64 `json:"lat,string"`
	Lon         float64 `json:"lon,string"`
	DisplayName string  `json:"display_name"`
}

// AreaOSMID is the Overpass area id this candidate resolves to.
func (c Candidate) AreaOSMID() int64 { return c.OSMID + nominatimAreaIDOffset }

// Nominatim is the place-name lookup collaborator (spec.md §6): same HTTP
// contract as Overpass, identical retry policy, plus the mandatory
// User-Agent header.
type Nominatim struct {
	client *client
}

// NewNominatim builds a Nominatim collaborator. httpClient and logger are
// both optional; nil falls back to http.DefaultClient / slog.Default().
func NewNominatim(httpClient *http.Client, logger *slog.Logger) *Nominatim {
	return &Nominatim{client: newClient(httpClient, logger)}
}

// Search looks up name and returns its candidates, ordered as Nominatim
// returns them (the core anchors on candidate [0], per spec.md §6).
func (n *Nominatim) Search(ctx context.Context, name string, limit int) ([]Candidate, error) {
	params := url.Values{
		"q":               {name},
		"format":          {"jsonv2"},
		"polygon":         {"1"},
		"polygon_geojson": {"1"},
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	headers := http.Header{"User-Agent": {nominatimUserAgent}}

	var candidates []Candidate
	if err := n.client.getJSON(ctx, nominatimURL, params, headers, &candidates); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errNoCandidates(name)
	}

	return candidates, nil
}

