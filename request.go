package osmrx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/errs"
	"github.com/amauryval/osmrx-go/netgraph"
	"github.com/amauryval/osmrx-go/osmhttp"
	"github.com/amauryval/osmrx-go/osmrecord"
	"github.com/amauryval/osmrx-go/topology"
)

// RequestOption configures a Request.
type RequestOption func(*Request)

// WithHTTPClient overrides the *http.Client used for Overpass/Nominatim
// calls. Nil (the default) falls back to http.DefaultClient.
func WithHTTPClient(c *http.Client) RequestOption {
	return func(r *Request) { r.httpClient = c }
}

// WithLogger sets the caller-supplied logging sink handed to the Overpass
// collaborator in Fetch (spec.md §9: "replace mutable global-ish logger
// fields with a thin sink passed by reference"). Clean and BuildGraph do
// not log. Nil (the default) falls back to slog.Default().
func WithLogger(l *slog.Logger) RequestOption {
	return func(r *Request) { r.logger = l }
}

// WithSubInterpolation enables the topology cleaner's output_line_improved
// mode (spec.md §4.5) on every CleanedArcs produced by this Request.
func WithSubInterpolation() RequestOption {
	return func(r *Request) { r.subInterpolate = true }
}

// Request is the top-level pipeline builder: Request{mode, geo filter} →
// RawData → CleanedArcs → Graph, each stage a pure function returning the
// next stage's input (spec.md §9's re-architecture note).
type Request struct {
	mode      osmhttp.Mode
	geoFilter osmhttp.GeoFilter

	httpClient *http.Client
	logger     *slog.Logger

	subInterpolate bool
}

// NewRequest builds a Request for mode, scoped to geoFilter (an
// osmhttp.BBox or osmhttp.Area).
func NewRequest(mode osmhttp.Mode, geoFilter osmhttp.GeoFilter, opts ...RequestOption) *Request {
	r := &Request{mode: mode, geoFilter: geoFilter}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RawData is the decoded Overpass payload, split into lines (ways) and
// points (nodes), before topology cleaning.
type RawData struct {
	Lines  []arc.RawLine
	Points []arc.RawPoint
}

// Fetch queries Overpass for this Request's mode and geo filter and
// decodes the response into RawData (spec.md §6).
func (r *Request) Fetch(ctx context.Context) (*RawData, error) {
	query, err := osmhttp.BuildQuery(r.mode, r.geoFilter)
	if err != nil {
		return nil, err
	}

	overpass := osmhttp.NewOverpass(r.httpClient, r.logger)
	body, err := overpass.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	lines, points, err := osmrecord.Decode(body)
	if err != nil {
		return nil, err
	}

	return &RawData{Lines: lines, Points: points}, nil
}

// Clean runs the topology cleaner (C4→C5→C6) over data, returning
// CleanedArcs. poi mode has no way geometry to clean, so Clean refuses poi
// mode outright with an ErrInvalidArgument-wrapped error.
func (r *Request) Clean(data *RawData) ([]*arc.Arc, error) {
	if r.mode == osmhttp.ModePOI {
		return nil, fmt.Errorf("%w: poi mode has no way geometry to clean", errs.ErrInvalidArgument)
	}

	var opts []topology.Option
	if r.subInterpolate {
		opts = append(opts, topology.WithSubInterpolation())
	}

	return topology.Clean(data.Lines, data.Points, opts...)
}

// BuildGraph runs the graph builder (C7) over cleaned arcs, expanding
// vehicle-mode arcs into their reverse-direction twins per spec.md §4.6.
func (r *Request) BuildGraph(arcs []*arc.Arc) (*netgraph.Graph, error) {
	return netgraph.Build(arcs, r.mode.Directed())
}

// Run executes the full pipeline — fetch, clean, build — returning a
// ready-to-query Graph. Callers needing the intermediate RawData or
// CleanedArcs stages (e.g. to cache them) should call Fetch/Clean/
// BuildGraph directly instead.
func (r *Request) Run(ctx context.Context) (*netgraph.Graph, error) {
	data, err := r.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	arcs, err := r.Clean(data)
	if err != nil {
		return nil, err
	}

	return r.BuildGraph(arcs)
}
