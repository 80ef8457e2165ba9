// Package errs defines the sentinel error kinds shared across the topology
// cleaner, graph builder, and query engine.
//
// Each exported Err* value names one of the exhaustive error kinds the
// system can raise. Callers distinguish kinds with errors.Is; each call
// site that raises one wraps it with fmt.Errorf("%w: ...") to attach the
// offending id or coordinate, so no error ever loses its context.
package errs

import "errors"

var (
	// ErrInvalidArgument covers malformed intervals, a non-positive
	// interpolation factor, an empty input line set, or equal shortest-path
	// endpoints.
	ErrInvalidArgument = errors.New("osmrx: invalid argument")

	// ErrNodeNotFound means a shortest-path endpoint is absent from the graph.
	ErrNodeNotFound = errors.New("osmrx: node not found")

	// ErrDuplicateArc means a topo_uuid was inserted into the graph twice —
	// a core invariant violation, always fatal.
	ErrDuplicateArc = errors.New("osmrx: duplicate arc")

	// ErrUpstreamUnavailable means the Overpass/Nominatim HTTP layer
	// exhausted its retry budget.
	ErrUpstreamUnavailable = errors.New("osmrx: upstream unavailable")

	// ErrUpstreamMalformed means an upstream payload was missing the
	// expected shape (e.g. no "elements" key).
	ErrUpstreamMalformed = errors.New("osmrx: upstream response malformed")

	// ErrGeometryDegenerate marks a line with fewer than 2 distinct
	// coordinates, or a connector whose endpoints coincide. Per spec this
	// kind is handled by silent discard internally and is exported only so
	// callers of lower-level helpers can recognize it if they choose to
	// call those helpers directly.
	ErrGeometryDegenerate = errors.New("osmrx: degenerate geometry")
)
