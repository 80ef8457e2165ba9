package query

import (
	"errors"
	"fmt"

	"github.com/amauryval/osmrx-go/errs"
)

// Sentinel errors returned by the query engine.
var (
	// ErrNilGraph indicates a nil *netgraph.Graph was passed to Lengths or
	// ShortestPath.
	ErrNilGraph = errors.New("query: graph is nil")

	// ErrNoPath indicates the destination is unreachable from the source.
	ErrNoPath = errors.New("query: no path to destination")

	// ErrInvalidIntervals indicates the isochrone interval list is not
	// sorted ascending starting at 0, or has fewer than two entries.
	ErrInvalidIntervals = fmt.Errorf("%w: isochrone intervals must be sorted ascending starting at 0", errs.ErrInvalidArgument)

	// ErrEmptyReachableSet indicates a band (or the whole source) has no
	// reachable nodes to build a hull from.
	ErrEmptyReachableSet = errors.New("query: band has an empty reachable set")
)

func errNodeNotFound(lon, lat float64) error {
	return fmt.Errorf("%w: coordinate (%g, %g)", errs.ErrNodeNotFound, lon, lat)
}

func errSameEndpoint() error {
	return fmt.Errorf("%w: points must be different", errs.ErrInvalidArgument)
}
