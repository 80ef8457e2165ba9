package netgraph

import (
	"errors"
	"fmt"

	"github.com/amauryval/osmrx-go/errs"
)

// ErrEmptyGeometry indicates an Arc with fewer than two coordinates was
// handed to AddArc; such an arc has no well-defined endpoints.
var ErrEmptyGeometry = fmt.Errorf("%w: arc geometry has fewer than two coordinates", errs.ErrGeometryDegenerate)

func errDuplicateArc(topoUUID string) error {
	return fmt.Errorf("%w: topo_uuid %q already present in graph", errs.ErrDuplicateArc, topoUUID)
}

func errNodeNotFound(lon, lat float64) error {
	return fmt.Errorf("%w: coordinate (%g, %g)", errs.ErrNodeNotFound, lon, lat)
}

// IsDuplicateArc reports whether err (or an error it wraps) is the
// duplicate-topo_uuid invariant violation.
func IsDuplicateArc(err error) bool {
	return errors.Is(err, errs.ErrDuplicateArc)
}
