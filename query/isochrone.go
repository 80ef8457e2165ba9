package query

import (
	"fmt"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/hull"
	"github.com/amauryval/osmrx-go/netgraph"
)

// Band is one isochrone ring: the label "lo to hi" and its polygon
// geometry with any inner bands cut out as holes.
type Band struct {
	Label    string
	Geometry hull.Polygon
}

// Isochrone computes distance-based isochrone bands from source over g,
// per spec.md §4.7. intervals must be sorted ascending and start with 0
// (e.g. [0, 500, 1000, 2000]); precision is forwarded to hull.Concave.
//
// Bands are returned outer-to-inner, matching the processing order named
// in spec.md §4.7 step 2: Bands[0] covers (intervals[n-2], intervals[n-1]),
// …, Bands[n-2] covers (intervals[0], intervals[1]).
func Isochrone(g *netgraph.Graph, source arc.Coordinate, intervals []float64, precision float64) ([]Band, error) {
	if len(intervals) < 2 || intervals[0] != 0 {
		return nil, ErrInvalidIntervals
	}
	for i := 1; i < len(intervals); i++ {
		if intervals[i] <= intervals[i-1] {
			return nil, ErrInvalidIntervals
		}
	}

	dist, _, err := Lengths(g, source)
	if err != nil {
		return nil, err
	}
	if len(dist) == 0 {
		return nil, ErrEmptyReachableSet
	}

	n := len(intervals)
	rawHulls := make([]hull.Polygon, n) // rawHulls[k] = hull(points with dist < intervals[k]), k>=1; [0] unused
	for k := 1; k < n; k++ {
		hi := intervals[k]
		var pts []arc.Coordinate
		for c, d := range dist {
			if d < hi {
				pts = append(pts, c)
			}
		}
		if intervals[k-1] == 0 {
			pts = append(pts, source) // safety seed for the band touching 0
		}
		if len(pts) == 0 {
			return nil, ErrEmptyReachableSet
		}
		rawHulls[k] = hull.Concave(pts, precision)
	}

	bands := make([]Band, 0, n-1)
	for k := 1; k < n; k++ {
		geometry := rawHulls[k]
		if k > 1 {
			geometry = hull.Difference(rawHulls[k], rawHulls[k-1])
		}
		bands = append(bands, Band{
			Label:    fmt.Sprintf("%g to %g", intervals[k-1], intervals[k]),
			Geometry: geometry,
		})
	}

	// Reverse into outer-to-inner order.
	for i, j := 0, len(bands)-1; i < j; i, j = i+1, j-1 {
		bands[i], bands[j] = bands[j], bands[i]
	}

	return bands, nil
}
