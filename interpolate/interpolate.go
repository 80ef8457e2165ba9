// Package interpolate densifies a polyline by evenly spaced linear
// interpolation.
//
// Grounded on spec.md §4.1 and on
// original_source/osmrx/topology/cleaner.py's
// interpolate_curve_based_on_original_points (a numpy-vectorized linear
// resample). This package computes the closed-form linear interpolation
// directly: no numpy-equivalent dependency is needed for a handful of
// points per line.
package interpolate

import "github.com/amauryval/osmrx-go/arc"

// Densify returns the polyline points with (k-1) linearly interpolated
// vertices inserted between every adjacent pair, preserving order. For
// k == 1 the input is returned unchanged (a copy, never aliasing the
// caller's slice). Fails with a non-nil error when k < 1.
//
// The inserted vertices split each pair into k equal steps, in one pass.
// For k == 2 this is the single midpoint; for k >= 3 the result is not the
// same as repeated midpoint insertion (which would add 2^(k-1)-1 vertices
// per pair instead of k-1).
func Densify(points []arc.Coordinate, k int) ([]arc.Coordinate, error) {
	if k < 1 {
		return nil, errInvalidFactor(k)
	}
	if len(points) == 0 {
		return nil, nil
	}
	if k == 1 || len(points) == 1 {
		out := make([]arc.Coordinate, len(points))
		copy(out, points)

		return out, nil
	}

	out := make([]arc.Coordinate, 0, (len(points)-1)*k+1)
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		for step := 0; step < k; step++ {
			t := float64(step) / float64(k)
			out = append(out, lerp(a, b, t))
		}
	}
	out = append(out, points[len(points)-1])

	return out, nil
}

func lerp(a, b arc.Coordinate, t float64) arc.Coordinate {
	return arc.Coordinate{
		Lon: a.Lon + (b.Lon-a.Lon)*t,
		Lat: a.Lat + (b.Lat-a.Lat)*t,
	}
}
