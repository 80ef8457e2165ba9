// Package kdtree implements a small 2-D k-d tree for nearest-sample
// lookups, used by the connector builder to find the closest densified
// line sample to an external point.
//
// Grounded on original_source/osmrx/topology/cleaner.py's
// spatial.cKDTree(interpolated_line_coords) / line_tree.query(nodes_coords)
// usage. No repository in the retrieval pack imports a k-d tree package, so
// this is a direct stdlib (sort, math) implementation — sized for the
// hundreds-to-low-thousands of samples one densified line produces, not a
// production point cloud. Like the Python source, it operates on raw
// (lon, lat) coordinates with no projection, since the source does the
// same (scipy's cKDTree there is never fed projected coordinates either).
package kdtree

import (
	"math"
	"sort"

	"github.com/amauryval/osmrx-go/arc"
)

type node struct {
	point       arc.Coordinate
	index       int
	axis        int
	left, right *node
}

// Tree is an immutable k-d tree over a fixed point set.
type Tree struct {
	root *node
}

// Build constructs a k-d tree over points. The returned Tree's Nearest
// results reference indices into the points slice as passed (the slice
// itself is not retained by reference, a defensive copy is taken).
func Build(points []arc.Coordinate) *Tree {
	items := make([]indexedPoint, len(points))
	for i, p := range points {
		items[i] = indexedPoint{point: p, index: i}
	}

	return &Tree{root: build(items, 0)}
}

type indexedPoint struct {
	point arc.Coordinate
	index int
}

func build(items []indexedPoint, depth int) *node {
	if len(items) == 0 {
		return nil
	}

	axis := depth % 2
	sort.Slice(items, func(i, j int) bool {
		if axis == 0 {
			return items[i].point.Lon < items[j].point.Lon
		}

		return items[i].point.Lat < items[j].point.Lat
	})

	mid := len(items) / 2
	n := &node{point: items[mid].point, index: items[mid].index, axis: axis}
	n.left = build(items[:mid], depth+1)
	n.right = build(items[mid+1:], depth+1)

	return n
}

// Nearest returns the index (into the slice Build was called with) of the
// point closest to q under squared-Euclidean distance in (lon, lat) space,
// along with that squared distance. Nearest on an empty tree returns
// (-1, +Inf).
func (t *Tree) Nearest(q arc.Coordinate) (int, float64) {
	if t.root == nil {
		return -1, math.Inf(1)
	}

	bestIdx := -1
	bestDist := math.Inf(1)
	search(t.root, q, &bestIdx, &bestDist)

	return bestIdx, bestDist
}

func search(n *node, q arc.Coordinate, bestIdx *int, bestDist *float64) {
	if n == nil {
		return
	}

	d := sqDist(n.point, q)
	if d < *bestDist {
		*bestDist = d
		*bestIdx = n.index
	}

	var diff, near, far float64
	var nearNode, farNode *node
	if n.axis == 0 {
		diff = q.Lon - n.point.Lon
	} else {
		diff = q.Lat - n.point.Lat
	}

	if diff < 0 {
		nearNode, farNode = n.left, n.right
	} else {
		nearNode, farNode = n.right, n.left
	}

	search(nearNode, q, bestIdx, bestDist)

	near = diff * diff
	far = *bestDist
	if near < far {
		search(farNode, q, bestIdx, bestDist)
	}
}

func sqDist(a, b arc.Coordinate) float64 {
	dLon := a.Lon - b.Lon
	dLat := a.Lat - b.Lat

	return dLon*dLon + dLat*dLat
}
