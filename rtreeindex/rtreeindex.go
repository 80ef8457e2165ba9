// Package rtreeindex implements a coarse bounding-box spatial index for
// pruning nearest-line candidates before the connector builder falls back
// to exact point-to-linestring distance.
//
// Grounded on original_source/osmrx/topology/cleaner.py's
// rtree.index.Index(self.__rtree_generator_func()) bulk-load and
// self._tree_index.nearest(node_geom.bounds, k) query. No repository in the
// retrieval pack imports an R-tree package, so this is implemented as a
// uniform-grid bucket index (stdlib only) — per spec.md §4.2 "the index
// only needs to be a coarse pruner", since the connector builder re-ranks
// candidates by exact distance.
package rtreeindex

import (
	"math"
	"sort"
)

// BBox is an axis-aligned bounding box in (lon, lat) space.
type BBox struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

func (b BBox) center() (float64, float64) {
	return (b.MinLon + b.MaxLon) / 2, (b.MinLat + b.MaxLat) / 2
}

// Item is one indexed entry: an arc ID and its bounding box.
type Item struct {
	ID  int
	Box BBox
}

const gridCells = 64

// Index is a build-once, query-many coarse spatial index.
type Index struct {
	items  []Item
	minLon, minLat, maxLon, maxLat float64
	cellW, cellH                  float64
	buckets                       map[[2]int][]int // cell -> item indices
}

// Build constructs an Index over items. Construction must run serially
// (spec.md §4.3/§5): it is not safe to call Build concurrently with
// anything else touching items.
func Build(items []Item) *Index {
	idx := &Index{items: items, buckets: make(map[[2]int][]int)}
	if len(items) == 0 {
		return idx
	}

	idx.minLon, idx.minLat = math.Inf(1), math.Inf(1)
	idx.maxLon, idx.maxLat = math.Inf(-1), math.Inf(-1)
	for _, it := range items {
		idx.minLon = math.Min(idx.minLon, it.Box.MinLon)
		idx.minLat = math.Min(idx.minLat, it.Box.MinLat)
		idx.maxLon = math.Max(idx.maxLon, it.Box.MaxLon)
		idx.maxLat = math.Max(idx.maxLat, it.Box.MaxLat)
	}

	spanLon := idx.maxLon - idx.minLon
	spanLat := idx.maxLat - idx.minLat
	if spanLon == 0 {
		spanLon = 1
	}
	if spanLat == 0 {
		spanLat = 1
	}
	idx.cellW = spanLon / gridCells
	idx.cellH = spanLat / gridCells

	for i, it := range items {
		lon, lat := it.Box.center()
		cx, cy := idx.cellOf(lon, lat)
		cell := [2]int{cx, cy}
		idx.buckets[cell] = append(idx.buckets[cell], i)
	}

	return idx
}

func (idx *Index) cellOf(lon, lat float64) (int, int) {
	cx := int((lon - idx.minLon) / idx.cellW)
	cy := int((lat - idx.minLat) / idx.cellH)

	return cx, cy
}

// Nearest returns up to k candidate item IDs for queryBox, sorted by a
// coarse center-to-center distance heuristic — not necessarily by true
// distance. Callers re-rank with exact geometry distance. Ties (equal
// heuristic distance) are broken by ascending ID for determinism.
func (idx *Index) Nearest(queryBox BBox, k int) []int {
	if len(idx.items) == 0 {
		return nil
	}
	if k <= 0 {
		k = 10
	}

	qLon, qLat := queryBox.center()
	cx, cy := idx.cellOf(qLon, qLat)

	type candidate struct {
		id   int
		dist float64
	}
	var candidates []candidate
	seen := make(map[int]bool)

	// Expand ring-by-ring until at least k candidates are collected, then
	// scan one extra ring so points just across a cell boundary aren't
	// missed before re-ranking by exact distance.
	extraRing := -1
	for ring := 0; ring <= gridCells; ring++ {
		for dx := -ring; dx <= ring; dx++ {
			for dy := -ring; dy <= ring; dy++ {
				if ring > 0 && abs(dx) != ring && abs(dy) != ring {
					continue // only the ring's perimeter
				}
				cell := [2]int{cx + dx, cy + dy}
				for _, i := range idx.buckets[cell] {
					if seen[i] {
						continue
					}
					seen[i] = true
					lon, lat := idx.items[i].Box.center()
					dLon := lon - qLon
					dLat := lat - qLat
					candidates = append(candidates, candidate{
						id:   idx.items[i].ID,
						dist: dLon*dLon + dLat*dLat,
					})
				}
			}
		}
		if len(candidates) >= k && extraRing == -1 {
			extraRing = ring + 1
		}
		if extraRing != -1 && ring >= extraRing {
			break
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}

		return candidates[i].id < candidates[j].id
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]int, len(candidates))
	for i, c := range candidates {
		out[i] = c.id
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
