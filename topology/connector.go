package topology

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/interpolate"
	"github.com/amauryval/osmrx-go/kdtree"
	"github.com/amauryval/osmrx-go/rtreeindex"
)

const (
	// defaultHostDensifyLevel is the densification factor (spec.md §4.3
	// step 1, INTERPOLATION_LEVEL) used to sample candidate attachment
	// positions along every host line.
	defaultHostDensifyLevel = 7
	// defaultNearestCandidates is the spatial index k (spec.md §4.2).
	defaultNearestCandidates = 10
)

// workingLine is a RawLine whose Geometry may have been extended with
// injected attachment coordinates (spec.md §4.3 step 3d).
type workingLine struct {
	id         int
	geometry   []arc.Coordinate
	attributes map[string]string
}

// buildConnectors runs the connector builder (C4): for every external
// point, it picks a host line, computes an on-line attachment coordinate,
// and emits a connector arc. Host lines are extended in place (their
// geometry gains the chosen attachment coordinates, in densified order).
//
// Returns the (possibly extended) lines keyed by id, and the connector arcs
// in ascending point-ID order.
func buildConnectors(lines []arc.RawLine, points []arc.RawPoint) (map[int]*workingLine, []*arc.Arc, error) {
	working := make(map[int]*workingLine, len(lines))
	order := make([]int, 0, len(lines))
	for _, l := range lines {
		if _, dup := working[l.ID]; dup {
			return nil, nil, fmt.Errorf("%w: id %d", ErrDuplicateLineID, l.ID)
		}
		geom := make([]arc.Coordinate, len(l.Geometry))
		copy(geom, l.Geometry)
		working[l.ID] = &workingLine{id: l.ID, geometry: geom, attributes: l.Attributes}
		order = append(order, l.ID)
	}

	if len(points) == 0 {
		return working, nil, nil
	}

	// Spatial index over original (unextended) line bounding boxes. Index
	// construction runs serially, before any bucket goes parallel (spec.md
	// §5: "Parallelism MUST NOT cross the R-tree").
	items := make([]rtreeindex.Item, 0, len(order))
	for _, id := range order {
		items = append(items, rtreeindex.Item{ID: id, Box: lineBBox(working[id].geometry)})
	}
	index := rtreeindex.Build(items)

	seenPoints := make(map[int]bool, len(points))
	buckets := make(map[int][]arc.RawPoint)
	for _, p := range points {
		if seenPoints[p.ID] {
			return nil, nil, fmt.Errorf("%w: id %d", ErrDuplicatePointID, p.ID)
		}
		seenPoints[p.ID] = true

		hostID, err := chooseHostLine(index, working, p.ID, p.Geometry, defaultNearestCandidates)
		if err != nil {
			return nil, nil, err
		}
		buckets[hostID] = append(buckets[hostID], p)
	}

	bucketHostIDs := make([]int, 0, len(buckets))
	for id := range buckets {
		bucketHostIDs = append(bucketHostIDs, id)
	}
	sort.Ints(bucketHostIDs)

	// Per-host-line bucket processing is independent and runs in parallel
	// (spec.md §4.3 Concurrency); results are collected into per-bucket
	// slots and flushed in host-line-id order, so parallelism never
	// disturbs determinism.
	connectorsByBucket := make([][]*arc.Arc, len(bucketHostIDs))
	extendedGeomByBucket := make([][]arc.Coordinate, len(bucketHostIDs))

	var wg sync.WaitGroup
	for i, hostID := range bucketHostIDs {
		wg.Add(1)
		go func(slot int, hostID int) {
			defer wg.Done()
			connectors, extended := processBucket(working[hostID], buckets[hostID])
			connectorsByBucket[slot] = connectors
			extendedGeomByBucket[slot] = extended
		}(i, hostID)
	}
	wg.Wait()

	var allConnectors []*arc.Arc
	for i, hostID := range bucketHostIDs {
		working[hostID].geometry = extendedGeomByBucket[i]
		allConnectors = append(allConnectors, connectorsByBucket[i]...)
	}

	sort.Slice(allConnectors, func(i, j int) bool {
		return connectorPointID(allConnectors[i]) < connectorPointID(allConnectors[j])
	})

	return working, allConnectors, nil
}

// connectorPointID extracts the numeric point ID back out of a connector
// arc's "added_{pointId}" TopoUUID, for sorting connectors into ascending
// point-ID order regardless of which goroutine emitted them.
func connectorPointID(a *arc.Arc) int {
	var id int
	_, _ = fmt.Sscanf(a.TopoUUID, "added_%d", &id)

	return id
}

// processBucket handles one host line's assigned points (spec.md §4.3
// step 3): densify, find each point's nearest dense sample, emit a
// connector arc, and fold the chosen attachment coordinates back into the
// host line's geometry in densified order.
func processBucket(host *workingLine, bucket []arc.RawPoint) ([]*arc.Arc, []arc.Coordinate) {
	dense, err := interpolate.Densify(host.geometry, defaultHostDensifyLevel)
	if err != nil {
		// Only returns an error for k<1, which defaultHostDensifyLevel never is.
		dense = host.geometry
	}
	tree := kdtree.Build(dense)

	originalSet := make(map[arc.Coordinate]bool, len(host.geometry))
	for _, c := range host.geometry {
		originalSet[c] = true
	}
	attachSet := make(map[arc.Coordinate]bool)

	connectors := make([]*arc.Arc, 0, len(bucket))
	for _, p := range bucket {
		idx, _ := tree.Nearest(p.Geometry)
		attachCoord := dense[idx]
		attachSet[attachCoord] = true

		if attachCoord == p.Geometry {
			// The point already sits on the line; no connector edge is
			// needed, but the coordinate still folds into the host
			// geometry below so the intersection finder can split there.
			continue
		}

		connectors = append(connectors, arc.New(
			fmt.Sprintf("added_%d", p.ID),
			[]arc.Coordinate{p.Geometry, attachCoord},
			arc.StatusAdded,
			p.Attributes,
		))
	}

	extended := make([]arc.Coordinate, 0, len(dense))
	for _, c := range dense {
		if originalSet[c] || attachSet[c] {
			extended = append(extended, c)
		}
	}

	return connectors, extended
}

// chooseHostLine finds the line closest to point among the index's
// candidates, breaking ties by smallest line ID (spec.md §4.3 step 2).
// Returns errNoHostLine if the index yields no candidates at all (e.g. an
// empty line set), rather than a sentinel -1 host ID.
func chooseHostLine(index *rtreeindex.Index, lines map[int]*workingLine, pointID int, point arc.Coordinate, k int) (int, error) {
	box := rtreeindex.BBox{MinLon: point.Lon, MinLat: point.Lat, MaxLon: point.Lon, MaxLat: point.Lat}
	candidates := index.Nearest(box, k)

	bestID := -1
	bestDist := math.Inf(1)
	for _, id := range candidates {
		d := pointToLineDistance(point, lines[id].geometry)
		if d == 0 {
			return id, nil // shortcut: exact match
		}
		if d < bestDist || (d == bestDist && id < bestID) {
			bestDist = d
			bestID = id
		}
	}

	if bestID == -1 {
		return 0, errNoHostLine(pointID)
	}

	return bestID, nil
}

func lineBBox(geom []arc.Coordinate) rtreeindex.BBox {
	box := rtreeindex.BBox{
		MinLon: math.Inf(1), MinLat: math.Inf(1),
		MaxLon: math.Inf(-1), MaxLat: math.Inf(-1),
	}
	for _, c := range geom {
		box.MinLon = math.Min(box.MinLon, c.Lon)
		box.MinLat = math.Min(box.MinLat, c.Lat)
		box.MaxLon = math.Max(box.MaxLon, c.Lon)
		box.MaxLat = math.Max(box.MaxLat, c.Lat)
	}

	return box
}

// pointToLineDistance is the exact (un-projected, degree-space) distance
// from point to the closest segment of line, matching the Python source's
// shapely .distance() calls, which likewise never reproject.
func pointToLineDistance(point arc.Coordinate, line []arc.Coordinate) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(line); i++ {
		d := pointToSegmentDistance(point, line[i], line[i+1])
		if d < best {
			best = d
		}
	}

	return best
}

func pointToSegmentDistance(p, a, b arc.Coordinate) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat

	if dx == 0 && dy == 0 {
		return math.Hypot(p.Lon-a.Lon, p.Lat-a.Lat)
	}

	t := ((p.Lon-a.Lon)*dx + (p.Lat-a.Lat)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	projLon := a.Lon + t*dx
	projLat := a.Lat + t*dy

	return math.Hypot(p.Lon-projLon, p.Lat-projLat)
}
