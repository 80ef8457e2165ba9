package query

import (
	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/netgraph"
)

// PathResult is the materialized shortest path between two nodes.
//
// Lines holds the merged geometry as one or more contiguous linestrings.
// The common case is len(Lines) == 1: a single LineString from From to To.
// Per spec.md §4.7 step 3, if two consecutive arcs on the path are not
// topologically contiguous (which cannot happen under the cleaner's
// invariants, but this package tolerates it rather than silently dropping
// data), Lines holds more than one linestring — a multi-linestring.
type PathResult struct {
	From, To arc.Coordinate
	Length   float64
	Edges    []*netgraph.Edge
	Lines    [][]arc.Coordinate
}

// ShortestPath resolves from and to to graph nodes and returns the
// Dijkstra-shortest path between them, materialized as an ordered edge
// list plus merged geometry. Returns ErrNoPath if to is unreachable from
// from, and an ErrInvalidArgument-wrapped error if from and to are the
// same coordinate.
func ShortestPath(g *netgraph.Graph, from, to arc.Coordinate) (*PathResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if from == to {
		return nil, errSameEndpoint()
	}
	if !g.HasNode(to) {
		return nil, errNodeNotFound(to.Lon, to.Lat)
	}

	dist, prevEdge, err := Lengths(g, from)
	if err != nil {
		return nil, err
	}

	total, reached := dist[to]
	if !reached {
		return nil, ErrNoPath
	}

	var edgesReversed []*netgraph.Edge
	cur := to
	for cur != from {
		e, ok := prevEdge[cur]
		if !ok {
			return nil, ErrNoPath
		}
		edgesReversed = append(edgesReversed, e)
		cur = otherEndpoint(e, cur)
	}

	edges := make([]*netgraph.Edge, len(edgesReversed))
	for i, e := range edgesReversed {
		edges[len(edgesReversed)-1-i] = e
	}

	lines := mergeGeometry(edges, from)

	return &PathResult{From: from, To: to, Length: total, Edges: edges, Lines: lines}, nil
}

// mergeGeometry walks edges in travel order starting at from, orienting
// each edge's arc geometry to match the direction actually traveled, and
// appends it onto the running linestring when contiguous, or starts a new
// linestring (never dropping a segment) when it is not.
func mergeGeometry(edges []*netgraph.Edge, from arc.Coordinate) [][]arc.Coordinate {
	if len(edges) == 0 {
		return nil
	}

	var lines [][]arc.Coordinate
	cur := from
	for _, e := range edges {
		geom := orientedGeometry(e, cur)
		if len(lines) > 0 {
			last := lines[len(lines)-1]
			if last[len(last)-1] == geom[0] {
				lines[len(lines)-1] = append(last, geom[1:]...)
				cur = otherEndpoint(e, cur)
				continue
			}
		}
		lineCopy := make([]arc.Coordinate, len(geom))
		copy(lineCopy, geom)
		lines = append(lines, lineCopy)
		cur = otherEndpoint(e, cur)
	}

	return lines
}

// orientedGeometry returns e's arc geometry ordered to start at travelFrom.
func orientedGeometry(e *netgraph.Edge, travelFrom arc.Coordinate) []arc.Coordinate {
	if travelFrom == e.From {
		return e.Arc.Geometry
	}

	geom := make([]arc.Coordinate, len(e.Arc.Geometry))
	for i, c := range e.Arc.Geometry {
		geom[len(geom)-1-i] = c
	}

	return geom
}
