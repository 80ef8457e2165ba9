// Package query implements the query engine (C8): single-source shortest
// path lengths, two-point shortest path materialization, and distance-based
// isochrone bands over a netgraph.Graph.
//
// Grounded on katalvlaran-lvlath/dijkstra's lazy-decrease-key Dijkstra
// (container/heap min-priority-queue, functional Options, a runner struct
// holding per-call mutable state, an upfront edge pre-scan). The
// generalization swaps the teacher's string vertex IDs and int64 weights
// for arc.Coordinate nodes and float64 ellipsoidal-meter weights (lengths
// are never negative by construction, so the teacher's negative-weight
// pre-scan has no analogue here), and swaps its predecessor-vertex map for
// a predecessor-edge map, since path materialization needs the actual Edge
// (and its Arc geometry) to merge a LineString, not just the chain of
// visited coordinates.
//
// Isochrone band construction is grounded on
// original_source/osmrx/graph_manager/isochrones_feature.py's IsochronesFeature
// (from_node safety seed, outer-to-inner band processing, hull-difference
// band cleanup), rebuilt over package hull instead of shapely.
package query
