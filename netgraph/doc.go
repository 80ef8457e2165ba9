// Package netgraph provides a thread-safe, in-memory graph over Arc edges
// keyed by geographic Coordinate endpoints.
//
// A netgraph.Graph is the destination of the topology cleaner's output (see
// package topology) and the input to the query engine (see package query).
// Nodes are deduplicated by exact Coordinate equality — no tolerance
// rounding happens here; callers that want fuzzy merging must quantize
// coordinates before feeding them to the cleaner.
//
// Directedness is a graph-wide property fixed at construction (NewGraph) and
// never mutated afterward. Vehicle-mode direction expansion (oneway,
// junction=roundabout/jughandle) happens one layer up, in Build; by
// the time an edge reaches the Graph it is just two endpoints and an Arc.
//
// Concurrency: separate RWMutex locks guard nodes vs. edges+adjacency, so
// concurrent reads never block on each other, and node inserts don't block
// edge reads. Once construction (Build) completes, the graph is
// read-only for the remainder of its lifetime; no internal caches are
// mutated by queries, so concurrent Dijkstra/isochrone calls are safe.
package netgraph
