// Package topology implements the topology cleaner: the connector builder
// (C4), intersection finder (C5), and line splitter (C6) that turn a set of
// raw OSM linestrings and external points into a noded set of arc.Arc
// records ready for graph construction.
//
// Grounded on original_source/osmrx/topology/cleaner.py's LineBuilder and
// TopologyCleaner classes: the densify-then-kdtree attachment strategy, the
// rtree-based coarse host-line pruning, and the coordinate-occurrence
// intersection count are all reworked here as pure functions over owned
// slices (package kdtree, package rtreeindex, package interpolate) instead
// of the Python source's stateful classes with mutable instance state. The
// one place the spec calls out as safely parallel — per-host-line bucket
// processing in the connector builder — runs on goroutines here; every
// other phase is a straight-line transformation, matching spec.md §5's
// concurrency model.
package topology
