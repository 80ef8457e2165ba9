package netgraph

import "github.com/amauryval/osmrx-go/arc"

// Build assembles a Graph from cleaned arcs, implementing spec.md §4.6's
// graph-builder rules:
//
//  1. Each arc's endpoints become nodes (deduplicated by coordinate
//     equality).
//  2. Each arc is inserted as an edge keyed by its TopoUUID.
//  3. In vehicle mode (vehicle=true), the graph is directed, and every arc
//     that is neither a roundabout/jughandle junction loop nor marked
//     oneway=yes gets a reverse-twin edge added between its swapped
//     endpoints (arc.Arc.Reversed), so the road is traversable both ways.
//  4. In every other mode the graph is undirected and only the forward
//     edge is added.
//
// Build fails fast on the first duplicate-TopoUUID or degenerate-geometry
// arc; per spec.md these are invariant violations, not recoverable partial
// states, so no partially-built graph is ever handed back to the caller.
func Build(arcs []*arc.Arc, vehicle bool) (*Graph, error) {
	g := NewGraph(WithDirected(vehicle))

	for _, a := range arcs {
		if err := g.AddArc(a); err != nil {
			return nil, err
		}

		if !vehicle || a.IsJunctionLoop() || a.IsOneway() {
			continue
		}

		if err := g.AddArc(a.Reversed()); err != nil {
			return nil, err
		}
	}

	return g, nil
}
