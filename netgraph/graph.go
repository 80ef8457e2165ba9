package netgraph

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/amauryval/osmrx-go/arc"
)

// Edge is one inserted arc, from its graph-storage perspective: its
// endpoints, routing weight, and the full Arc record it carries.
type Edge struct {
	TopoUUID string
	From, To arc.Coordinate
	Weight   float64 // arc.Length(), meters
	Directed bool
	Arc      *arc.Arc

	seq uint64 // insertion sequence, for emission-order tie-breaks
}

// Option configures a Graph before use.
type Option func(*Graph)

// WithDirected fixes the graph's directedness. Vehicle mode passes true;
// every other mode passes false (or omits the option — false is the
// zero-value default).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a thread-safe, build-once graph over arc.Coordinate nodes and
// Edge-wrapped arc.Arc edges.
type Graph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	directed bool
	nextSeq  uint64

	nodes     map[arc.Coordinate]struct{}
	edges     map[string]*Edge // topo_uuid -> Edge
	adjacency map[arc.Coordinate]map[arc.Coordinate]map[string]struct{}
}

// NewGraph constructs an empty Graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		nodes:     make(map[arc.Coordinate]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[arc.Coordinate]map[arc.Coordinate]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether this graph was constructed directed.
func (g *Graph) Directed() bool { return g.directed }

// AddNode inserts c as a node, idempotently.
func (g *Graph) AddNode(c arc.Coordinate) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.nodes[c] = struct{}{}
}

// HasNode reports whether c was inserted as a node.
func (g *Graph) HasNode(c arc.Coordinate) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[c]

	return ok
}

// AddArc inserts a as an edge keyed by its TopoUUID, adding its endpoints
// as nodes if new. Per spec.md §4.6, inserting a TopoUUID already present
// is a fatal invariant violation: AddArc returns an error rather than
// silently overwriting or renaming.
func (g *Graph) AddArc(a *arc.Arc) error {
	if len(a.Geometry) < 2 {
		return ErrEmptyGeometry
	}

	from, to := a.FromPoint(), a.ToPoint()

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.edges[a.TopoUUID]; exists {
		return errDuplicateArc(a.TopoUUID)
	}

	g.AddNode(from)
	g.AddNode(to)

	seq := atomic.AddUint64(&g.nextSeq, 1)
	e := &Edge{
		TopoUUID: a.TopoUUID,
		From:     from,
		To:       to,
		Weight:   a.Length(),
		Directed: g.directed,
		Arc:      a,
		seq:      seq,
	}
	g.edges[a.TopoUUID] = e

	g.linkAdjacency(from, to, e.TopoUUID)
	if !g.directed && from != to {
		g.linkAdjacency(to, from, e.TopoUUID)
	}

	return nil
}

func (g *Graph) linkAdjacency(from, to arc.Coordinate, topoUUID string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[arc.Coordinate]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][topoUUID] = struct{}{}
}

// Neighbors returns all edges incident to node c: outgoing edges only if
// the graph is directed, both directions otherwise. Results are sorted by
// insertion sequence (arc emission order), never by TopoUUID, so that
// equal-weight Dijkstra ties resolve per spec.md §5's ordering guarantee.
func (g *Graph) Neighbors(c arc.Coordinate) ([]*Edge, error) {
	if !g.HasNode(c) {
		return nil, errNodeNotFound(c.Lon, c.Lat)
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adjacency[c] {
		for topoUUID := range edgeSet {
			e := g.edges[topoUUID]
			if e.Directed && e.From != c {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// Edge looks up the edge stored under topoUUID.
func (g *Graph) Edge(topoUUID string) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[topoUUID]

	return e, ok
}

// Edges returns every edge, sorted by insertion sequence.
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// Nodes returns every node, in a deterministic (lon, then lat) order.
func (g *Graph) Nodes() []arc.Coordinate {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]arc.Coordinate, 0, len(g.nodes))
	for c := range g.nodes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lon != out[j].Lon {
			return out[i].Lon < out[j].Lon
		}

		return out[i].Lat < out[j].Lat
	})

	return out
}

// NodeCount reports the number of distinct nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// EdgeCount reports the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}
