package query

import (
	"container/heap"
	"math"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/netgraph"
)

// Options configures Lengths.
type Options struct {
	MaxDistance float64 // meters; vertices beyond this are not explored
}

// Option is a functional option for Lengths.
type Option func(*Options)

// WithMaxDistance caps exploration to nodes within the given distance
// (meters) of the source. Default is +Inf (explore everything reachable).
func WithMaxDistance(meters float64) Option {
	return func(o *Options) { o.MaxDistance = meters }
}

func defaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Lengths computes single-source shortest-path lengths from source over g
// via Dijkstra, honoring g's directedness and each edge's arc length as
// weight. Returns the distance to every reached node and, for every
// reached node other than source, the edge used to reach it on one
// shortest path (so callers can walk the chain back to source).
func Lengths(g *netgraph.Graph, source arc.Coordinate, opts ...Option) (map[arc.Coordinate]float64, map[arc.Coordinate]*netgraph.Edge, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, errNodeNotFound(source.Lon, source.Lat)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make(map[arc.Coordinate]float64)
	prevEdge := make(map[arc.Coordinate]*netgraph.Edge)
	visited := make(map[arc.Coordinate]bool)

	pq := make(nodePQ, 0)
	heap.Init(&pq)
	dist[source] = 0
	heap.Push(&pq, &nodeItem{coord: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.coord, item.dist

		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		if d > cfg.MaxDistance {
			break
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, err
		}

		for _, e := range neighbors {
			v := otherEndpoint(e, u)
			newDist := dist[u] + e.Weight
			if newDist > cfg.MaxDistance {
				continue
			}
			if existing, ok := dist[v]; ok && newDist >= existing {
				continue
			}

			dist[v] = newDist
			prevEdge[v] = e
			heap.Push(&pq, &nodeItem{coord: v, dist: newDist})
		}
	}

	return dist, prevEdge, nil
}

// otherEndpoint returns the edge's endpoint that isn't u.
func otherEndpoint(e *netgraph.Edge, u arc.Coordinate) arc.Coordinate {
	if e.From == u {
		return e.To
	}

	return e.From
}

// nodeItem is a (coordinate, distance) pair stored in the priority queue.
type nodeItem struct {
	coord arc.Coordinate
	dist  float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// same lazy-decrease-key strategy as the teacher's dijkstra package: a
// shorter distance to an already-queued node is pushed as a new entry
// rather than mutating the heap in place, and stale entries are skipped on
// pop via the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
