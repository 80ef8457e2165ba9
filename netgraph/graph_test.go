package netgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/netgraph"
)

func straightArc(id string, from, to arc.Coordinate, attrs map[string]string) *arc.Arc {
	return arc.New(id, []arc.Coordinate{from, to}, arc.StatusUnchanged, attrs)
}

func TestGraph_AddArc_DuplicateTopoUUIDIsFatal(t *testing.T) {
	g := netgraph.NewGraph()
	a := straightArc("10", arc.Coordinate{Lon: 0, Lat: 0}, arc.Coordinate{Lon: 1, Lat: 1}, nil)

	require.NoError(t, g.AddArc(a))
	err := g.AddArc(a)
	require.Error(t, err)
	assert.True(t, netgraph.IsDuplicateArc(err))
}

func TestGraph_AddArc_DeduplicatesNodesByCoordinate(t *testing.T) {
	g := netgraph.NewGraph()
	origin := arc.Coordinate{Lon: 0, Lat: 0}

	require.NoError(t, g.AddArc(straightArc("1", origin, arc.Coordinate{Lon: 1, Lat: 0}, nil)))
	require.NoError(t, g.AddArc(straightArc("2", origin, arc.Coordinate{Lon: 0, Lat: 1}, nil)))

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_Neighbors_UndirectedMirrorsBothWays(t *testing.T) {
	g := netgraph.NewGraph() // directed defaults false
	a, b := arc.Coordinate{Lon: 0, Lat: 0}, arc.Coordinate{Lon: 1, Lat: 0}
	require.NoError(t, g.AddArc(straightArc("1", a, b, nil)))

	fromA, err := g.Neighbors(a)
	require.NoError(t, err)
	fromB, err := g.Neighbors(b)
	require.NoError(t, err)

	assert.Len(t, fromA, 1)
	assert.Len(t, fromB, 1)
}

func TestGraph_Neighbors_DirectedOnlyOutgoing(t *testing.T) {
	g := netgraph.NewGraph(netgraph.WithDirected(true))
	a, b := arc.Coordinate{Lon: 0, Lat: 0}, arc.Coordinate{Lon: 1, Lat: 0}
	require.NoError(t, g.AddArc(straightArc("1", a, b, nil)))

	fromA, err := g.Neighbors(a)
	require.NoError(t, err)
	assert.Len(t, fromA, 1)

	fromB, err := g.Neighbors(b)
	require.NoError(t, err)
	assert.Empty(t, fromB)
}

func TestGraph_Neighbors_UnknownNode(t *testing.T) {
	g := netgraph.NewGraph()
	_, err := g.Neighbors(arc.Coordinate{Lon: 99, Lat: 99})
	require.Error(t, err)
}

func TestGraph_Neighbors_OrderedByInsertionSequence(t *testing.T) {
	g := netgraph.NewGraph(netgraph.WithDirected(true))
	hub := arc.Coordinate{Lon: 0, Lat: 0}

	require.NoError(t, g.AddArc(straightArc("b", hub, arc.Coordinate{Lon: 1, Lat: 0}, nil)))
	require.NoError(t, g.AddArc(straightArc("a", hub, arc.Coordinate{Lon: 2, Lat: 0}, nil)))

	edges, err := g.Neighbors(hub)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "b", edges[0].TopoUUID) // inserted first, despite sorting after "a" lexically
	assert.Equal(t, "a", edges[1].TopoUUID)
}

func TestGraph_Edges_SortedByInsertionSequence(t *testing.T) {
	g := netgraph.NewGraph()
	require.NoError(t, g.AddArc(straightArc("z", arc.Coordinate{Lon: 0, Lat: 0}, arc.Coordinate{Lon: 1, Lat: 0}, nil)))
	require.NoError(t, g.AddArc(straightArc("a", arc.Coordinate{Lon: 2, Lat: 0}, arc.Coordinate{Lon: 3, Lat: 0}, nil)))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "z", edges[0].TopoUUID)
	assert.Equal(t, "a", edges[1].TopoUUID)
}
