package query_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/errs"
	"github.com/amauryval/osmrx-go/query"
)

func TestShortestPath_MergesContiguousGeometry(t *testing.T) {
	g, a, b, c := buildLine(t)

	path, err := query.ShortestPath(g, a, c)
	require.NoError(t, err)

	require.Len(t, path.Lines, 1)
	line := path.Lines[0]
	assert.Equal(t, a, line[0])
	assert.Equal(t, c, line[len(line)-1])
	assert.Contains(t, line, b)
	assert.Len(t, path.Edges, 2)
}

func TestShortestPath_ReverseQueryIsGeometricReverse(t *testing.T) {
	g, a, _, c := buildLine(t)

	forward, err := query.ShortestPath(g, a, c)
	require.NoError(t, err)
	backward, err := query.ShortestPath(g, c, a)
	require.NoError(t, err)

	require.Len(t, forward.Lines, 1)
	require.Len(t, backward.Lines, 1)

	fwd := forward.Lines[0]
	bwd := backward.Lines[0]
	require.Equal(t, len(fwd), len(bwd))
	for i := range fwd {
		assert.Equal(t, fwd[i], bwd[len(bwd)-1-i])
	}
	assert.InDelta(t, forward.Length, backward.Length, 1e-6)
}

func TestShortestPath_SameEndpointErrors(t *testing.T) {
	g, a, _, _ := buildLine(t)
	_, err := query.ShortestPath(g, a, a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestShortestPath_UnreachableDestination(t *testing.T) {
	g, a, _, _ := buildLine(t)
	isolated := arc.Coordinate{Lon: 5, Lat: 5}
	g.AddNode(isolated)

	_, err := query.ShortestPath(g, a, isolated)
	require.Error(t, err)
}
