package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/netgraph"
	"github.com/amauryval/osmrx-go/query"
)

// buildStar builds an undirected hub-and-spoke graph: a center node with
// four arms at increasing distance, enough points for concave hulls.
func buildStar(t *testing.T) (*netgraph.Graph, arc.Coordinate) {
	t.Helper()

	center := arc.Coordinate{Lon: 0, Lat: 0}
	arcs := []*arc.Arc{
		mustArc(t, "n", []arc.Coordinate{center, {Lon: 0, Lat: 0.01}}),
		mustArc(t, "s", []arc.Coordinate{center, {Lon: 0, Lat: -0.01}}),
		mustArc(t, "e", []arc.Coordinate{center, {Lon: 0.01, Lat: 0}}),
		mustArc(t, "w", []arc.Coordinate{center, {Lon: -0.01, Lat: 0}}),
	}
	g, err := netgraph.Build(arcs, false)
	require.NoError(t, err)

	return g, center
}

func TestIsochrone_RejectsUnsortedIntervals(t *testing.T) {
	g, center := buildStar(t)
	_, err := query.Isochrone(g, center, []float64{0, 1000, 500}, 1.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrInvalidIntervals)
}

func TestIsochrone_RejectsNonZeroStart(t *testing.T) {
	g, center := buildStar(t)
	_, err := query.Isochrone(g, center, []float64{100, 500}, 1.0)
	require.Error(t, err)
}

func TestIsochrone_ReturnsOuterToInnerBands(t *testing.T) {
	g, center := buildStar(t)
	bands, err := query.Isochrone(g, center, []float64{0, 500, 2000}, 1.0)
	require.NoError(t, err)
	require.Len(t, bands, 2)
	assert.Equal(t, "500 to 2000", bands[0].Label)
	assert.Equal(t, "0 to 500", bands[1].Label)
}

func TestIsochrone_InnerBandHasNoHoleOuterBandDoes(t *testing.T) {
	g, center := buildStar(t)
	bands, err := query.Isochrone(g, center, []float64{0, 500, 2000}, 1.0)
	require.NoError(t, err)

	innerBand := bands[1] // "0 to 500"
	outerBand := bands[0] // "500 to 2000"
	assert.Empty(t, innerBand.Geometry.Holes)
	assert.NotEmpty(t, outerBand.Geometry.Holes)
}
