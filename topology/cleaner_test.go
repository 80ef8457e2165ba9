package topology_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/errs"
	"github.com/amauryval/osmrx-go/topology"
)

func uuids(arcs []*arc.Arc) []string {
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.TopoUUID
	}

	return out
}

func TestClean_SingleLineNoIntersectionsIsUnchanged(t *testing.T) {
	lines := []arc.RawLine{
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 2, Lat: 0}}},
	}

	arcs, err := topology.Clean(lines, nil)
	require.NoError(t, err)
	require.Len(t, arcs, 1)
	assert.Equal(t, "1", arcs[0].TopoUUID)
	assert.Equal(t, arc.StatusUnchanged, arcs[0].Status)
}

func TestClean_CrossingLinesSplitAtIntersection(t *testing.T) {
	// Two lines crossing at (1,1): a horizontal and a vertical segment
	// sharing that coordinate as an interior point on the horizontal one.
	lines := []arc.RawLine{
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 0, Lat: 1}, {Lon: 1, Lat: 1}, {Lon: 2, Lat: 1}}},
		{ID: 2, Geometry: []arc.Coordinate{{Lon: 1, Lat: 1}, {Lon: 1, Lat: 2}}},
	}

	arcs, err := topology.Clean(lines, nil)
	require.NoError(t, err)

	got := uuids(arcs)
	assert.Contains(t, got, "1_0")
	assert.Contains(t, got, "1_1")
	assert.Contains(t, got, "2")

	for _, a := range arcs {
		if a.TopoUUID == "1_0" {
			assert.Equal(t, arc.StatusSplit, a.Status)
		}
	}
}

func TestClean_ExternalPointOffLineGetsConnector(t *testing.T) {
	lines := []arc.RawLine{
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 10, Lat: 0}}},
	}
	points := []arc.RawPoint{
		{ID: 100, Geometry: arc.Coordinate{Lon: 5, Lat: 1}},
	}

	arcs, err := topology.Clean(lines, points)
	require.NoError(t, err)

	got := uuids(arcs)
	assert.Contains(t, got, "added_100")
}

func TestClean_ExternalPointOnVertexGetsNoConnector(t *testing.T) {
	lines := []arc.RawLine{
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 10, Lat: 0}}},
	}
	points := []arc.RawPoint{
		{ID: 100, Geometry: arc.Coordinate{Lon: 0, Lat: 0}}, // exactly on the line's start vertex
	}

	arcs, err := topology.Clean(lines, points)
	require.NoError(t, err)

	got := uuids(arcs)
	assert.NotContains(t, got, "added_100")
}

func TestClean_DegenerateLineDiscardedSilently(t *testing.T) {
	lines := []arc.RawLine{
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 0}}}, // single distinct point
	}

	arcs, err := topology.Clean(lines, nil)
	require.NoError(t, err)
	assert.Empty(t, arcs)
}

func TestClean_UniqueTopoUUIDs(t *testing.T) {
	lines := []arc.RawLine{
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 0, Lat: 1}, {Lon: 1, Lat: 1}, {Lon: 2, Lat: 1}}},
		{ID: 2, Geometry: []arc.Coordinate{{Lon: 1, Lat: 1}, {Lon: 1, Lat: 2}}},
	}
	points := []arc.RawPoint{{ID: 5, Geometry: arc.Coordinate{Lon: 1.5, Lat: 0.9}}}

	arcs, err := topology.Clean(lines, points)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, a := range arcs {
		assert.False(t, seen[a.TopoUUID], "duplicate topo_uuid %q", a.TopoUUID)
		seen[a.TopoUUID] = true
	}
}

func TestClean_DeterministicAcrossRuns(t *testing.T) {
	lines := []arc.RawLine{
		{ID: 10, Geometry: []arc.Coordinate{{Lon: 0, Lat: 1}, {Lon: 1, Lat: 1}, {Lon: 2, Lat: 1}}},
		{ID: 11, Geometry: []arc.Coordinate{{Lon: 1, Lat: 1}, {Lon: 1, Lat: 2}}},
		{ID: 12, Geometry: []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 2, Lat: 2}}},
	}
	points := []arc.RawPoint{
		{ID: 1, Geometry: arc.Coordinate{Lon: 0.5, Lat: 0.9}},
		{ID: 2, Geometry: arc.Coordinate{Lon: 1.5, Lat: 1.1}},
	}

	first, err := topology.Clean(lines, points)
	require.NoError(t, err)
	second, err := topology.Clean(lines, points)
	require.NoError(t, err)

	assert.Equal(t, uuids(first), uuids(second))
	for i := range first {
		assert.Equal(t, first[i].Geometry, second[i].Geometry)
	}
}

func TestClean_SubInterpolationSuffixesEveryUUID(t *testing.T) {
	lines := []arc.RawLine{
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}}},
	}

	arcs, err := topology.Clean(lines, nil, topology.WithSubInterpolation())
	require.NoError(t, err)

	require.NotEmpty(t, arcs)
	for _, a := range arcs {
		assert.Contains(t, a.TopoUUID, "_")
	}
}

func TestClean_DuplicateLineIDErrors(t *testing.T) {
	lines := []arc.RawLine{
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}}},
		{ID: 1, Geometry: []arc.Coordinate{{Lon: 2, Lat: 0}, {Lon: 3, Lat: 0}}},
	}

	_, err := topology.Clean(lines, nil)
	require.Error(t, err)
}

func TestClean_EmptyLineSetErrors(t *testing.T) {
	_, err := topology.Clean(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	points := []arc.RawPoint{{ID: 1, Geometry: arc.Coordinate{Lon: 0, Lat: 0}}}
	_, err = topology.Clean(nil, points)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}
