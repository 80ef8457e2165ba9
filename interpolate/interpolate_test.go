package interpolate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/errs"
	"github.com/amauryval/osmrx-go/interpolate"
)

func TestDensify_FactorOneReturnsCopy(t *testing.T) {
	pts := []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}
	out, err := interpolate.Densify(pts, 1)
	require.NoError(t, err)
	assert.Equal(t, pts, out)

	out[0].Lon = 99
	assert.NotEqual(t, pts[0].Lon, out[0].Lon, "Densify must not alias the input slice")
}

func TestDensify_FactorTwoInsertsMidpoints(t *testing.T) {
	pts := []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 2, Lat: 0}}
	out, err := interpolate.Densify(pts, 2)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, arc.Coordinate{Lon: 0, Lat: 0}, out[0])
	assert.Equal(t, arc.Coordinate{Lon: 1, Lat: 0}, out[1])
	assert.Equal(t, arc.Coordinate{Lon: 2, Lat: 0}, out[2])
}

func TestDensify_PreservesEndpoints(t *testing.T) {
	pts := []arc.Coordinate{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 3, Lat: 0}}
	out, err := interpolate.Densify(pts, 4)
	require.NoError(t, err)

	assert.Equal(t, pts[0], out[0])
	assert.Equal(t, pts[len(pts)-1], out[len(out)-1])
}

func TestDensify_RejectsFactorBelowOne(t *testing.T) {
	_, err := interpolate.Densify([]arc.Coordinate{{Lon: 0, Lat: 0}}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDensify_EmptyInput(t *testing.T) {
	out, err := interpolate.Densify(nil, 4)
	require.NoError(t, err)
	assert.Nil(t, out)
}
