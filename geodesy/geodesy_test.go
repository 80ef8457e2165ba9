package geodesy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amauryval/osmrx-go/geodesy"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	d := geodesy.Distance(2.3522, 48.8566, 2.3522, 48.8566)
	assert.Equal(t, 0.0, d)
}

func TestDistance_ParisToLondonRoughlyMatchesKnownValue(t *testing.T) {
	// Paris (2.3522, 48.8566) to London (-0.1278, 51.5074): ~343 km great-ellipsoid.
	d := geodesy.Distance(2.3522, 48.8566, -0.1278, 51.5074)
	assert.InDelta(t, 343_000, d, 5_000)
}

func TestDistance_Symmetric(t *testing.T) {
	a := geodesy.Distance(2.3522, 48.8566, -0.1278, 51.5074)
	b := geodesy.Distance(-0.1278, 51.5074, 2.3522, 48.8566)
	assert.InDelta(t, a, b, 1e-6)
}

func TestLineLength_SumsConsecutiveSegments(t *testing.T) {
	lons := []float64{0, 0, 0}
	lats := []float64{0, 0.01, 0.02}
	total := geodesy.LineLength(lons, lats)

	seg1 := geodesy.Distance(0, 0, 0, 0.01)
	seg2 := geodesy.Distance(0, 0.01, 0, 0.02)
	assert.InDelta(t, seg1+seg2, total, 1e-6)
}

func TestLineLength_SinglePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, geodesy.LineLength([]float64{1}, []float64{1}))
}
