package rtreeindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amauryval/osmrx-go/rtreeindex"
)

func box(lon, lat float64) rtreeindex.BBox {
	return rtreeindex.BBox{MinLon: lon, MinLat: lat, MaxLon: lon, MaxLat: lat}
}

func TestNearest_EmptyIndex(t *testing.T) {
	idx := rtreeindex.Build(nil)
	out := idx.Nearest(box(0, 0), 5)
	assert.Empty(t, out)
}

func TestNearest_ReturnsClosestFirst(t *testing.T) {
	items := []rtreeindex.Item{
		{ID: 1, Box: box(0, 0)},
		{ID: 2, Box: box(10, 10)},
		{ID: 3, Box: box(0.1, 0.1)},
	}
	idx := rtreeindex.Build(items)

	out := idx.Nearest(box(0, 0), 1)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0])
}

func TestNearest_RespectsK(t *testing.T) {
	items := []rtreeindex.Item{
		{ID: 1, Box: box(0, 0)},
		{ID: 2, Box: box(0.1, 0.1)},
		{ID: 3, Box: box(0.2, 0.2)},
		{ID: 4, Box: box(5, 5)},
	}
	idx := rtreeindex.Build(items)

	out := idx.Nearest(box(0, 0), 2)
	assert.Len(t, out, 2)
}

func TestNearest_TiesBrokenByAscendingID(t *testing.T) {
	items := []rtreeindex.Item{
		{ID: 20, Box: box(0, 0)},
		{ID: 10, Box: box(0, 0)},
	}
	idx := rtreeindex.Build(items)

	out := idx.Nearest(box(0, 0), 2)
	require.Len(t, out, 2)
	assert.Equal(t, 10, out[0])
	assert.Equal(t, 20, out[1])
}
