package osmhttp

import (
	"fmt"
	"strings"

	"github.com/amauryval/osmrx-go/errs"
)

// GeoFilter scopes an Overpass query to a region: either a literal bounding
// box, or a named area already resolved to an OSM area id via Nominatim.
type GeoFilter interface {
	geoFilter()
}

// BBox is a south/west/north/east bounding box, Overpass's own bbox order.
type BBox struct {
	South, West, North, East float64
}

func (BBox) geoFilter() {}

func (b BBox) clause() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.South, b.West, b.North, b.East)
}

// Area scopes the query to a named place, already resolved to an OSM area
// id (spec.md §6: Nominatim candidate osm_id, offset by +3_600_000_000).
type Area struct {
	OSMID int64
}

func (Area) geoFilter() {}

// BuildQuery renders the full Overpass query string for mode scoped to
// filter: "[out:json];{core_query};out geom;(._;>;);" (spec.md §6).
func BuildQuery(mode Mode, filter GeoFilter) (string, error) {
	templates, ok := modeQueries[mode]
	if !ok {
		return "", fmt.Errorf("%w: unknown mode %q", errs.ErrInvalidArgument, mode)
	}

	var prefix, clause string
	switch f := filter.(type) {
	case BBox:
		clause = f.clause()
	case Area:
		clause = "area.searchArea"
		prefix = fmt.Sprintf("area(%d)->.searchArea;", f.OSMID)
	default:
		return "", fmt.Errorf("%w: unsupported geo filter %T", errs.ErrInvalidArgument, filter)
	}

	var body strings.Builder
	for _, tmpl := range templates {
		fmt.Fprintf(&body, tmpl, clause)
	}

	return fmt.Sprintf("[out:json];%s(%s);out geom;(._;>;);", prefix, strings.TrimSuffix(body.String(), ";")), nil
}
