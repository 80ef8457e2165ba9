package osmrecord

import (
	"encoding/json"

	"github.com/paulmach/osm"

	"github.com/amauryval/osmrx-go/arc"
)

// Decode translates a raw Overpass JSON response body into RawLines (from
// "way" elements) and RawPoints (from "node" elements), per spec.md §6's
// decoded-element contract. Every record's attributes carry the osm_url
// field (spec.md §4 supplement) alongside its OSM tags. A body that is not
// JSON, or has no "elements" array, fails with errs.ErrUpstreamMalformed.
//
// A way element with fewer than two geometry points is skipped: it cannot
// carry a line, and the topology cleaner would discard it as degenerate
// anyway (errs.ErrGeometryDegenerate), so there is no point constructing
// one here.
func Decode(body []byte) ([]arc.RawLine, []arc.RawPoint, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, errMalformed(err.Error())
	}
	if env.Elements == nil {
		return nil, nil, errMalformed(`missing "elements" array`)
	}

	var lines []arc.RawLine
	var points []arc.RawPoint

	for _, el := range env.Elements {
		switch el.Type {
		case elementTypeWay:
			if len(el.Geometry) < 2 {
				continue
			}

			geom := make([]arc.Coordinate, len(el.Geometry))
			for i, ll := range el.Geometry {
				geom[i] = arc.Coordinate{Lon: ll.Lon, Lat: ll.Lat}
			}

			attrs := tagsToAttributes(el.Tags)
			attrs[arc.AttrOSMURL] = OSMURL(KindWay, int64(osm.WayID(el.ID)))

			lines = append(lines, arc.RawLine{ID: int(el.ID), Geometry: geom, Attributes: attrs})

		case elementTypeNode:
			attrs := tagsToAttributes(el.Tags)
			attrs[arc.AttrOSMURL] = OSMURL(KindNode, int64(osm.NodeID(el.ID)))

			points = append(points, arc.RawPoint{
				ID:         int(el.ID),
				Geometry:   arc.Coordinate{Lon: el.Lon, Lat: el.Lat},
				Attributes: attrs,
			})
		}
	}

	return lines, points, nil
}

// tagsToAttributes round-trips the decoded tag map through osm.Tags so
// every attribute map RawLine/RawPoint carries has been normalized the way
// the OSM ecosystem represents tags, rather than passing Overpass's raw
// JSON map straight through untouched.
func tagsToAttributes(raw map[string]string) map[string]string {
	tags := make(osm.Tags, 0, len(raw))
	for k, v := range raw {
		tags = append(tags, osm.Tag{Key: k, Value: v})
	}

	return tags.Map()
}
