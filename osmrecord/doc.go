// Package osmrecord translates a decoded Overpass {elements: [...]}
// payload into the arc package's RawLine/RawPoint input shape (spec.md
// §6), and renders the osm_url field every emitted record carries
// (original_source/osmrx/network/arc_feature.py's ArcFeature.to_dict).
//
// Tag translation goes through github.com/paulmach/osm's Tags type
// (grounded on other_examples/a4edd97b_azybler-map_router__pkg-osm-
// parser.go.go, which reads OSM tags the same way) rather than passing
// the decoded map straight through, so every consumer of RawLine/RawPoint
// attributes sees tags normalized the way the OSM ecosystem already
// expects.
package osmrecord
