package osmrecord

import "fmt"

// Kind is the OSM element type an osm_url refers to.
type Kind string

const (
	KindWay  Kind = "way"
	KindNode Kind = "node"
)

// OSMURL renders the osm_url field pattern spec.md §6 and
// original_source/osmrx/network/arc_feature.py's ArcFeature.to_dict
// mandate: https://www.openstreetmap.org/{way|node}/{id}.
func OSMURL(kind Kind, id int64) string {
	return fmt.Sprintf("https://www.openstreetmap.org/%s/%d", kind, id)
}
