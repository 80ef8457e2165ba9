// Package arc defines the data model shared by the topology cleaner, the
// graph builder, and the query engine: Coordinate, RawLine, RawPoint, and
// the central Arc record.
//
// Grounded on original_source/osmrx/network/arc_feature.py (ArcFeature) and
// original_source/osm_network/components/models.py (raw feature shape),
// reworked per spec.md §9 into plain tagged structs instead of a
// dict-of-mixed-types record with property setters.
package arc

import "github.com/amauryval/osmrx-go/geodesy"

// Coordinate is a WGS84 (lon, lat) pair. Equality is exact bit-identical
// comparison — Coordinate is comparable and safe to use as a map key
// directly. Callers wanting tolerant matching must quantize upstream; no
// rounding happens inside this module.
type Coordinate struct {
	Lon float64
	Lat float64
}

// TopoStatus is the provenance of an emitted Arc.
type TopoStatus string

const (
	// StatusUnchanged marks an arc whose line passed through the cleaner
	// without being split.
	StatusUnchanged TopoStatus = "unchanged"
	// StatusSplit marks an arc produced by chopping a line at an intersection.
	StatusSplit TopoStatus = "split"
	// StatusAdded marks a synthetic connector arc linking an external point
	// to its attachment coordinate.
	StatusAdded TopoStatus = "added"
)

// Direction is the traversal direction of an Arc's geometry.
type Direction string

const (
	// Forward is the arc's stored coordinate order.
	Forward Direction = "forward"
	// Backward is the arc's coordinate order reversed.
	Backward Direction = "backward"
)

// RawLine is one input linestring (an OSM way) before topology cleaning.
type RawLine struct {
	ID         int
	Geometry   []Coordinate
	Attributes map[string]string
}

// RawPoint is one external point (a POI or a required endpoint) to be
// attached to the network by the connector builder.
type RawPoint struct {
	ID         int
	Geometry   Coordinate
	Attributes map[string]string
}

// Recognized attribute keys the core reads off Arc.Attributes.
const (
	AttrOneway   = "oneway"
	AttrJunction = "junction"
	AttrOSMURL   = "osm_url"

	JunctionRoundabout = "roundabout"
	JunctionJughandle  = "jughandle"
	OnewayYes          = "yes"
)

// Arc is one directed or undirected edge of the cleaned network.
//
// An Arc with Status StatusAdded always has exactly two coordinates (a
// synthetic connector). TopoUUID is unique within one cleaner run: forward
// arcs carry their split/added identifier bare ("10_0", "added_3"); only the
// backward twin an vehicle-mode graph expansion produces carries an
// explicit "_backward" suffix (see netgraph.Build), matching the
// identifiers spec.md's own worked examples (§8 S1) use.
type Arc struct {
	TopoUUID   string
	Geometry   []Coordinate
	Status     TopoStatus
	Direction  Direction
	Attributes map[string]string
	length     float64
}

// New builds an Arc with its length precomputed from geometry. Geometry
// must already be in the arc's effective direction (Forward).
func New(topoUUID string, geometry []Coordinate, status TopoStatus, attributes map[string]string) *Arc {
	if attributes == nil {
		attributes = map[string]string{}
	}

	a := &Arc{
		TopoUUID:   topoUUID,
		Geometry:   geometry,
		Status:     status,
		Direction:  Forward,
		Attributes: attributes,
	}
	a.length = computeLength(geometry)

	return a
}

// Reversed returns a new Arc representing this arc traversed backward: its
// geometry reversed, Direction set to Backward, and TopoUUID suffixed with
// "_backward". Attributes and Status are shared (carry-through tags never
// change with direction); Length is identical since ellipsoidal distance is
// symmetric.
func (a *Arc) Reversed() *Arc {
	reversedGeom := make([]Coordinate, len(a.Geometry))
	for i, c := range a.Geometry {
		reversedGeom[len(a.Geometry)-1-i] = c
	}

	return &Arc{
		TopoUUID:   a.TopoUUID + "_backward",
		Geometry:   reversedGeom,
		Status:     a.Status,
		Direction:  Backward,
		Attributes: a.Attributes,
		length:     a.length,
	}
}

// FromPoint is the first coordinate of Geometry.
func (a *Arc) FromPoint() Coordinate { return a.Geometry[0] }

// ToPoint is the last coordinate of Geometry.
func (a *Arc) ToPoint() Coordinate { return a.Geometry[len(a.Geometry)-1] }

// Length is the precomputed ellipsoidal length of Geometry, in meters.
func (a *Arc) Length() float64 { return a.length }

// IsOneway reports whether attributes mark this arc as forward-only.
func (a *Arc) IsOneway() bool { return a.Attributes[AttrOneway] == OnewayYes }

// IsJunctionLoop reports whether attributes mark this arc as part of a
// roundabout or jughandle, which inhibits reverse-direction expansion.
func (a *Arc) IsJunctionLoop() bool {
	switch a.Attributes[AttrJunction] {
	case JunctionRoundabout, JunctionJughandle:
		return true
	default:
		return false
	}
}

// ToRecord returns the emitted external record surface (§6): topo_uuid,
// topo_status, direction, geometry, and all carry-through tag keys.
func (a *Arc) ToRecord() map[string]any {
	record := map[string]any{
		"topo_uuid":   a.TopoUUID,
		"topo_status": string(a.Status),
		"direction":   string(a.Direction),
		"geometry":    a.Geometry,
	}
	for k, v := range a.Attributes {
		record[k] = v
	}

	return record
}

func computeLength(geometry []Coordinate) float64 {
	lons := make([]float64, len(geometry))
	lats := make([]float64, len(geometry))
	for i, c := range geometry {
		lons[i] = c.Lon
		lats[i] = c.Lat
	}

	return geodesy.LineLength(lons, lats)
}
