// Package osmrx turns raw OpenStreetMap way/node geometry into a routable
// network and answers shortest-path and isochrone queries over it.
//
// The pipeline is a sequence of pure stages, each returning the next
// stage's input (spec.md §9's re-architecture note, replacing the source's
// property-setter-driven recomputation):
//
//	Request{mode, geo filter} → RawData → CleanedArcs → Graph → query
//
//	  • osmhttp    fetches RawData from Overpass/Nominatim.
//	  • osmrecord  decodes RawData into arc.RawLine/arc.RawPoint.
//	  • topology   cleans raw geometry into Arc records (CleanedArcs).
//	  • netgraph   builds a routable Graph from CleanedArcs.
//	  • query      answers shortest-path and isochrone queries over Graph.
//
// Request ties these stages together for the common case of "fetch from
// OSM, clean, build a graph". Callers who already have RawLine/RawPoint
// data (e.g. from a file) can skip straight to topology.Clean.
package osmrx
