package topology

import "github.com/amauryval/osmrx-go/arc"

// findIntersections implements the intersection finder (C5): a coordinate
// is a topological intersection iff it occurs at least twice across every
// coordinate list of every (possibly extended) line.
func findIntersections(lines map[int]*workingLine) map[arc.Coordinate]bool {
	counts := make(map[arc.Coordinate]int)
	for _, l := range lines {
		for _, c := range l.geometry {
			counts[c]++
		}
	}

	intersections := make(map[arc.Coordinate]bool, len(counts))
	for c, n := range counts {
		if n >= 2 {
			intersections[c] = true
		}
	}

	return intersections
}
