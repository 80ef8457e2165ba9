package topology

import (
	"fmt"
	"sort"

	"github.com/amauryval/osmrx-go/arc"
	"github.com/amauryval/osmrx-go/interpolate"
)

// defaultSubInterpolationLevel is INTERPOLATION_LINE_LEVEL from spec.md
// §4.5's optional output_line_improved mode.
const defaultSubInterpolationLevel = 4

// splitLines implements the line splitter (C6): each line is cut at every
// interior coordinate that belongs to the intersection set, producing
// child arcs in split-index order. Lines (or children) left with fewer
// than two distinct coordinates are discarded silently.
//
// When subInterpolate is true, every emitted arc is further densified by
// defaultSubInterpolationLevel and chopped into consecutive two-vertex
// sub-arcs (spec.md §4.5's output_line_improved mode).
func splitLines(lines map[int]*workingLine, intersections map[arc.Coordinate]bool, subInterpolate bool) ([]*arc.Arc, error) {
	ids := make([]int, 0, len(lines))
	for id := range lines {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var out []*arc.Arc
	for _, id := range ids {
		line := lines[id]
		arcs := splitOneLine(line, intersections)
		for _, a := range arcs {
			if !subInterpolate {
				out = append(out, a)
				continue
			}
			sub, err := subInterpolateArc(a)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	}

	return out, nil
}

func splitOneLine(line *workingLine, intersections map[arc.Coordinate]bool) []*arc.Arc {
	geom := line.geometry
	if len(distinctCoords(geom)) < 2 {
		return nil
	}

	var inter []int // indices of interior coordinates in the intersection set
	for i := 1; i < len(geom)-1; i++ {
		if intersections[geom[i]] {
			inter = append(inter, i)
		}
	}

	if len(inter) == 0 {
		if len(distinctCoords(geom)) < 2 {
			return nil
		}

		return []*arc.Arc{arc.New(fmt.Sprintf("%d", line.id), geom, arc.StatusUnchanged, line.attributes)}
	}

	var out []*arc.Arc
	start := 0
	splitIdx := 0
	for _, cut := range inter {
		segment := geom[start : cut+1] // includes the cut coordinate, closing this child
		if len(distinctCoords(segment)) >= 2 {
			out = append(out, arc.New(
				fmt.Sprintf("%d_%d", line.id, splitIdx),
				append([]arc.Coordinate(nil), segment...),
				arc.StatusSplit,
				line.attributes,
			))
			splitIdx++
		}
		start = cut // the cut coordinate also opens the next child
	}
	tail := geom[start:]
	if len(distinctCoords(tail)) >= 2 {
		out = append(out, arc.New(
			fmt.Sprintf("%d_%d", line.id, splitIdx),
			append([]arc.Coordinate(nil), tail...),
			arc.StatusSplit,
			line.attributes,
		))
	}

	return out
}

func subInterpolateArc(a *arc.Arc) ([]*arc.Arc, error) {
	dense, err := interpolate.Densify(a.Geometry, defaultSubInterpolationLevel)
	if err != nil {
		return nil, err
	}

	var out []*arc.Arc
	for i := 0; i+1 < len(dense); i++ {
		out = append(out, arc.New(
			fmt.Sprintf("%s_%d", a.TopoUUID, i),
			[]arc.Coordinate{dense[i], dense[i+1]},
			a.Status,
			a.Attributes,
		))
	}

	return out, nil
}

func distinctCoords(geom []arc.Coordinate) map[arc.Coordinate]bool {
	set := make(map[arc.Coordinate]bool, len(geom))
	for _, c := range geom {
		set[c] = true
	}

	return set
}
