package topology

import "github.com/amauryval/osmrx-go/arc"

// Options configures a Clean run.
type Options struct {
	// SubInterpolate enables spec.md §4.5's output_line_improved mode:
	// every split-stage arc is densified and chopped into two-vertex
	// sub-arcs for finer routing granularity.
	SubInterpolate bool
}

// Option is a functional option for Clean.
type Option func(*Options)

// WithSubInterpolation enables output_line_improved sub-interpolation.
func WithSubInterpolation() Option {
	return func(o *Options) { o.SubInterpolate = true }
}

// Clean runs the full topology cleaner pipeline (C4 → C5 → C6): it attaches
// every external point to the network via a connector arc, finds every
// true topological intersection, and splits lines at those intersections,
// returning every emitted arc. Connector arcs are returned first (sorted by
// point ID), followed by split/unchanged arcs (sorted by parent line ID,
// then split index, then sub-interpolation index) — the deterministic
// emission order spec.md §5 requires regardless of the connector builder's
// internal parallel bucket processing.
func Clean(lines []arc.RawLine, points []arc.RawPoint, opts ...Option) ([]*arc.Arc, error) {
	if len(lines) == 0 {
		return nil, errEmptyLineSet()
	}

	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	working, connectors, err := buildConnectors(lines, points)
	if err != nil {
		return nil, err
	}

	intersections := findIntersections(working)

	splitArcs, err := splitLines(working, intersections, cfg.SubInterpolate)
	if err != nil {
		return nil, err
	}

	out := make([]*arc.Arc, 0, len(connectors)+len(splitArcs))
	out = append(out, connectors...)
	out = append(out, splitArcs...)

	return out, nil
}
