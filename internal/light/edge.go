package light

// Edge is one lateral boundary of a beam. Edges are immutable values:
// splitting a beam builds new edges, it never rewrites existing ones.
type Edge struct {
	// Source is where the edge starts and Sink where it stops, either at the
	// beam's natural end or where an obstacle truncated it.
	Source Vec2
	Sink   Vec2
	// Direction is the unit travel direction; Normal is Direction rotated
	// +90 degrees.
	Direction Vec2
	Normal    Vec2
	// Strength is how far the edge could travel before its light is spent.
	// Length is how far it actually travels; Length <= Strength always.
	Strength float64
	Length   float64
	// Bound is the normalized [0,1] position across the projected image used
	// to sample the projection, 0 at the beam's right edge and 1 at its left.
	Bound float64
}

// NewEdge builds an edge from its source, unit direction, strength, actual
// length and image bound. Length is clamped to Strength.
func NewEdge(source, direction Vec2, strength, length, bound float64) Edge {
	if length > strength {
		length = strength
	}
	if length < 0 {
		length = 0
	}
	return Edge{
		Source:    source,
		Sink:      source.Add(direction.Scale(length)),
		Direction: direction,
		Normal:    direction.LeftNormal(),
		Strength:  strength,
		Length:    length,
		Bound:     bound,
	}
}

// Remaining is the travel distance left after truncation.
func (e Edge) Remaining() float64 {
	return e.Strength - e.Length
}
