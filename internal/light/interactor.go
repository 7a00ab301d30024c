package light

import (
	"errors"
	"math"
)

// ErrNotImplemented marks an interaction or registry transition that has no
// modeled behavior yet. Callers can tell it apart from a beam that was
// legitimately absorbed, which is a nil child set with a nil error.
var ErrNotImplemented = errors.New("light: not implemented")

// ErrDegeneratePolygon is returned when an interactor is constructed with
// fewer than three vertices.
var ErrDegeneratePolygon = errors.New("light: interactor polygon needs at least 3 vertices")

// InteractorKind enumerates the closed set of obstacle variants.
type InteractorKind int

const (
	// KindFilter passes a beam through recolored to the channels both the
	// beam and the filter carry, absorbing it when none are shared.
	KindFilter InteractorKind = iota
	// KindConcave, KindConvex and KindPrism are declared extension points
	// for reflective and refractive optics. Their interactions return
	// ErrNotImplemented.
	KindConcave
	KindConvex
	KindPrism
)

func (k InteractorKind) String() string {
	switch k {
	case KindFilter:
		return "filter"
	case KindConcave:
		return "concave"
	case KindConvex:
		return "convex"
	case KindPrism:
		return "prism"
	}
	return "unknown"
}

// Interactor is a static polygonal obstacle that transforms beams striking
// it. The vertex list is clockwise and relative to the position; per-edge
// outward normals are derived once at construction.
type Interactor struct {
	kind      InteractorKind
	position  Vec2
	direction Vec2
	bounds    []Vec2
	normals   []Vec2

	components Components

	// Soft handles to the beams arriving at and leaving this interactor.
	// Handles from killed trees go stale silently; nothing here owns a beam.
	incoming []BeamHandle
	outgoing []BeamHandle
}

// NewInteractor builds an obstacle of the given kind. bounds must hold at
// least three vertices, clockwise, relative to position.
func NewInteractor(kind InteractorKind, position, direction Vec2, bounds []Vec2, components Components) (*Interactor, error) {
	if len(bounds) < 3 {
		return nil, ErrDegeneratePolygon
	}
	return newInteractor(kind, position, direction, bounds, components), nil
}

func newInteractor(kind InteractorKind, position, direction Vec2, bounds []Vec2, components Components) *Interactor {
	owned := make([]Vec2, len(bounds))
	copy(owned, bounds)
	normals := make([]Vec2, len(owned))
	for i := range owned {
		edge := owned[(i+1)%len(owned)].Sub(owned[i])
		normals[i] = edge.LeftNormal().Normalize()
	}
	return &Interactor{
		kind:       kind,
		position:   position,
		direction:  direction,
		bounds:     owned,
		normals:    normals,
		components: components,
	}
}

// NewFilter builds a rectangular color filter of the given size, centered on
// position and rotated to face direction.
func NewFilter(position, direction Vec2, width, height float64, components Components) *Interactor {
	bounds := []Vec2{
		{-width / 2, -height / 2},
		{-width / 2, height / 2},
		{width / 2, height / 2},
		{width / 2, -height / 2},
	}
	return newInteractor(KindFilter, position, direction, bounds, components)
}

func (it *Interactor) Kind() InteractorKind { return it.kind }
func (it *Interactor) Position() Vec2 { return it.position }
func (it *Interactor) Direction() Vec2 { return it.direction }
func (it *Interactor) Bounds() []Vec2 { return it.bounds }
func (it *Interactor) Normals() []Vec2 { return it.normals }
func (it *Interactor) Components() Components { return it.components }

// SetPosition updates the obstacle position and reports whether it changed.
// The caller decides whether to re-propagate affected projectors.
func (it *Interactor) SetPosition(position Vec2) bool {
	if position == it.position {
		return false
	}
	it.position = position
	return true
}

// SetDirection updates the obstacle orientation and reports whether it
// changed.
func (it *Interactor) SetDirection(direction Vec2) bool {
	if direction == it.direction {
		return false
	}
	it.direction = direction
	return true
}

// SetComponents updates the filter color and reports whether it changed.
func (it *Interactor) SetComponents(components Components) bool {
	if components == it.components {
		return false
	}
	it.components = components
	return true
}

// BoundsAdjusted returns the polygon vertices rotated to the obstacle's
// orientation and translated to its position.
func (it *Interactor) BoundsAdjusted() []Vec2 {
	heading := it.direction.Heading()
	out := make([]Vec2, len(it.bounds))
	for i, bound := range it.bounds {
		out[i] = it.position.Add(bound.Rotate(heading))
	}
	return out
}

// NormalsAdjusted returns the per-edge outward normals rotated to the
// obstacle's orientation.
func (it *Interactor) NormalsAdjusted() []Vec2 {
	heading := it.direction.Heading()
	out := make([]Vec2, len(it.normals))
	for i, normal := range it.normals {
		out[i] = normal.Rotate(heading)
	}
	return out
}

// EdgeAdjusted returns the world-space start, end and outward normal of the
// polygon edge at index.
func (it *Interactor) EdgeAdjusted(index int) (Vec2, Vec2, Vec2) {
	heading := it.direction.Heading()
	start := it.position.Add(it.bounds[index].Rotate(heading))
	end := it.position.Add(it.bounds[(index+1)%len(it.bounds)].Rotate(heading))
	normal := it.normals[index].Rotate(heading)
	return start, end, normal
}

// CalculateInteraction transforms an incoming beam that was truncated by one
// of this obstacle's edges into the beams continuing past it. A nil slice
// with a nil error means the beam was fully absorbed. Kinds without modeled
// behavior return ErrNotImplemented.
func (it *Interactor) CalculateInteraction(beam *Beam, edge ObstacleEdge) ([]Beam, error) {
	switch it.kind {
	case KindFilter:
		return it.filterInteraction(beam), nil
	default:
		return nil, ErrNotImplemented
	}
}

// filterInteraction recolors the beam to the shared channel set and passes
// it onward from the truncation points with whatever strength remains.
func (it *Interactor) filterInteraction(beam *Beam) []Beam {
	mixed := beam.components.And(it.components)
	if !mixed.Any() {
		return nil
	}

	leftRemaining := beam.left.Remaining()
	rightRemaining := beam.right.Remaining()
	if leftRemaining <= 0 && rightRemaining <= 0 {
		return nil
	}
	leftRemaining = math.Max(leftRemaining, 0)
	rightRemaining = math.Max(rightRemaining, 0)

	left := NewEdge(beam.left.Sink, beam.left.Direction, leftRemaining, leftRemaining, beam.left.Bound)
	right := NewEdge(beam.right.Sink, beam.right.Direction, rightRemaining, rightRemaining, beam.right.Bound)

	return []Beam{NewBeamDirected(beam.image, mixed, left, right, beam.direction)}
}

// noteIncoming records a soft handle to a beam arriving at this obstacle.
func (it *Interactor) noteIncoming(h BeamHandle) {
	it.incoming = noteHandle(it.incoming, h)
}

// noteOutgoing records a soft handle to a beam this obstacle produced.
func (it *Interactor) noteOutgoing(h BeamHandle) {
	it.outgoing = noteHandle(it.outgoing, h)
}

func (it *Interactor) dropIncoming(h BeamHandle) {
	it.incoming = dropHandle(it.incoming, h)
}

func (it *Interactor) dropOutgoing(h BeamHandle) {
	it.outgoing = dropHandle(it.outgoing, h)
}

// IncomingBeams resolves the live incoming handles against the given tree,
// pruning any that have gone stale.
func (it *Interactor) IncomingBeams(t *BeamTree) []*Beam {
	beams, live := resolveHandles(it.incoming, t)
	it.incoming = live
	return beams
}

// OutgoingBeams resolves the live outgoing handles against the given tree,
// pruning any that have gone stale.
func (it *Interactor) OutgoingBeams(t *BeamTree) []*Beam {
	beams, live := resolveHandles(it.outgoing, t)
	it.outgoing = live
	return beams
}

func noteHandle(handles []BeamHandle, h BeamHandle) []BeamHandle {
	for _, existing := range handles {
		if existing == h {
			return handles
		}
	}
	return append(handles, h)
}

func dropHandle(handles []BeamHandle, h BeamHandle) []BeamHandle {
	for i, existing := range handles {
		if existing == h {
			return append(handles[:i], handles[i+1:]...)
		}
	}
	return handles
}

func resolveHandles(handles []BeamHandle, t *BeamTree) ([]*Beam, []BeamHandle) {
	var beams []*Beam
	live := handles[:0]
	for _, h := range handles {
		if beam := t.Resolve(h); beam != nil {
			beams = append(beams, beam)
			live = append(live, h)
		}
	}
	return beams, live
}
