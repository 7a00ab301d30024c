package light

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Beam is a trapezoid-shaped region of colored light bounded by a left and a
// right edge. Beams are rebuilt wholesale whenever anything upstream changes;
// nothing ever mutates a beam's geometry in place.
type Beam struct {
	// image is the projected texture. It is opaque to the engine and may be
	// nil for headless scenes.
	image      *ebiten.Image
	components Components

	left  Edge
	right Edge

	// origin is the midpoint of the beam's cross-section. direction is the
	// beam's forward axis, independent of the edge directions which may
	// converge or diverge. normal is direction rotated +90 degrees.
	origin    Vec2
	direction Vec2
	normal    Vec2
	width     float64

	// intersection is the vanishing point where the two edge rays converge.
	// converges is false for collimated beams, whose edges never meet.
	intersection Vec2
	converges    bool

	// interactor is the obstacle that truncated this beam, nil for beams
	// that run to their natural end. emitter is the interactor that produced
	// this beam, nil for beams straight out of a projector. Both are soft
	// associations, never ownership.
	interactor *Interactor
	emitter    *Interactor

	// children indexes the beams this one spawned, within the owning
	// BeamTree's arena. Tracked for cleanup propagation only.
	children []int
}

// NewBeam builds a beam between two edges, deriving the origin from the edge
// sources and the forward axis from the cross-section.
func NewBeam(img *ebiten.Image, components Components, left, right Edge) Beam {
	direction := left.Source.Sub(right.Source).Rotate(-math.Pi / 2).Normalize()
	if (direction == Vec2{}) {
		direction = right.Direction
	}
	return NewBeamDirected(img, components, left, right, direction)
}

// NewBeamDirected is NewBeam with an explicit forward axis, for beams whose
// cross-section is not perpendicular to their travel (e.g. a beam continuing
// past an oblique obstacle face).
func NewBeamDirected(img *ebiten.Image, components Components, left, right Edge, direction Vec2) Beam {
	intersection, converges := RayIntersection(left.Source, left.Direction, right.Source, right.Direction)
	return Beam{
		image:        img,
		components:   components,
		left:         left,
		right:        right,
		origin:       left.Source.Add(right.Source).Scale(0.5),
		direction:    direction,
		normal:       direction.LeftNormal(),
		width:        left.Source.Sub(right.Source).Length(),
		intersection: intersection,
		converges:    converges,
	}
}

func (b *Beam) Left() Edge { return b.left }
func (b *Beam) Right() Edge { return b.right }
func (b *Beam) Origin() Vec2 { return b.origin }
func (b *Beam) Direction() Vec2 { return b.direction }
func (b *Beam) Normal() Vec2 { return b.normal }
func (b *Beam) Width() float64 { return b.width }
func (b *Beam) Components() Components { return b.components }
func (b *Beam) Children() []int { return b.children }

// Interactor returns the obstacle that truncated this beam, or nil.
func (b *Beam) Interactor() *Interactor { return b.interactor }

// Intersection returns the vanishing point of the two edge rays. The bool is
// false for collimated beams.
func (b *Beam) Intersection() (Vec2, bool) { return b.intersection, b.converges }

// IsPointInBeam reports whether point lies inside the beam: in front of the
// cross-section, between both edges, and short of the far end cap.
func (b *Beam) IsPointInBeam(point Vec2) bool {
	if point.Sub(b.origin).Dot(b.direction) <= 0.0 {
		return false
	}

	inFrontOfLeft := b.left.Normal.Dot(point.Sub(b.left.Source)) < 0.0
	inFrontOfRight := b.right.Normal.Dot(point.Sub(b.right.Source)) > 0.0
	if inFrontOfLeft != inFrontOfRight {
		return false
	}

	endPos, endDir := b.endCap()
	return endDir.Dot(point.Sub(endPos)) > 0.0
}

// endCap returns the midpoint of the two edge sinks and the cap's inward
// facing, flipped by which side the midpoint falls relative to the left
// normal.
func (b *Beam) endCap() (Vec2, Vec2) {
	endPos := b.left.Sink.Add(b.right.Sink).Scale(0.5)
	flip := math.Pi / 2
	if b.left.Normal.Dot(endPos) > 0.0 {
		flip = -flip
	}
	endDir := b.left.Sink.Sub(b.right.Sink).Rotate(flip).Normalize()
	return endPos, endDir
}

// IsEdgeInBeam reports whether the segment start->end overlaps the beam:
// either an endpoint lies between the beam edges, or the segment crosses the
// left edge, the right edge, or the far end cap. Segments entirely behind
// the cross-section are rejected outright.
func (b *Beam) IsEdgeInBeam(start, end Vec2) bool {
	if start.Sub(b.origin).Dot(b.direction) <= 0.0 && end.Sub(b.origin).Dot(b.direction) <= 0.0 {
		return false
	}

	if (b.right.Normal.Dot(start.Sub(b.right.Source)) > 0.0) == (b.left.Normal.Dot(start.Sub(b.left.Source)) < 0.0) {
		return true
	}
	if (b.right.Normal.Dot(end.Sub(b.right.Source)) > 0.0) == (b.left.Normal.Dot(end.Sub(b.left.Source)) < 0.0) {
		return true
	}

	edgeDir := end.Sub(start).Normalize()

	if _, ok := segmentIntersectionDir(start, end, edgeDir, b.left.Source, b.left.Sink, b.left.Direction); ok {
		return true
	}
	if _, ok := segmentIntersectionDir(start, end, edgeDir, b.right.Source, b.right.Sink, b.right.Direction); ok {
		return true
	}
	if _, ok := SegmentIntersection(start, end, b.right.Sink, b.left.Sink); ok {
		return true
	}

	return false
}

// ImageCropped returns the sub-region of the projected texture between the
// two edge bounds, for the renderer to draw at the beam's end. Bounds map
// onto the image's vertical axis, bound 1 at the top. Nil when the beam
// carries no image.
func (b *Beam) ImageCropped() *ebiten.Image {
	if b.image == nil {
		return nil
	}
	r := b.image.Bounds()
	h := float64(r.Dy())
	top := r.Min.Y + int(math.Round((1.0-b.left.Bound)*h))
	bottom := r.Min.Y + int(math.Round((1.0-b.right.Bound)*h))
	if top < r.Min.Y {
		top = r.Min.Y
	}
	if bottom > r.Max.Y {
		bottom = r.Max.Y
	}
	if bottom <= top {
		bottom = top + 1
	}
	sub := image.Rect(r.Min.X, top, r.Max.X, bottom)
	return b.image.SubImage(sub).(*ebiten.Image)
}
