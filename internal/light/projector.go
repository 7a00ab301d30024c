package light

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// projectorOutputWidth is the aperture width of every projector, in world
// units.
const projectorOutputWidth = 14.0

// Projector owns the root beam of one light source. Any change to its state
// while it is on and parented destroys the whole beam tree and regenerates
// it from scratch; beams are never patched in place.
type Projector struct {
	image      *ebiten.Image
	components Components
	strength   float64

	origin    Vec2
	direction Vec2

	tree   *BeamTree
	parent *Scene
	on     bool

	// rebuilds counts full tree regenerations, so no-op setters are
	// observable as "counter did not move".
	rebuilds int
}

// NewProjector builds a projector that is off and unparented. image may be
// nil for headless use; the beam cross-section then stays collimated.
func NewProjector(image *ebiten.Image, components Components, strength float64, origin, direction Vec2) *Projector {
	return &Projector{
		image:      image,
		components: components,
		strength:   strength,
		origin:     origin,
		direction:  direction,
	}
}

func (p *Projector) Origin() Vec2 { return p.origin }
func (p *Projector) Direction() Vec2 { return p.direction }
func (p *Projector) Strength() float64 { return p.strength }
func (p *Projector) Components() Components { return p.components }
func (p *Projector) Image() *ebiten.Image { return p.image }
func (p *Projector) On() bool { return p.on }
func (p *Projector) Rebuilds() int { return p.rebuilds }

// Tree returns the live beam tree, nil while the projector is off.
func (p *Projector) Tree() *BeamTree { return p.tree }

// Beams returns every live beam segment for drawing, in propagation order.
func (p *Projector) Beams() []*Beam {
	if p.tree == nil {
		return nil
	}
	out := make([]*Beam, 0, p.tree.Len())
	for i := 0; i < p.tree.Len(); i++ {
		out = append(out, p.tree.Beam(i))
	}
	return out
}

// SetParent attaches the projector to its scene, propagating immediately if
// it is already on.
func (p *Projector) SetParent(parent *Scene) {
	p.parent = parent
	if !p.on {
		return
	}
	p.updateBeams()
}

// TurnOn switches the projector on and builds its beam tree if parented.
func (p *Projector) TurnOn() {
	p.on = true
	if p.parent == nil {
		return
	}
	p.updateBeams()
}

// TurnOff switches the projector off and discards the entire beam tree. An
// off projector retains no live beams.
func (p *Projector) TurnOff() {
	p.on = false
	if p.tree != nil {
		p.tree.Kill()
		p.tree = nil
	}
}

// SetOrigin moves the projector, reporting whether anything changed. Equal
// values are a required no-op: no kill, no rebuild.
func (p *Projector) SetOrigin(origin Vec2) bool {
	if origin == p.origin {
		return false
	}
	p.origin = origin
	p.refresh()
	return true
}

// SetDirection reorients the projector; same no-op contract as SetOrigin.
func (p *Projector) SetDirection(direction Vec2) bool {
	if direction == p.direction {
		return false
	}
	p.direction = direction
	p.refresh()
	return true
}

// SetStrength changes the beam's travel budget; same no-op contract.
func (p *Projector) SetStrength(strength float64) bool {
	if strength == p.strength {
		return false
	}
	p.strength = strength
	p.refresh()
	return true
}

// SetImage swaps the projected texture; same no-op contract.
func (p *Projector) SetImage(image *ebiten.Image) bool {
	if image == p.image {
		return false
	}
	p.image = image
	p.refresh()
	return true
}

// SetComponents changes the projected color; same no-op contract.
func (p *Projector) SetComponents(components Components) bool {
	if components == p.components {
		return false
	}
	p.components = components
	p.refresh()
	return true
}

// Refresh rebuilds the beam tree from current state if the projector is live.
// Scenes call this after moving interactors, which the projector cannot see.
func (p *Projector) Refresh() {
	p.refresh()
}

func (p *Projector) refresh() {
	if !p.on || p.parent == nil {
		return
	}
	p.updateBeams()
}

func (p *Projector) updateBeams() {
	if p.tree != nil {
		p.tree.Kill()
		p.tree = nil
	}
	tree := NewBeamTree()
	tree.PropagateRoot(p.parent.Manager(), p.generateInitialBeam())
	p.tree = tree
	p.rebuilds++
}

// generateInitialBeam builds the root beam: edge sources sit on the aperture
// either side of the origin, edge sinks on the projected image plane a full
// strength away, so the beam widens or narrows from aperture to image.
func (p *Projector) generateInitialBeam() Beam {
	halfWidth := math.Floor(projectorOutputWidth / 2)
	imageHeight := projectorOutputWidth
	if p.image != nil {
		imageHeight = float64(p.image.Bounds().Dy())
	}
	halfImage := math.Floor(imageHeight / 2)

	rotated := p.direction.Rotate(math.Pi / 2)

	imageLocation := p.origin.Add(p.direction.Scale(p.strength))
	imageLeft := imageLocation.Add(rotated.Scale(halfImage))
	imageRight := imageLocation.Sub(rotated.Scale(halfImage))

	sourceLeft := p.origin.Add(rotated.Scale(halfWidth))
	sourceRight := p.origin.Sub(rotated.Scale(halfWidth))

	leftRun := imageLeft.Sub(sourceLeft)
	rightRun := imageRight.Sub(sourceRight)

	left := NewEdge(sourceLeft, leftRun.Normalize(), leftRun.Length(), leftRun.Length(), 1.0)
	right := NewEdge(sourceRight, rightRun.Normalize(), rightRun.Length(), rightRun.Length(), 0.0)

	// The projector's own axis is authoritative; deriving it from the edge
	// sources would smuggle rounding error into every descendant beam.
	return NewBeamDirected(p.image, p.components, left, right, p.direction)
}
