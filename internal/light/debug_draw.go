package light

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug drawing renders the current geometric state in world coordinates.
// None of this is part of the simulation contract; it only visualizes it.

var (
	debugWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	debugCyan  = color.RGBA{G: 255, B: 255, A: 255}
	debugRed   = color.RGBA{R: 255, A: 255}
	debugGreen = color.RGBA{G: 255, A: 255}
)

func strokeSegment(screen *ebiten.Image, a, b Vec2, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, false)
}

func strokePolygon(screen *ebiten.Image, points []Vec2, width float32, clr color.Color) {
	for i := range points {
		strokeSegment(screen, points[i], points[(i+1)%len(points)], width, clr)
	}
}

func fillDot(screen *ebiten.Image, at Vec2, radius float32, clr color.Color) {
	vector.FillCircle(screen, float32(at.X), float32(at.Y), radius, clr, false)
}

// DebugDraw outlines the beam trapezoid in its light color and marks the
// forward axis (cyan) and the two edge normals (red right, green left).
func (b *Beam) DebugDraw(screen *ebiten.Image) {
	outline := []Vec2{b.left.Source, b.left.Sink, b.right.Sink, b.right.Source}
	strokePolygon(screen, outline, 1, b.components.Color())

	fillDot(screen, b.origin.Add(b.direction.Scale(20)), 5, debugCyan)
	fillDot(screen, b.right.Source.Add(b.right.Normal.Scale(10)), 3, debugRed)
	fillDot(screen, b.left.Source.Add(b.left.Normal.Scale(10)), 3, debugGreen)
}

// DebugDraw renders every beam in the tree.
func (t *BeamTree) DebugDraw(screen *ebiten.Image) {
	for i := range t.beams {
		t.beams[i].DebugDraw(screen)
	}
}

// DebugDraw outlines the interactor polygon, its orientation, and each edge
// normal.
func (it *Interactor) DebugDraw(screen *ebiten.Image) {
	points := it.BoundsAdjusted()
	normals := it.NormalsAdjusted()

	strokeSegment(screen, it.position, it.position.Add(it.direction.Scale(15)), 1, debugWhite)
	strokePolygon(screen, points, 1, debugWhite)
	for i := range normals {
		strokeSegment(screen, points[i], points[i].Add(normals[i].Scale(10)), 1, debugRed)
	}
}

// DebugDraw renders every active interactor. Inactive interactors have no
// edges, so they draw nothing.
func (m *Manager) DebugDraw(screen *ebiten.Image) {
	for _, it := range m.active {
		it.DebugDraw(screen)
	}
}

// DebugDraw renders the projector housing, its facing, and its beam tree.
func (p *Projector) DebugDraw(screen *ebiten.Image) {
	r := Vec2{X: -p.direction.Y, Y: p.direction.X}
	half := r.Scale(projectorOutputWidth / 2)
	back := p.direction.Scale(32)
	housing := []Vec2{
		p.origin.Add(half),
		p.origin.Sub(half),
		p.origin.Sub(half).Sub(back),
		p.origin.Add(half).Sub(back),
	}
	strokePolygon(screen, housing, 1, debugWhite)
	strokeSegment(screen, p.origin, p.origin.Add(p.direction.Scale(15)), 1, debugWhite)

	if p.tree != nil {
		p.tree.DebugDraw(screen)
	}
}

// DebugDraw renders the whole scene: interactors first, beams on top.
func (s *Scene) DebugDraw(screen *ebiten.Image) {
	s.manager.DebugDraw(screen)
	for _, p := range s.projectors {
		p.DebugDraw(screen)
	}
}
