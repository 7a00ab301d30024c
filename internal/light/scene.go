package light

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene holds everything the lighting calculations need: the interactor
// manager and the projectors feeding beams into it. Loading and saving scene
// files is the surrounding application's problem.
type Scene struct {
	manager    *Manager
	projectors []*Projector
}

// NewScene wires the projectors to the manager and parents them to the
// returned scene.
func NewScene(manager *Manager, projectors ...*Projector) *Scene {
	s := &Scene{manager: manager, projectors: projectors}
	for _, p := range projectors {
		p.SetParent(s)
	}
	return s
}

func (s *Scene) Manager() *Manager { return s.manager }

func (s *Scene) Projectors() []*Projector { return s.projectors }

// Repropagate rebuilds every live projector's beam tree. Call it after
// moving or recoloring interactors, which projectors cannot observe on
// their own.
func (s *Scene) Repropagate() {
	for _, p := range s.projectors {
		p.Refresh()
	}
}

// NewTestScene mirrors the original demo: one white projector at the origin
// firing along +X with strength 150, one full-pass filter at (75, 30) of
// size 30x100. image may be nil for headless runs.
func NewTestScene(image *ebiten.Image) *Scene {
	manager := NewManager()
	manager.AddInteractor(NewFilter(Vec2{X: 75, Y: 30}, Vec2{X: 1, Y: 0}, 30, 100, White), true)

	projector := NewProjector(image, White, 150.0, Vec2{}, Vec2{X: 1, Y: 0})
	scene := NewScene(manager, projector)
	projector.TurnOn()
	return scene
}

// NewColorLabScene is the richer demo used by the game shell: a corridor of
// color filters the player can push a projector's beam through. Coordinates
// sit in a 1280x720 world so the shell can draw them directly.
func NewColorLabScene(image *ebiten.Image) *Scene {
	manager := NewManager()

	yellow := Components{R: true, G: true}
	magenta := Components{R: true, B: true}
	manager.AddInteractor(NewFilter(Vec2{X: 300, Y: 360}, Vec2{X: 1, Y: 0}, 30, 220, yellow), true)
	manager.AddInteractor(NewFilter(Vec2{X: 520, Y: 420}, Vec2{X: 1, Y: 0}, 30, 180, magenta), true)
	manager.AddInteractor(NewFilter(Vec2{X: 700, Y: 320}, Vec2{X: 1, Y: 1}.Normalize(), 26, 200, Red), true)
	// A prism is registered to keep the unimplemented-interaction path
	// visible in the HUD counters.
	prism, _ := NewInteractor(KindPrism, Vec2{X: 880, Y: 380}, Vec2{X: 1, Y: 0}, []Vec2{
		{-30, -26},
		{0, 26},
		{30, -26},
	}, White)
	manager.AddInteractor(prism, true)

	projector := NewProjector(image, White, 900.0, Vec2{X: 80, Y: 360}, Vec2{X: 1, Y: 0})
	scene := NewScene(manager, projector)
	projector.TurnOn()
	return scene
}

// RotateProjector reorients a projector by heading angle in radians, keeping
// the direction unit length.
func RotateProjector(p *Projector, heading float64) bool {
	return p.SetDirection(Vec2{X: math.Cos(heading), Y: math.Sin(heading)})
}
