package game

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DragonMoffon/Acerola-Jam-0/internal/light"
)

const (
	worldWidth  = 1280
	worldHeight = 720

	panSpeed     = 4.0  // projector/filter movement per tick, world units
	rotateSpeed  = 0.03 // projector rotation per tick, radians
	strengthStep = 20.0
	strengthMin  = 100.0

	statusFlashTicks = 180
)

// Game is the interactive light-lab shell: one projector the player steers
// through a scene of filters, with the full beam tree rebuilt on every change.
type Game struct {
	scene     *light.Scene
	projector *light.Projector
	heading   float64 // projector facing, radians

	selected int // index into the active interactor list

	showHUD  bool
	prevKeys map[ebiten.Key]bool

	// Camera pan + zoom, applied when blitting the world buffer.
	camX    float64
	camY    float64
	camZoom float64

	worldBuf *ebiten.Image

	// Transient HUD status line ("report copied" etc).
	statusMsg   string
	statusTicks int
}

func New() *Game {
	scene := light.NewColorLabScene(MakeProjectionTexture())
	return &Game{
		scene:     scene,
		projector: scene.Projectors()[0],
		showHUD:   true,
		prevKeys:  make(map[ebiten.Key]bool),
		camX:      worldWidth / 2,
		camY:      worldHeight / 2,
		camZoom:   1.0,
		worldBuf:  ebiten.NewImage(worldWidth, worldHeight),
	}
}

func (g *Game) Update() error {
	g.handleInput()
	if g.statusTicks > 0 {
		g.statusTicks--
	}
	return nil
}

// handleInput maps held keys to continuous motion and edge-triggered keys to
// toggles, mirroring the previous frame's key state for the edge detection.
func (g *Game) handleInput() {
	current := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		current[k] = ebiten.IsKeyPressed(k)
		return current[k] && !g.prevKeys[k]
	}

	// Projector movement: arrow keys, held.
	move := light.Vec2{}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X += panSpeed
	}
	if move != (light.Vec2{}) {
		g.projector.SetOrigin(g.projector.Origin().Add(move))
	}

	// Projector rotation: Q/E, held.
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.heading -= rotateSpeed
		light.RotateProjector(g.projector, g.heading)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.heading += rotateSpeed
		light.RotateProjector(g.projector, g.heading)
	}

	// Space: projector on/off.
	if pressed(ebiten.KeySpace) {
		if g.projector.On() {
			g.projector.TurnOff()
		} else {
			g.projector.TurnOn()
		}
	}

	// Bracket keys: strength down/up.
	if pressed(ebiten.KeyBracketLeft) {
		s := g.projector.Strength() - strengthStep
		if s < strengthMin {
			s = strengthMin
		}
		g.projector.SetStrength(s)
	}
	if pressed(ebiten.KeyBracketRight) {
		g.projector.SetStrength(g.projector.Strength() + strengthStep)
	}

	// Tab: cycle the selected interactor.
	active := g.scene.Manager().Active()
	if pressed(ebiten.KeyTab) && len(active) > 0 {
		g.selected = (g.selected + 1) % len(active)
	}

	// IJKL: move the selected interactor. Projectors cannot see interactor
	// changes, so any change forces a scene-wide repropagation.
	if len(active) > 0 {
		it := active[g.selected%len(active)]
		delta := light.Vec2{}
		if ebiten.IsKeyPressed(ebiten.KeyI) {
			delta.Y -= panSpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyK) {
			delta.Y += panSpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyJ) {
			delta.X -= panSpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyL) {
			delta.X += panSpeed
		}
		if delta != (light.Vec2{}) && it.SetPosition(it.Position().Add(delta)) {
			g.scene.Repropagate()
		}

		// R: cycle the selected interactor's color.
		if pressed(ebiten.KeyR) && it.SetComponents(nextComponents(it.Components())) {
			g.scene.Repropagate()
		}
	}

	// C: copy the scene report to the system clipboard.
	if pressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.scene.DebugReport()); err != nil {
			g.flash("clipboard error: " + err.Error())
		} else {
			g.flash("scene report copied to clipboard")
		}
	}

	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	// Camera zoom: =/-.
	const zoomMin, zoomMax = 0.5, 3.0
	if pressed(ebiten.KeyEqual) {
		g.camZoom *= 1.25
	}
	if pressed(ebiten.KeyMinus) {
		g.camZoom /= 1.25
	}
	if g.camZoom < zoomMin {
		g.camZoom = zoomMin
	}
	if g.camZoom > zoomMax {
		g.camZoom = zoomMax
	}

	g.prevKeys = current
}

func (g *Game) flash(msg string) {
	g.statusMsg = msg
	g.statusTicks = statusFlashTicks
}

// nextComponents steps through the channel combinations a filter can carry,
// skipping the empty set.
func nextComponents(c light.Components) light.Components {
	bits := 0
	if c.R {
		bits |= 4
	}
	if c.G {
		bits |= 2
	}
	if c.B {
		bits |= 1
	}
	bits = (bits + 1) % 8
	if bits == 0 {
		bits = 1
	}
	return light.Components{R: bits&4 != 0, G: bits&2 != 0, B: bits&1 != 0}
}
