package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 14

var hudFace = text.NewGoXFace(basicfont.Face7x13)

func (g *Game) drawHUD(screen *ebiten.Image) {
	beams, depth := 0, 0
	if t := g.projector.Tree(); t != nil {
		beams, depth = t.Len(), t.Depth()
	}
	c := g.scene.Manager().Counters()

	selected := "-"
	active := g.scene.Manager().Active()
	if len(active) > 0 {
		it := active[g.selected%len(active)]
		selected = fmt.Sprintf("%d %s %s", g.selected%len(active), it.Kind(), it.Components())
	}

	origin := g.projector.Origin()
	lines := []string{
		fmt.Sprintf("projector: on=%v origin=(%.0f, %.0f) strength=%.0f rebuilds=%d",
			g.projector.On(), origin.X, origin.Y, g.projector.Strength(), g.projector.Rebuilds()),
		fmt.Sprintf("beams=%d depth=%d", beams, depth),
		fmt.Sprintf("edge_tests=%d beams_built=%d max_depth=%d unsupported=%d",
			c.EdgeTests, c.BeamsBuilt, c.MaxDepth, c.Unsupported),
		"selected: " + selected,
		"",
		"arrows move projector   Q/E rotate   space on/off   [/] strength",
		"tab select interactor   IJKL move it   R recolor it",
		"C copy report   =/- zoom   H hide hud",
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, hudFace, op)
	}
}
