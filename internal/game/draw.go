package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})

	// World content renders at native coordinates, camera applied on blit.
	g.worldBuf.Clear()
	g.scene.DebugDraw(g.worldBuf)

	var cam ebiten.GeoM
	cam.Translate(-g.camX, -g.camY)
	cam.Scale(g.camZoom, g.camZoom)
	cam.Translate(worldWidth/2, worldHeight/2)
	screen.DrawImage(g.worldBuf, &ebiten.DrawImageOptions{GeoM: cam})

	if g.showHUD {
		g.drawHUD(screen)
	}
	if g.statusTicks > 0 {
		ebitenutil.DebugPrintAt(screen, g.statusMsg, 8, worldHeight-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return worldWidth, worldHeight
}
