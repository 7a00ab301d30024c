package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// bandColors are the projection texture's horizontal stripes, top to bottom.
// Beam bounds sample this image vertically, so a split beam carries a
// contiguous slice of the stripes.
var bandColors = []color.RGBA{
	{R: 255, A: 255},
	{R: 255, G: 160, A: 255},
	{R: 255, G: 255, A: 255},
	{G: 255, A: 255},
	{G: 200, B: 255, A: 255},
	{B: 255, A: 255},
	{R: 180, B: 255, A: 255},
}

// MakeProjectionTexture builds the image the demo projector shines. The
// texture height also sets the beam's spread: taller image, wider far end.
func MakeProjectionTexture() *ebiten.Image {
	const width, bandHeight = 14, 8
	img := ebiten.NewImage(width, bandHeight*len(bandColors))
	for i, clr := range bandColors {
		band := img.SubImage(image.Rect(0, i*bandHeight, width, (i+1)*bandHeight)).(*ebiten.Image)
		band.Fill(clr)
	}
	return img
}
