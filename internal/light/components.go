package light

import "image/color"

// Components is the set of RGB channels present in a beam or passed by a
// filter. Light color is a channel subset, not a continuous value.
type Components struct {
	R bool
	G bool
	B bool
}

var (
	White = Components{R: true, G: true, B: true}
	Red   = Components{R: true}
	Green = Components{G: true}
	Blue  = Components{B: true}
)

// And returns the channels present in both sets.
func (c Components) And(o Components) Components {
	return Components{
		R: c.R && o.R,
		G: c.G && o.G,
		B: c.B && o.B,
	}
}

// Any reports whether at least one channel is present. A beam with no
// channels carries no light and must not be instantiated.
func (c Components) Any() bool {
	return c.R || c.G || c.B
}

// Color converts the channel set to a fully opaque render color.
func (c Components) Color() color.RGBA {
	channel := func(on bool) uint8 {
		if on {
			return 255
		}
		return 0
	}
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

// String renders the set as a three-letter mask, e.g. "R-B".
func (c Components) String() string {
	mask := []byte{'-', '-', '-'}
	if c.R {
		mask[0] = 'R'
	}
	if c.G {
		mask[1] = 'G'
	}
	if c.B {
		mask[2] = 'B'
	}
	return string(mask)
}
