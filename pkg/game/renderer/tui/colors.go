package tui

import "image/color"

// blend mixes c towards white by amount a in [0,1]
func blend(c color.RGBA, a float32) color.RGBA {
	if a <= 0 {
		return c
	}
	if a > 1 {
		a = 1
	}
	mix := func(v uint8) uint8 {
		return uint8(float32(v) + (255-float32(v))*a*0.6)
	}
	return color.RGBA{mix(c.R), mix(c.G), mix(c.B), c.A}
}
