package sim

import "math"

// RGBA is an 8-bit per channel colour with alpha.
type RGBA struct {
	R, G, B, A uint8
}

var (
	White    = RGBA{R: 255, G: 255, B: 255, A: 255}
	Black    = RGBA{A: 255}
	Red      = RGBA{R: 230, G: 41, B: 55, A: 255}
	RayWhite = RGBA{R: 245, G: 245, B: 245, A: 255}
	DarkGray = RGBA{R: 80, G: 80, B: 80, A: 255}
)

// Float returns the colour as normalized floats for GPU upload.
func (c RGBA) Float() (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0
}

// HSVToRGB converts hue (turns, wrapped into [0,1)), saturation and value
// (both [0,1]) into an opaque colour. Channels are truncated, not rounded.
func HSVToRGB(h, s, v float64) RGBA {
	h -= math.Floor(h)
	i := int(math.Floor(h * 6))
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(x float64) uint8 {
	return uint8(clampF(x*255, 0, 255))
}
