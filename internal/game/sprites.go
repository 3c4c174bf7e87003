package game

import "playground/internal/sim"

// SpriteFloats is the per-sprite vertex layout: x, y, diameter, r, g, b, a.
const SpriteFloats = 7

// AppendSprites converts world shapes into sprite vertices, keeping draw order.
func AppendSprites(buf []float32, shapes []sim.Shape) []float32 {
	for _, s := range shapes {
		r, g, b, a := s.Color.Float()
		buf = append(buf,
			float32(s.Center.X), float32(s.Center.Y), float32(2*s.Radius),
			r, g, b, a,
		)
	}
	return buf
}
