package sim

import "fmt"

type ShapeKind uint8

const (
	ShapeBall ShapeKind = iota
	ShapeBullet
	ShapeParticle
	ShapePlayer
)

// Shape is a filled circle for the renderer, in arena coordinates.
type Shape struct {
	Kind   ShapeKind
	Center Vec2
	Radius float64
	Color  RGBA
}

// Shapes appends the world's drawables to dst in back-to-front order:
// balls, bullets, particles, player.
func (w *World) Shapes(dst []Shape) []Shape {
	dst = dst[:0]
	for _, b := range w.Balls {
		if b.Alive {
			dst = append(dst, Shape{Kind: ShapeBall, Center: b.Pos, Radius: b.Radius, Color: b.Color})
		}
	}
	for _, b := range w.Bullets {
		if b.Alive {
			dst = append(dst, Shape{Kind: ShapeBullet, Center: b.Pos, Radius: b.Radius, Color: Red})
		}
	}
	for _, p := range w.Particles.P {
		if p.Visible() {
			dst = append(dst, Shape{Kind: ShapeParticle, Center: p.Pos, Radius: p.Radius, Color: p.Color})
		}
	}
	dst = append(dst, Shape{Kind: ShapePlayer, Center: w.Player.Pos, Radius: PlayerRadius, Color: Black})
	return dst
}

// HUD is the scalar overlay state. FPS is filled in by the frontend.
type HUD struct {
	Balls     int
	MaxBalls  int
	Bullets   int
	Particles int
	Gravity   float64
	Friction  float64
	Attract   bool
	Paused    bool
	FPS       float64
}

func (w *World) HUD() HUD {
	return HUD{
		Balls:     len(w.Balls),
		MaxBalls:  MaxBalls,
		Bullets:   len(w.Bullets),
		Particles: w.Particles.Len(),
		Gravity:   w.Gravity,
		Friction:  w.Friction,
		Attract:   w.Attract,
		Paused:    w.Paused,
	}
}

const ControlsHint = "Pause (P) | Shoot (Space) | Add Ball (Left Click) | Toggle Attract (Right Click) | Move (Arrows/WASD)"

// Lines renders the overlay text, top to bottom.
func (h HUD) Lines() []string {
	mode := "OFF"
	if h.Attract {
		mode = "ON"
	}
	return []string{
		fmt.Sprintf("Balls: %d (Max %d)", h.Balls, h.MaxBalls),
		fmt.Sprintf("Bullets: %d", h.Bullets),
		fmt.Sprintf("Particles: %d", h.Particles),
		fmt.Sprintf("Gravity (Q/E): %.1f", h.Gravity),
		fmt.Sprintf("Friction (Z/C): %.2f", h.Friction),
		fmt.Sprintf("Attract mode (Right click): %s", mode),
	}
}

func (h HUD) FPSLine() string {
	return fmt.Sprintf("%.0f FPS", h.FPS)
}
