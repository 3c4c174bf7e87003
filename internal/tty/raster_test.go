package tty

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"playground/internal/sim"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRasterFitsArena(t *testing.T) {
	tests := []struct {
		name        string
		cols, lines int
	}{
		{"classic", 80, 24},
		{"wide", 200, 50},
		{"tall", 60, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRaster(tt.cols, tt.lines, sim.RayWhite)
			x0, y0 := r.ToPixel(sim.V(0, 0))
			x1, y1 := r.ToPixel(sim.V(sim.ArenaWidth, sim.ArenaHeight))
			if x0 < -1e-9 || y0 < -1e-9 || x1 > float64(r.W)+1e-9 || y1 > float64(r.H)+1e-9 {
				t.Fatalf("arena at (%v,%v)-(%v,%v) outside %dx%d", x0, y0, x1, y1, r.W, r.H)
			}
			// Aspect preserved.
			if !near((x1-x0)/(y1-y0), sim.ArenaWidth/sim.ArenaHeight) {
				t.Fatalf("aspect distorted")
			}
		})
	}
}

func TestCellToArenaInvertsToPixel(t *testing.T) {
	r := NewRaster(100, 45, sim.RayWhite) // 100x90 pixels, exactly 0.1 px per unit
	p := r.CellToArena(50, 22)
	x, y := r.ToPixel(p)
	if !near(x, 50.5) || !near(y, 45) {
		t.Fatalf("cell centre maps to pixel (%v,%v)", x, y)
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(100, 45, sim.RayWhite)
	r.Clear()
	bg := r.At(0, 0)

	r.FillCircle(sim.V(500, 450), 100, sim.Black) // 10 px radius at the centre
	if got := r.At(50, 45); got != (colorful.Color{}) {
		t.Fatalf("centre pixel = %v, want black", got)
	}
	if got := r.At(5, 5); got != bg {
		t.Fatalf("far pixel touched: %v", got)
	}

	// Sub-pixel shapes still light one pixel.
	r.FillCircle(sim.V(105, 105), 1, sim.Red)
	if got := r.At(10, 10); got == bg {
		t.Fatal("tiny circle not drawn")
	}
}

func TestRasterBlendsTranslucent(t *testing.T) {
	r := NewRaster(100, 45, sim.RayWhite)
	r.Clear()
	half := sim.Black
	half.A = 128
	r.FillCircle(sim.V(500, 450), 50, half)
	got := r.At(50, 45)
	want := toColorful(sim.RayWhite).BlendRgb(colorful.Color{}, 128.0/255)
	if !near(got.R, want.R) || got.R <= 0 || got.R >= toColorful(sim.RayWhite).R {
		t.Fatalf("blended pixel = %v, want %v", got, want)
	}

	invisible := sim.Black
	invisible.A = 0
	r.FillCircle(sim.V(200, 200), 50, invisible)
	if r.At(20, 20) != toColorful(sim.RayWhite) {
		t.Fatal("fully transparent circle changed the raster")
	}
}
