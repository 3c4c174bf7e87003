package tty

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"playground/internal/sim"
)

// halfBlock paints the top pixel as foreground and the bottom pixel as
// background, giving two roughly square pixels per terminal cell.
const halfBlock = '▀'

// Raster is a pixel buffer two rows per terminal line.
type Raster struct {
	W, H int // pixels
	Pix  []colorful.Color

	// Arena to pixel transform.
	scale  float64
	offX   float64
	offY   float64
	cols   int
	lines  int
	bg     colorful.Color
	border colorful.Color
}

// NewRaster sizes a raster for a cols x lines terminal and fits the arena
// inside it, centred, keeping its aspect.
func NewRaster(cols, lines int, bg sim.RGBA) *Raster {
	r := &Raster{}
	r.Resize(cols, lines)
	r.bg = toColorful(bg)
	r.border = r.bg.BlendRgb(colorful.Color{}, 0.15)
	return r
}

func (r *Raster) Resize(cols, lines int) {
	r.cols, r.lines = max(cols, 1), max(lines, 1)
	r.W, r.H = r.cols, r.lines*2
	r.Pix = make([]colorful.Color, r.W*r.H)
	r.scale = math.Min(float64(r.W)/sim.ArenaWidth, float64(r.H)/sim.ArenaHeight)
	r.offX = (float64(r.W) - sim.ArenaWidth*r.scale) / 2
	r.offY = (float64(r.H) - sim.ArenaHeight*r.scale) / 2
}

// ToPixel maps an arena point into pixel space.
func (r *Raster) ToPixel(p sim.Vec2) (float64, float64) {
	return p.X*r.scale + r.offX, p.Y*r.scale + r.offY
}

// CellToArena maps the centre of a terminal cell back to the arena.
func (r *Raster) CellToArena(col, line int) sim.Vec2 {
	px := float64(col) + 0.5
	py := float64(line)*2 + 1
	return sim.V((px-r.offX)/r.scale, (py-r.offY)/r.scale)
}

// Clear fills the arena with the background and the letterbox margins
// with a slightly darker shade.
func (r *Raster) Clear() {
	x0, y0 := r.ToPixel(sim.V(0, 0))
	x1, y1 := r.ToPixel(sim.V(sim.ArenaWidth, sim.ArenaHeight))
	for y := range r.H {
		for x := range r.W {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if fx >= x0 && fx <= x1 && fy >= y0 && fy <= y1 {
				r.Pix[y*r.W+x] = r.bg
			} else {
				r.Pix[y*r.W+x] = r.border
			}
		}
	}
}

// FillCircle paints an arena-space circle, alpha-blending translucent
// colours over what is already there. Circles smaller than a pixel still
// light the pixel under their centre.
func (r *Raster) FillCircle(center sim.Vec2, radius float64, col sim.RGBA) {
	if col.A == 0 {
		return
	}
	cx, cy := r.ToPixel(center)
	pr := radius * r.scale
	c := toColorful(col)
	alpha := float64(col.A) / 255

	plot := func(x, y int) {
		if x < 0 || y < 0 || x >= r.W || y >= r.H {
			return
		}
		i := y*r.W + x
		if alpha >= 1 {
			r.Pix[i] = c
		} else {
			r.Pix[i] = r.Pix[i].BlendRgb(c, alpha)
		}
	}

	x0 := int(math.Floor(cx - pr))
	x1 := int(math.Ceil(cx + pr))
	y0 := int(math.Floor(cy - pr))
	y1 := int(math.Ceil(cy + pr))
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= pr*pr {
				plot(x, y)
				hit = true
			}
		}
	}
	if !hit {
		plot(int(math.Floor(cx)), int(math.Floor(cy)))
	}
}

// Draw rasterizes shapes in order.
func (r *Raster) Draw(shapes []sim.Shape) {
	for _, s := range shapes {
		r.FillCircle(s.Center, s.Radius, s.Color)
	}
}

// At returns the pixel at (x, y).
func (r *Raster) At(x, y int) colorful.Color { return r.Pix[y*r.W+x] }

// Present writes the raster to the screen as half-block cells.
func (r *Raster) Present(screen tcell.Screen) {
	for line := range r.lines {
		for col := range r.cols {
			top := r.At(col, line*2)
			bottom := r.At(col, line*2+1)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(col, line, halfBlock, nil, style)
		}
	}
}

func toColorful(c sim.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
