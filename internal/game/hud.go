package game

import "playground/internal/sim"

// TextItem is one line of overlay text in framebuffer pixels.
type TextItem struct {
	Text  string
	X, Y  int
	Scale float32
	Color sim.RGBA
}

// LayoutHUD places the overlay the way the arena is framed: stat lines
// top-left, FPS and controls hint bottom-left, a centred banner while
// paused. Arena units are converted through cam so the overlay scales
// with the window.
func LayoutHUD(h sim.HUD, cam Camera, fbW, fbH int) []TextItem {
	scale := float32(HUDFontSize / FontCellH * cam.Zoom)
	at := func(x, y float64) (int, int) {
		sx, sy := cam.ArenaToScreen(sim.V(x, y), fbW, fbH)
		return int(sx), int(sy)
	}

	items := make([]TextItem, 0, 9)
	for i, line := range h.Lines() {
		x, y := at(HUDLeft, HUDTop+float64(i)*HUDLineHeight)
		items = append(items, TextItem{Text: line, X: x, Y: y, Scale: scale, Color: Palette.Text})
	}

	x, y := at(HUDLeft, sim.ArenaHeight-FPSFromEnd)
	items = append(items, TextItem{Text: h.FPSLine(), X: x, Y: y, Scale: scale, Color: Palette.Text})
	x, y = at(HUDLeft, sim.ArenaHeight-HintFromEnd)
	items = append(items, TextItem{Text: sim.ControlsHint, X: x, Y: y, Scale: scale * 0.75, Color: Palette.Hint})

	if h.Paused {
		const banner = "PAUSED"
		bs := scale * 3
		cx, cy := at(sim.ArenaWidth/2, sim.ArenaHeight/2)
		items = append(items, TextItem{
			Text:  banner,
			X:     cx - TextWidth(banner, bs)/2,
			Y:     cy - int(float32(FontCellH)*bs/2),
			Scale: bs,
			Color: Palette.Banner,
		})
	}
	return items
}
