package game

import "playground/internal/sim"

var Palette = struct {
	Background sim.RGBA
	Text       sim.RGBA
	Hint       sim.RGBA
	Banner     sim.RGBA
}{
	Background: sim.RayWhite,
	Text:       sim.Black,
	Hint:       sim.DarkGray,
	Banner:     sim.Red,
}
