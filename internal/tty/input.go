package tty

import (
	"github.com/gdamore/tcell/v2"

	"playground/internal/sim"
)

// control is a held input. Terminals only report presses and auto-repeat,
// never releases, so a control counts as held for a short window after
// its last event.
type control int

const (
	ctlLeft control = iota
	ctlRight
	ctlUp
	ctlDown
	ctlGravityDown
	ctlGravityUp
	ctlFrictionDown
	ctlFrictionUp
	numControls
)

type input struct {
	hold     float64 // seconds
	lastSeen [numControls]float64
	seen     [numControls]bool

	pointer sim.Vec2
	buttons tcell.ButtonMask

	fire, spawn, attract, pause bool
	quit                        bool
}

func newInput(hold float64, pointer sim.Vec2) *input {
	return &input{hold: hold, pointer: pointer}
}

var runeControls = map[rune]control{
	'a': ctlLeft, 'd': ctlRight, 'w': ctlUp, 's': ctlDown,
	'A': ctlLeft, 'D': ctlRight, 'W': ctlUp, 'S': ctlDown,
	'q': ctlGravityDown, 'e': ctlGravityUp,
	'z': ctlFrictionDown, 'c': ctlFrictionUp,
}

var keyControls = map[tcell.Key]control{
	tcell.KeyLeft:  ctlLeft,
	tcell.KeyRight: ctlRight,
	tcell.KeyUp:    ctlUp,
	tcell.KeyDown:  ctlDown,
}

func (in *input) key(ev *tcell.EventKey, now float64) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			in.fire = true
			return
		case 'p', 'P':
			in.pause = true
			return
		}
		if c, ok := runeControls[ev.Rune()]; ok {
			in.press(c, now)
		}
		return
	}
	if c, ok := keyControls[ev.Key()]; ok {
		in.press(c, now)
	}
}

func (in *input) press(c control, now float64) {
	in.lastSeen[c] = now
	in.seen[c] = true
}

func (in *input) held(c control, now float64) bool {
	return in.seen[c] && now-in.lastSeen[c] <= in.hold
}

// mouse tracks the pointer and turns button-down edges into one-shot actions.
func (in *input) mouse(ev *tcell.EventMouse, r *Raster) {
	x, y := ev.Position()
	in.pointer = r.CellToArena(x, y)

	btn := ev.Buttons()
	pressed := btn &^ in.buttons
	if pressed&tcell.Button1 != 0 {
		in.spawn = true
	}
	if pressed&tcell.Button2 != 0 {
		in.attract = true
	}
	in.buttons = btn
}

// intent builds this frame's intent and consumes the one-shot actions.
func (in *input) intent(now float64) sim.Intent {
	axis := func(neg, pos control) int {
		v := 0
		if in.held(neg, now) {
			v--
		}
		if in.held(pos, now) {
			v++
		}
		return v
	}
	it := sim.Intent{
		MoveX:         axis(ctlLeft, ctlRight),
		MoveY:         axis(ctlUp, ctlDown),
		Pointer:       in.pointer,
		Fire:          in.fire,
		Spawn:         in.spawn,
		ToggleAttract: in.attract,
		TogglePause:   in.pause,
		Gravity:       axis(ctlGravityDown, ctlGravityUp),
		Friction:      axis(ctlFrictionDown, ctlFrictionUp),
	}
	in.fire, in.spawn, in.attract, in.pause = false, false, false, false
	return it
}
