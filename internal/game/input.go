//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"playground/internal/sim"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Poll decodes this frame's keyboard and mouse state into an intent.
// Edge-triggered actions must be polled exactly once per frame.
func (in *Input) Poll(window *glfw.Window, cam Camera, fbW, fbH int) sim.Intent {
	return sim.Intent{
		MoveX: axis(
			held(window, glfw.KeyLeft, glfw.KeyA),
			held(window, glfw.KeyRight, glfw.KeyD),
		),
		MoveY: axis(
			held(window, glfw.KeyUp, glfw.KeyW),
			held(window, glfw.KeyDown, glfw.KeyS),
		),
		Pointer:       CursorArenaPos(window, cam, fbW, fbH),
		Fire:          in.JustPressed(window, glfw.KeySpace),
		Spawn:         in.JustClicked(window, glfw.MouseButtonLeft),
		ToggleAttract: in.JustClicked(window, glfw.MouseButtonRight),
		TogglePause:   in.JustPressed(window, glfw.KeyP),
		Gravity:       axis(held(window, glfw.KeyQ), held(window, glfw.KeyE)),
		Friction:      axis(held(window, glfw.KeyZ), held(window, glfw.KeyC)),
	}
}

// CursorArenaPos converts cursor position to arena coordinates.
func CursorArenaPos(window *glfw.Window, cam Camera, fbW, fbH int) sim.Vec2 {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return sim.V(cam.X, cam.Y)
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	return cam.ScreenToArena(cx*scaleX, cy*scaleY, fbW, fbH)
}
