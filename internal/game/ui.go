//go:build !android

package game

import "playground/internal/sim"

// RenderHUD queues and flushes the overlay text. The HUD uses the
// unshaken camera.
func RenderHUD(r *Renderer, h sim.HUD, cam Camera, fbW, fbH int) {
	for _, it := range LayoutHUD(h, cam, fbW, fbH) {
		r.DrawString(it.Text, it.X, it.Y, it.Scale, it.Color)
	}
	r.FlushText(fbW, fbH)
}
