package game

import (
	"math"

	"playground/internal/sim"
)

// UpdateAutoCamera fits the entire arena on screen at all times.
// Zoom is computed so the arena fills the framebuffer; camera is centered on the arena.
func UpdateAutoCamera(cam *Camera, fbW, fbH int) {
	zoomW := float64(fbW) / sim.ArenaWidth
	zoomH := float64(fbH) / sim.ArenaHeight
	cam.Zoom = math.Min(zoomW, zoomH)
	cam.X = sim.ArenaWidth / 2
	cam.Y = sim.ArenaHeight / 2
}

// ShakeForPop returns the shake intensity for popping a ball of radius r.
func ShakeForPop(r float64) float64 {
	return clampF(r*ShakePerRadius, 0, ShakeMax)
}
