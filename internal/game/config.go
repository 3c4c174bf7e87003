package game

import "playground/internal/sim"

// Window size at scale 1 matches the arena one to one.
const (
	WindowWidth  = int(sim.ArenaWidth)
	WindowHeight = int(sim.ArenaHeight)
)

// MaxSpriteRender bounds the streaming sprite buffer: every ball, a
// generous bullet count, every burst a full population could leave, and
// the player.
const MaxSpriteRender = sim.MaxBalls*(1+sim.ParticlesPerKill) + 256 + 1

// HUD layout, in arena units.
const (
	HUDFontSize   = 20.0
	HUDLeft       = 10.0
	HUDTop        = 10.0
	HUDLineHeight = 30.0
	HintFromEnd   = 30.0 // hint baseline distance from the arena bottom
	FPSFromEnd    = 50.0
)

// Camera shake on ball pops.
const (
	ShakePerRadius = 0.12
	ShakeMax       = 6.0
	ShakeDuration  = 0.18
)
