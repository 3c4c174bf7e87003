package game

import "playground/internal/sim"

type Camera struct {
	X, Y float64 // arena space, camera centre
	Zoom float64 // screen pixels per arena unit

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in arena units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, rr *sim.Rand) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// ScreenToArena maps a framebuffer pixel to arena coordinates, ignoring shake.
func (c *Camera) ScreenToArena(fx, fy float64, fbW, fbH int) sim.Vec2 {
	return sim.V(
		c.X+(fx-float64(fbW)*0.5)/c.Zoom,
		c.Y+(fy-float64(fbH)*0.5)/c.Zoom,
	)
}

// ArenaToScreen is the inverse of ScreenToArena.
func (c *Camera) ArenaToScreen(p sim.Vec2, fbW, fbH int) (float64, float64) {
	return (p.X-c.X)*c.Zoom + float64(fbW)*0.5, (p.Y-c.Y)*c.Zoom + float64(fbH)*0.5
}
