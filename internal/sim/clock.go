package sim

// FrameClock turns wall-clock timestamps (seconds) into capped frame deltas
// and keeps a smoothed frame rate for the HUD.
type FrameClock struct {
	MaxDt float64

	last    float64
	started bool

	window float64 // seconds accumulated toward the next FPS sample
	frames int
	fps    float64
}

func NewFrameClock(maxDt float64) *FrameClock {
	if maxDt <= 0 {
		maxDt = DefaultMaxFrame
	}
	return &FrameClock{MaxDt: maxDt}
}

// Tick records a frame at now and returns its dt. The first tick returns 0.
func (c *FrameClock) Tick(now float64) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		dt = 0
	}

	c.window += dt
	c.frames++
	if c.window >= 0.5 {
		c.fps = float64(c.frames) / c.window
		c.window = 0
		c.frames = 0
	}

	if dt > c.MaxDt {
		dt = c.MaxDt
	}
	return dt
}

func (c *FrameClock) FPS() float64 { return c.fps }
