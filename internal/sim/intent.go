package sim

// Intent is one frame's worth of input, already decoded by a frontend.
// Move, Gravity and Friction are held (level) inputs; the booleans are
// one-shot presses.
type Intent struct {
	MoveX, MoveY  int  // each in {-1, 0, 1}
	Pointer       Vec2 // arena coordinates
	Fire          bool
	Spawn         bool
	ToggleAttract bool
	TogglePause   bool
	Gravity       int // -1 lower, +1 raise
	Friction      int // -1 lower, +1 raise
}

func (in Intent) moveDir() Vec2 {
	return V(float64(sign(in.MoveX)), float64(sign(in.MoveY)))
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
