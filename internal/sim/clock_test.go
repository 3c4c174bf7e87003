package sim

import "testing"

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(0.05)

	if dt := c.Tick(10); dt != 0 {
		t.Fatalf("first tick dt = %v, want 0", dt)
	}
	if dt := c.Tick(10.02); !near(dt, 0.02, 1e-9) {
		t.Fatalf("dt = %v, want 0.02", dt)
	}
	if dt := c.Tick(11); dt != 0.05 {
		t.Fatalf("long frame dt = %v, want capped 0.05", dt)
	}
	if dt := c.Tick(10.5); dt != 0 {
		t.Fatalf("clock going backwards gave dt = %v", dt)
	}
}

func TestFrameClockFPS(t *testing.T) {
	c := NewFrameClock(0)
	if c.MaxDt != DefaultMaxFrame {
		t.Fatalf("MaxDt = %v, want default", c.MaxDt)
	}
	now := 0.0
	c.Tick(now)
	for range 60 {
		now += 1.0 / 60
		c.Tick(now)
	}
	if fps := c.FPS(); fps < 59 || fps > 61 {
		t.Fatalf("fps = %v, want ~60", fps)
	}
}
