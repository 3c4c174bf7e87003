package sim

import "testing"

func TestBulletFiredAlongX(t *testing.T) {
	b := NewBullet(V(500, 450), V(600, 450).Sub(V(500, 450)))
	if b.Vel != V(BulletSpeed, 0) {
		t.Fatalf("vel = %+v, want (500,0)", b.Vel)
	}
	if b.Radius != BulletRadius || !b.Alive {
		t.Fatalf("bad bullet %+v", b)
	}

	// 0.1s steps move 50 units: x reaches exactly 1000 after 10 steps.
	for step := 1; step <= 10; step++ {
		b.Update(0.1)
		if !b.Alive {
			t.Fatalf("bullet died at step %d, x=%v", step, b.Pos.X)
		}
	}
	if b.Pos.X != ArenaWidth {
		t.Fatalf("x = %v, want %v", b.Pos.X, ArenaWidth)
	}

	b.Update(0.1)
	if b.Alive {
		t.Fatalf("bullet at x=%v should be dead", b.Pos.X)
	}
}

func TestBulletLeavesEveryEdge(t *testing.T) {
	tests := []struct {
		name string
		pos  Vec2
		dir  Vec2
	}{
		{"left", V(1, 450), V(-1, 0)},
		{"right", V(999, 450), V(1, 0)},
		{"top", V(500, 1), V(0, -1)},
		{"bottom", V(500, 899), V(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBullet(tt.pos, tt.dir)
			b.Update(0.01)
			if b.Alive {
				t.Fatalf("bullet at %+v should be dead", b.Pos)
			}
		})
	}
}

func TestBulletHits(t *testing.T) {
	ball := NewBall(V(100, 100), V(0, 0), 20, White)
	tests := []struct {
		pos  Vec2
		want bool
	}{
		{V(100, 100), true},
		{V(124, 100), true},
		{V(125, 100), false}, // exactly touching does not count
		{V(200, 200), false},
	}
	for _, tt := range tests {
		b := NewBullet(tt.pos, V(1, 0))
		if got := b.Hits(&ball); got != tt.want {
			t.Errorf("Hits at %+v = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
