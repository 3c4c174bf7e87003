package sim

type Bullet struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Alive  bool
}

// NewBullet fires from pos along dir at BulletSpeed.
func NewBullet(pos, dir Vec2) Bullet {
	return Bullet{
		Pos:    pos,
		Vel:    dir.Normalize().Scale(BulletSpeed),
		Radius: BulletRadius,
		Alive:  true,
	}
}

// Update moves the bullet and kills it once it leaves the arena.
// The arena edges themselves count as inside.
func (b *Bullet) Update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	if b.Pos.X < 0 || b.Pos.X > ArenaWidth || b.Pos.Y < 0 || b.Pos.Y > ArenaHeight {
		b.Alive = false
	}
}

// Hits reports whether the bullet overlaps ball.
func (b *Bullet) Hits(ball *Ball) bool {
	return b.Pos.Sub(ball.Pos).Len() < b.Radius+ball.Radius
}
