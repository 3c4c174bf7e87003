package sim

// Player is the controllable avatar.
type Player struct {
	Pos Vec2
	Vel Vec2
}

func NewPlayer() Player {
	return Player{Pos: V(ArenaWidth/2, ArenaHeight/2)}
}

// Update accelerates along dir (any length; it is normalized), or damps
// toward rest when dir is zero, then moves and keeps the avatar inside.
func (p *Player) Update(dir Vec2, dt float64) {
	if dir.LenSq() > 0 {
		p.Vel = p.Vel.Add(dir.Normalize().Scale(PlayerAcceleration * dt))
	} else {
		p.Vel = p.Vel.Sub(p.Vel.Scale(PlayerFriction * dt))
	}

	if p.Vel.Len() > PlayerMaxSpeed {
		p.Vel = p.Vel.Normalize().Scale(PlayerMaxSpeed)
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Pos.X = clampF(p.Pos.X, PlayerRadius, ArenaWidth-PlayerRadius)
	p.Pos.Y = clampF(p.Pos.Y, PlayerRadius, ArenaHeight-PlayerRadius)
}
