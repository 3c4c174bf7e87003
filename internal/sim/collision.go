package sim

// ResolveBalls separates two overlapping balls and applies an elastic
// impulse along the contact normal. Positions are corrected fully in one
// go, split by mass so the heavier ball moves less.
func ResolveBalls(b1, b2 *Ball) {
	if !b1.Alive || !b2.Alive {
		return
	}
	delta := b2.Pos.Sub(b1.Pos)
	dist := delta.Len()
	if dist == 0 {
		// Coincident centres have no normal.
		return
	}
	if dist >= b1.Radius+b2.Radius {
		return
	}

	penetration := b1.Radius + b2.Radius - dist
	n := delta.Scale(1 / dist)
	total := b1.Mass + b2.Mass
	b1.Pos = b1.Pos.Sub(n.Scale(penetration * (b2.Mass / total)))
	b2.Pos = b2.Pos.Add(n.Scale(penetration * (b1.Mass / total)))

	velAlongNormal := b2.Vel.Sub(b1.Vel).Dot(n)
	if velAlongNormal > 0 {
		return // already separating
	}

	j := -(1 + BallRestitution) * velAlongNormal / (1/b1.Mass + 1/b2.Mass)
	impulse := n.Scale(j)
	b1.Vel = b1.Vel.Sub(impulse.Scale(1 / b1.Mass))
	b2.Vel = b2.Vel.Add(impulse.Scale(1 / b2.Mass))
}

// ResolveAll runs ResolveBalls over every unordered pair, i < j ascending.
func ResolveAll(balls []Ball) {
	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			ResolveBalls(&balls[i], &balls[j])
		}
	}
}
