package sim

import "math"

// Ball is a mobile circular body. Mass is fixed at creation.
type Ball struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Mass   float64
	Color  RGBA
	Alive  bool
}

// NewBall builds a live ball; mass is derived from radius.
func NewBall(pos, vel Vec2, radius float64, col RGBA) Ball {
	return Ball{
		Pos:    pos,
		Vel:    vel,
		Radius: radius,
		Mass:   radius * BallMassPerRadius,
		Color:  col,
		Alive:  true,
	}
}

// RandomBall places a ball anywhere inside the arena with a gentle random velocity.
func RandomBall(r *Rand) Ball {
	radius := r.RangeF(BallMinRadius, BallMaxRadius)
	pos := V(
		r.RangeF(radius, ArenaWidth-radius),
		r.RangeF(radius, ArenaHeight-radius),
	)
	vel := V(
		r.RangeF(-BallInitialSpeed, BallInitialSpeed),
		r.RangeF(-BallInitialSpeed, BallInitialSpeed),
	)
	return NewBall(pos, vel, radius, randomBallColor(r))
}

// SpawnedBall creates a ball at pos, as dropped by the pointer.
func SpawnedBall(pos Vec2, r *Rand) Ball {
	vel := V(
		r.RangeF(-BallSpawnSpeed, BallSpawnSpeed),
		r.RangeF(-BallSpawnSpeed, BallSpawnSpeed),
	)
	radius := r.RangeF(BallMinRadius, BallMaxRadius)
	return NewBall(pos, vel, radius, randomBallColor(r))
}

func randomBallColor(r *Rand) RGBA {
	return RGBA{
		R: uint8(r.Range(BallColorMin, BallColorMax)),
		G: uint8(r.Range(BallColorMin, BallColorMax)),
		B: uint8(r.Range(BallColorMin, BallColorMax)),
		A: 255,
	}
}

// Update integrates one frame: gravity, damping, motion, wall bounce, hue.
func (b *Ball) Update(dt, gravity, friction float64) {
	b.Vel.Y += gravity * dt
	// Linear damping; overshoots past zero when friction*dt > 1.
	damp := 1 - friction*dt
	b.Vel.X *= damp
	b.Vel.Y *= damp
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	b.bounceWalls()
	b.cycleHue(dt)
}

func (b *Ball) bounceWalls() {
	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X *= -WallRestitution
	} else if b.Pos.X+b.Radius > ArenaWidth {
		b.Pos.X = ArenaWidth - b.Radius
		b.Vel.X *= -WallRestitution
	}

	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y *= -WallRestitution
	} else if b.Pos.Y+b.Radius > ArenaHeight {
		b.Pos.Y = ArenaHeight - b.Radius
		b.Vel.Y *= -WallRestitution
	}
}

// cycleHue treats the red channel as the current hue and advances it.
func (b *Ball) cycleHue(dt float64) {
	h := float64(b.Color.R) / 255.0
	h = math.Mod(h+BallHueRate*dt, 1.0)
	b.Color = HSVToRGB(h, BallHueSaturation, BallHueValue)
	b.Color.A = 255
}
