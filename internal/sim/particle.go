package sim

import "math"

type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Color  RGBA
	Radius float64
	Life   float64 // counts down from ParticleLife
}

// NewParticle launches a white spark from pos in a random direction.
func NewParticle(pos Vec2, r *Rand) Particle {
	ang := r.RangeF(0, 2*math.Pi)
	spd := r.RangeF(ParticleMinSpeed, ParticleMaxSpeed)
	return Particle{
		Pos:    pos,
		Vel:    V(math.Cos(ang), math.Sin(ang)).Scale(spd),
		Color:  White,
		Life:   ParticleLife,
		Radius: r.RangeF(ParticleMinRadius, ParticleMaxRadius),
	}
}

// Update ages, moves and fades the particle. The colour fade is applied per
// call rather than per second.
func (p *Particle) Update(dt float64) {
	p.Life -= dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Color.A = uint8(clampF(p.Life*255, 0, 255))
	p.Vel.Y += ParticleGravity * dt
	p.Color.R = fade(p.Color.R)
	p.Color.G = fade(p.Color.G)
	p.Color.B = fade(p.Color.B)
}

func (p *Particle) Visible() bool { return p.Life > 0 }

func fade(c uint8) uint8 { return uint8(float64(c) * ParticleFade) }

// ParticleSystem holds the live particle population.
type ParticleSystem struct {
	P []Particle
}

func NewParticleSystem(capacity int) *ParticleSystem {
	return &ParticleSystem{P: make([]Particle, 0, capacity)}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

func (ps *ParticleSystem) Add(p Particle) {
	ps.P = append(ps.P, p)
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

// SpawnBurst emits n sparks at pos.
func (ps *ParticleSystem) SpawnBurst(pos Vec2, n int, r *Rand) {
	for range n {
		ps.Add(NewParticle(pos, r))
	}
}

// Update advances every particle, then drops the expired ones in place.
func (ps *ParticleSystem) Update(dt float64) {
	for i := range ps.P {
		ps.P[i].Update(dt)
	}
	kept := ps.P[:0]
	for _, p := range ps.P {
		if p.Visible() {
			kept = append(kept, p)
		}
	}
	ps.P = kept
}
