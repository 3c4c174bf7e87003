package sim

import (
	"go.uber.org/zap"
)

// World owns every entity and tunable of the playground. It is not safe
// for concurrent use; one loop goroutine drives Step and reads Shapes.
type World struct {
	Balls     []Ball
	Bullets   []Bullet
	Particles *ParticleSystem
	Player    Player

	Gravity  float64
	Friction float64
	Attract  bool
	Paused   bool

	Frame  uint64 // simulated (unpaused) frames
	Events *EventBus

	rng *Rand
	log *zap.Logger
}

// NewWorld seeds a world with InitialBalls random balls. A nil logger is
// replaced with a no-op one.
func NewWorld(seed uint64, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		Balls:     make([]Ball, 0, MaxBalls),
		Bullets:   make([]Bullet, 0, 32),
		Particles: NewParticleSystem(MaxBalls * ParticlesPerKill / 4),
		Player:    NewPlayer(),
		Gravity:   BaseGravity,
		Friction:  BaseFriction,
		Events:    NewEventBus(),
		rng:       NewRand(seed),
		log:       log,
	}
	for range InitialBalls {
		w.Balls = append(w.Balls, RandomBall(w.rng))
	}
	w.log.Debug("world created",
		zap.Uint64("seed", seed),
		zap.Int("balls", len(w.Balls)),
	)
	return w
}

// Step advances the world by dt seconds under the given intent.
// TogglePause is honoured even while paused; everything else waits.
func (w *World) Step(dt float64, in Intent) {
	if in.TogglePause {
		w.Paused = !w.Paused
		w.Events.Emit(Event{Type: EventPauseToggled, On: w.Paused})
		w.log.Debug("pause toggled", zap.Bool("paused", w.Paused))
	}
	if w.Paused {
		return
	}
	w.Frame++

	w.Player.Update(in.moveDir(), dt)

	if in.Fire {
		w.Fire(in.Pointer)
	}
	if in.Spawn {
		w.SpawnBall(in.Pointer)
	}
	if in.ToggleAttract {
		w.Attract = !w.Attract
		w.Events.Emit(Event{Type: EventAttractToggled, Pos: in.Pointer, On: w.Attract})
		w.log.Debug("attract toggled", zap.Bool("attract", w.Attract))
	}

	for i := range w.Balls {
		b := &w.Balls[i]
		b.Vel = b.Vel.Add(w.pointerPull(b.Pos, in.Pointer).Scale(dt))
		b.Update(dt, w.Gravity, w.Friction)
	}

	ResolveAll(w.Balls)

	for i := range w.Bullets {
		w.Bullets[i].Update(dt)
	}
	w.hitBalls()

	w.compact()

	w.Particles.Update(dt)

	w.adjustTunables(dt, in.Gravity, in.Friction)
}

// Fire shoots from the player toward target. A target sitting on the
// player gives no direction and is ignored.
func (w *World) Fire(target Vec2) bool {
	dir := target.Sub(w.Player.Pos)
	if dir.Len() <= FireMinDistance {
		return false
	}
	w.Bullets = append(w.Bullets, NewBullet(w.Player.Pos, dir))
	w.Events.Emit(Event{Type: EventBulletFired, Pos: w.Player.Pos})
	return true
}

// SpawnBall drops a random ball at pos unless the arena is full.
func (w *World) SpawnBall(pos Vec2) bool {
	if len(w.Balls) >= MaxBalls {
		w.Events.Emit(Event{Type: EventSpawnRejected, Pos: pos})
		w.log.Debug("spawn rejected: population at cap", zap.Int("max", MaxBalls))
		return false
	}
	b := SpawnedBall(pos, w.rng)
	w.Balls = append(w.Balls, b)
	w.Events.Emit(Event{Type: EventBallSpawned, Pos: pos, Radius: b.Radius})
	return true
}

// pointerPull is the velocity change per second the pointer applies to a
// ball at pos. It is added straight to velocity; mass plays no part.
func (w *World) pointerPull(pos, pointer Vec2) Vec2 {
	var dir Vec2
	if w.Attract {
		dir = pointer.Sub(pos)
	} else {
		dir = pos.Sub(pointer)
	}
	distSq := max(dir.LenSq(), PointerMinDistSq)
	return dir.Normalize().Scale(PointerForce / distSq)
}

// hitBalls pairs each live bullet with the first live ball it overlaps.
// A bullet stops at its first victim.
func (w *World) hitBalls() {
	for i := range w.Bullets {
		bl := &w.Bullets[i]
		if !bl.Alive {
			continue
		}
		for j := range w.Balls {
			b := &w.Balls[j]
			if !b.Alive || !bl.Hits(b) {
				continue
			}
			b.Alive = false
			bl.Alive = false
			w.Particles.SpawnBurst(b.Pos, ParticlesPerKill, w.rng)
			w.Events.Emit(Event{Type: EventBallPopped, Pos: b.Pos, Radius: b.Radius})
			break
		}
	}
}

// compact drops dead balls and bullets, keeping survivor order.
func (w *World) compact() {
	balls := w.Balls[:0]
	for _, b := range w.Balls {
		if b.Alive {
			balls = append(balls, b)
		}
	}
	w.Balls = balls

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Alive {
			bullets = append(bullets, b)
		}
	}
	w.Bullets = bullets
}

func (w *World) adjustTunables(dt float64, gravity, friction int) {
	if g := sign(gravity); g != 0 {
		w.Gravity = clampF(w.Gravity+float64(g)*GravityStep*dt, MinGravity, MaxGravity)
	}
	if f := sign(friction); f != 0 {
		w.Friction = clampF(w.Friction+float64(f)*FrictionStep*dt, MinFriction, MaxFriction)
	}
}
