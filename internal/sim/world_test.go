package sim

import (
	"math"
	"testing"

	"go.uber.org/zap/zaptest"
)

// emptyWorld returns a world with no balls so tests can place their own.
func emptyWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(1, zaptest.NewLogger(t))
	w.Balls = w.Balls[:0]
	return w
}

// farPointer keeps the pointer force negligible.
var farPointer = V(-1e6, -1e6)

func TestNewWorldInitialState(t *testing.T) {
	w := NewWorld(42, nil)
	if len(w.Balls) != InitialBalls {
		t.Fatalf("balls = %d, want %d", len(w.Balls), InitialBalls)
	}
	for i, b := range w.Balls {
		if b.Pos.X < b.Radius || b.Pos.X > ArenaWidth-b.Radius ||
			b.Pos.Y < b.Radius || b.Pos.Y > ArenaHeight-b.Radius {
			t.Errorf("ball %d starts outside arena: %+v r=%v", i, b.Pos, b.Radius)
		}
	}
	if w.Gravity != BaseGravity || w.Friction != BaseFriction {
		t.Errorf("tunables = %v/%v", w.Gravity, w.Friction)
	}
	if w.Attract || w.Paused {
		t.Errorf("world should start in repel mode, running")
	}
	if w.Player.Pos != V(ArenaWidth/2, ArenaHeight/2) {
		t.Errorf("player at %+v", w.Player.Pos)
	}
}

func TestWorldDeterministicForSeed(t *testing.T) {
	script := []Intent{
		{Pointer: V(300, 300), Spawn: true},
		{Pointer: V(700, 200), Fire: true, MoveX: 1},
		{Pointer: V(700, 200), ToggleAttract: true},
		{Pointer: V(100, 800), Spawn: true, Gravity: 1},
	}
	run := func() *World {
		w := NewWorld(1234, nil)
		for i := range 240 {
			w.Step(1.0/60, script[i%len(script)])
		}
		return w
	}
	a, b := run(), run()
	if len(a.Balls) != len(b.Balls) || a.Particles.Len() != b.Particles.Len() {
		t.Fatalf("populations differ: %d/%d balls, %d/%d particles",
			len(a.Balls), len(b.Balls), a.Particles.Len(), b.Particles.Len())
	}
	for i := range a.Balls {
		if a.Balls[i] != b.Balls[i] {
			t.Fatalf("ball %d differs: %+v vs %+v", i, a.Balls[i], b.Balls[i])
		}
	}
}

func TestWorldBulletPopsBall(t *testing.T) {
	w := emptyWorld(t)
	ball := NewBall(V(700, 450), V(0, 0), 20, White)
	w.Balls = append(w.Balls, ball)
	w.Bullets = append(w.Bullets, Bullet{Pos: V(690, 450), Radius: BulletRadius, Alive: true})

	w.hitBalls()

	if w.Balls[0].Alive || w.Bullets[0].Alive {
		t.Fatalf("hit should kill ball and bullet")
	}
	if w.Particles.Len() != ParticlesPerKill {
		t.Fatalf("particles = %d, want %d", w.Particles.Len(), ParticlesPerKill)
	}
	for _, p := range w.Particles.P {
		if p.Pos != ball.Pos {
			t.Fatalf("particle spawned at %+v, want %+v", p.Pos, ball.Pos)
		}
	}

	w.compact()
	if len(w.Balls) != 0 || len(w.Bullets) != 0 {
		t.Fatalf("dead entities survived compaction: %d balls, %d bullets", len(w.Balls), len(w.Bullets))
	}
}

func TestWorldStepBulletKill(t *testing.T) {
	w := emptyWorld(t)
	w.Gravity = 0
	w.Balls = append(w.Balls, NewBall(V(700, 450), V(0, 0), 20, White))
	w.Bullets = append(w.Bullets, Bullet{Pos: V(690, 450), Radius: BulletRadius, Alive: true})

	popped := 0
	w.Events.Subscribe(EventBallPopped, func(Event) { popped++ })

	w.Step(1.0/60, Intent{Pointer: farPointer})

	if len(w.Balls) != 0 || len(w.Bullets) != 0 {
		t.Fatalf("after step: %d balls, %d bullets", len(w.Balls), len(w.Bullets))
	}
	if w.Particles.Len() != ParticlesPerKill {
		t.Fatalf("particles = %d", w.Particles.Len())
	}
	if popped != 1 {
		t.Fatalf("popped events = %d", popped)
	}
}

func TestWorldBulletFirstHitWins(t *testing.T) {
	w := emptyWorld(t)
	w.Balls = append(w.Balls,
		NewBall(V(700, 450), V(0, 0), 20, White),
		NewBall(V(705, 450), V(0, 0), 20, White),
	)
	w.Bullets = append(w.Bullets, Bullet{Pos: V(702, 450), Radius: BulletRadius, Alive: true})

	w.hitBalls()

	if w.Balls[0].Alive || !w.Balls[1].Alive {
		t.Fatalf("bullet should kill only the first ball: %v %v", w.Balls[0].Alive, w.Balls[1].Alive)
	}
	if w.Particles.Len() != ParticlesPerKill {
		t.Fatalf("particles = %d", w.Particles.Len())
	}
}

func TestWorldFire(t *testing.T) {
	w := emptyWorld(t)
	w.Player.Pos = V(500, 450)

	if !w.Fire(V(600, 450)) {
		t.Fatalf("fire refused")
	}
	if got := w.Bullets[0].Vel; got != V(BulletSpeed, 0) {
		t.Fatalf("bullet vel = %+v", got)
	}
	if got := w.Bullets[0].Pos; got != V(500, 450) {
		t.Fatalf("bullet pos = %+v", got)
	}
	if w.Fire(V(500.05, 450)) {
		t.Fatalf("fire with target on the player should be ignored")
	}
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d", len(w.Bullets))
	}
}

func TestWorldPopulationCap(t *testing.T) {
	w := NewWorld(3, nil)
	rejected := 0
	w.Events.Subscribe(EventSpawnRejected, func(Event) { rejected++ })

	for range 3 * MaxBalls {
		w.SpawnBall(V(500, 450))
	}
	if len(w.Balls) != MaxBalls {
		t.Fatalf("balls = %d, want %d", len(w.Balls), MaxBalls)
	}
	if rejected != 3*MaxBalls-(MaxBalls-InitialBalls) {
		t.Fatalf("rejected = %d", rejected)
	}

	for range 50 {
		w.Step(1.0/60, Intent{Pointer: V(500, 450), Spawn: true})
		if len(w.Balls) > MaxBalls {
			t.Fatalf("population %d above cap", len(w.Balls))
		}
	}
}

func TestWorldPause(t *testing.T) {
	w := NewWorld(8, nil)
	w.Step(1.0/60, Intent{TogglePause: true, Pointer: farPointer})
	if !w.Paused {
		t.Fatalf("world should be paused")
	}
	frame := w.Frame
	before := append([]Ball(nil), w.Balls...)

	for range 10 {
		w.Step(1.0/60, Intent{Pointer: V(10, 10), Spawn: true, Fire: true, Gravity: 1})
	}

	if w.Frame != frame || len(w.Balls) != len(before) || len(w.Bullets) != 0 {
		t.Fatalf("paused world advanced")
	}
	for i := range before {
		if w.Balls[i] != before[i] {
			t.Fatalf("ball %d moved while paused", i)
		}
	}
	if w.Gravity != BaseGravity {
		t.Fatalf("gravity changed while paused: %v", w.Gravity)
	}

	w.Step(1.0/60, Intent{TogglePause: true, Pointer: farPointer})
	if w.Paused || w.Frame != frame+1 {
		t.Fatalf("unpause should run the same frame: paused=%v frame=%d", w.Paused, w.Frame)
	}
}

func TestWorldToggleAttract(t *testing.T) {
	w := emptyWorld(t)
	var got []bool
	w.Events.Subscribe(EventAttractToggled, func(e Event) { got = append(got, e.On) })

	w.Step(0.01, Intent{ToggleAttract: true, Pointer: farPointer})
	w.Step(0.01, Intent{ToggleAttract: true, Pointer: farPointer})

	if len(got) != 2 || !got[0] || got[1] {
		t.Fatalf("toggle events = %v", got)
	}
	if w.Attract {
		t.Fatalf("two toggles should land back in repel mode")
	}
}

func TestWorldPointerPull(t *testing.T) {
	w := emptyWorld(t)
	pos := V(500, 450)
	pointer := V(600, 450)

	repel := w.pointerPull(pos, pointer)
	if !near(repel.X, -10, 1e-9) || repel.Y != 0 {
		t.Fatalf("repel = %+v, want (-10, 0)", repel)
	}

	w.Attract = true
	attract := w.pointerPull(pos, pointer)
	if !near(attract.X, 10, 1e-9) || attract.Y != 0 {
		t.Fatalf("attract = %+v, want (10, 0)", attract)
	}

	if on := w.pointerPull(pos, pos); on != (Vec2{}) {
		t.Fatalf("pull with pointer on the ball = %+v, want zero", on)
	}
	tight := w.pointerPull(pos, V(500.5, 450))
	if !near(tight.X, PointerForce, 1e-6) {
		t.Fatalf("close pull = %+v, want distance floored at 1", tight)
	}
}

func TestWorldTunablesClamp(t *testing.T) {
	w := emptyWorld(t)

	w.Step(1, Intent{Gravity: 1, Friction: 1, Pointer: farPointer})
	if !near(w.Gravity, BaseGravity+GravityStep, 1e-9) || !near(w.Friction, BaseFriction+FrictionStep, 1e-9) {
		t.Fatalf("one second of raise: g=%v f=%v", w.Gravity, w.Friction)
	}

	w.adjustTunables(100, 1, 1)
	if w.Gravity != MaxGravity || w.Friction != MaxFriction {
		t.Fatalf("upper clamp: g=%v f=%v", w.Gravity, w.Friction)
	}
	w.adjustTunables(100, -1, -1)
	if w.Gravity != MinGravity || w.Friction != MinFriction {
		t.Fatalf("lower clamp: g=%v f=%v", w.Gravity, w.Friction)
	}
}

func TestWorldCompactKeepsOrder(t *testing.T) {
	w := emptyWorld(t)
	for i := range 5 {
		b := NewBall(V(float64(100+i*100), 100), V(0, 0), 10, White)
		b.Alive = i%2 == 0
		w.Balls = append(w.Balls, b)
	}
	w.compact()
	if len(w.Balls) != 3 {
		t.Fatalf("balls = %d", len(w.Balls))
	}
	for i, want := range []float64{100, 300, 500} {
		if w.Balls[i].Pos.X != want {
			t.Fatalf("ball %d at x=%v, want %v", i, w.Balls[i].Pos.X, want)
		}
	}
}

func TestWorldShapesAndHUD(t *testing.T) {
	w := emptyWorld(t)
	w.Balls = append(w.Balls, NewBall(V(100, 100), V(0, 0), 12, White))
	w.Bullets = append(w.Bullets, NewBullet(V(200, 200), V(1, 0)))
	w.Particles.Add(Particle{Pos: V(300, 300), Radius: 3, Life: 0.5, Color: White})
	w.Particles.Add(Particle{Pos: V(300, 300), Radius: 3, Life: 0, Color: White})

	shapes := w.Shapes(nil)
	kinds := []ShapeKind{ShapeBall, ShapeBullet, ShapeParticle, ShapePlayer}
	if len(shapes) != len(kinds) {
		t.Fatalf("shapes = %d, want %d", len(shapes), len(kinds))
	}
	for i, k := range kinds {
		if shapes[i].Kind != k {
			t.Errorf("shape %d kind = %v, want %v", i, shapes[i].Kind, k)
		}
	}
	if shapes[1].Color != Red || shapes[3].Color != Black || shapes[3].Radius != PlayerRadius {
		t.Errorf("unexpected styling: %+v", shapes)
	}

	hud := w.HUD()
	if hud.Balls != 1 || hud.Bullets != 1 || hud.Particles != 2 || hud.MaxBalls != MaxBalls {
		t.Fatalf("hud = %+v", hud)
	}
	lines := hud.Lines()
	if lines[0] != "Balls: 1 (Max 200)" || lines[5] != "Attract mode (Right click): OFF" {
		t.Fatalf("hud lines = %q", lines)
	}
}

func TestWorldStaysFinite(t *testing.T) {
	w := NewWorld(77, nil)
	for i := range 600 {
		in := Intent{Pointer: V(float64(i%1000), 450), Spawn: i%5 == 0, ToggleAttract: i%97 == 0}
		w.Step(1.0/60, in)
		for _, b := range w.Balls {
			if math.IsNaN(b.Pos.X) || math.IsNaN(b.Pos.Y) || math.IsInf(b.Vel.X, 0) || math.IsInf(b.Vel.Y, 0) {
				t.Fatalf("frame %d: ball state blew up: %+v", i, b)
			}
		}
	}
}
