package sim

// Arena dimensions (in world units; one unit is one pixel at scale 1).
const (
	ArenaWidth  = 1000.0
	ArenaHeight = 900.0
)

// Ball population.
const (
	MaxBalls     = 200
	InitialBalls = 15
)

// Ball physics and look.
const (
	BallMinRadius     = 10.0
	BallMaxRadius     = 30.0
	BallMassPerRadius = 0.5
	BallRestitution   = 0.9 // ball-ball
	WallRestitution   = 0.8 // ball-wall
	BallInitialSpeed  = 150.0
	BallSpawnSpeed    = 200.0
	BallHueRate       = 0.2 // hue turns per second
	BallHueSaturation = 0.8
	BallHueValue      = 0.9
	BallColorMin      = 50
	BallColorMax      = 254
)

// Pointer force field.
const (
	PointerForce     = 100000.0
	PointerMinDistSq = 1.0
)

// Player avatar.
const (
	PlayerRadius       = 20.0
	PlayerAcceleration = 800.0
	PlayerFriction     = 10.0
	PlayerMaxSpeed     = 400.0
)

// Projectiles.
const (
	BulletSpeed     = 500.0
	BulletRadius    = 5.0
	FireMinDistance = 0.1
)

// Kill bursts.
const (
	ParticlesPerKill  = 15
	ParticleMinSpeed  = 100.0
	ParticleMaxSpeed  = 300.0
	ParticleMinRadius = 2.0
	ParticleMaxRadius = 6.0
	ParticleGravity   = 300.0
	ParticleFade      = 0.95 // per frame, not dt-scaled
	ParticleLife      = 1.0
)

// Global tunables.
const (
	BaseGravity  = 200.0
	MinGravity   = 0.0
	MaxGravity   = 1000.0
	GravityStep  = 50.0 // per second while held
	BaseFriction = 1.5
	MinFriction  = 0.0
	MaxFriction  = 5.0
	FrictionStep = 0.5 // per second while held
)

// DefaultMaxFrame caps a single step's dt so a stalled frame can't tunnel
// balls through each other.
const DefaultMaxFrame = 0.1
