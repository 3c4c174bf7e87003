// Package audio turns world events into short procedural sound effects.
package audio

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"playground/internal/config"
	"playground/internal/sim"
)

// MaxVoices caps simultaneous effects so bursts of pops don't clip.
const MaxVoices = 8

// Backend plays mono samples at SampleRate. Play reports false when the
// sound was dropped.
type Backend interface {
	Play(mono []float64, gain float64) bool
	Close() error
}

// Player renders and caches effects and hands them to a Backend. A Player
// without a backend is silent, so callers never need to check.
type Player struct {
	backend Backend
	volume  float64
	log     *zap.Logger

	mu    sync.Mutex
	cache map[cacheKey][]float64
}

type cacheKey struct {
	sound Sound
	size  int
}

// New opens the configured backend. Failing to open audio is not fatal:
// the error is logged and a silent Player returned.
func New(cfg config.AudioConfig, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Enabled {
		log.Info("audio disabled")
		return NewPlayer(nil, 0, log)
	}
	var (
		b   Backend
		err error
	)
	switch cfg.Backend {
	case "beep":
		b, err = newBeepBackend()
	default:
		b, err = newOtoBackend()
	}
	if err != nil {
		log.Warn("audio init failed, continuing without sound",
			zap.String("backend", cfg.Backend),
			zap.Error(err),
		)
		return NewPlayer(nil, 0, log)
	}
	log.Info("audio ready", zap.String("backend", cfg.Backend), zap.Float64("volume", cfg.Volume))
	return NewPlayer(b, cfg.Volume, log)
}

// NewPlayer wraps an already opened backend.
func NewPlayer(b Backend, volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		backend: b,
		volume:  min(max(volume, 0), 1),
		log:     log,
		cache:   make(map[cacheKey][]float64),
	}
}

// Play starts effect s. size is the ball radius for SoundPop.
func (p *Player) Play(s Sound, size float64) {
	if p == nil || p.backend == nil || p.volume <= 0 {
		return
	}
	if !p.backend.Play(p.samples(s, size), p.volume) {
		p.log.Debug("sound dropped", zap.Stringer("sound", s))
	}
}

func (p *Player) samples(s Sound, size float64) []float64 {
	k := cacheKey{sound: s}
	if s == SoundPop {
		k.size = int(math.Round(size))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	buf, ok := p.cache[k]
	if !ok {
		buf = Generate(s, float64(k.size))
		p.cache[k] = buf
	}
	return buf
}

// Attach subscribes the player to every world event.
func (p *Player) Attach(bus *sim.EventBus) {
	bus.SubscribeAll(func(e sim.Event) {
		s, size := soundFor(e)
		p.Play(s, size)
	})
}

func soundFor(e sim.Event) (Sound, float64) {
	switch e.Type {
	case sim.EventBallSpawned:
		return SoundSpawn, 0
	case sim.EventSpawnRejected:
		return SoundRejected, 0
	case sim.EventBulletFired:
		return SoundShot, 0
	case sim.EventBallPopped:
		return SoundPop, e.Radius
	case sim.EventAttractToggled:
		if e.On {
			return SoundAttractOn, 0
		}
		return SoundAttractOff, 0
	case sim.EventPauseToggled:
		if e.On {
			return SoundPause, 0
		}
		return SoundResume, 0
	}
	return -1, 0
}

func (p *Player) Close() error {
	if p == nil || p.backend == nil {
		return nil
	}
	return p.backend.Close()
}
