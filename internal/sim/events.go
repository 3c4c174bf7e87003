package sim

type EventType int

const (
	EventBallSpawned EventType = iota
	EventSpawnRejected
	EventBulletFired
	EventBallPopped
	EventAttractToggled
	EventPauseToggled
)

func (t EventType) String() string {
	switch t {
	case EventBallSpawned:
		return "ball_spawned"
	case EventSpawnRejected:
		return "spawn_rejected"
	case EventBulletFired:
		return "bullet_fired"
	case EventBallPopped:
		return "ball_popped"
	case EventAttractToggled:
		return "attract_toggled"
	case EventPauseToggled:
		return "pause_toggled"
	}
	return "unknown"
}

type Event struct {
	Type   EventType
	Pos    Vec2
	Radius float64 // popped/spawned ball radius
	On     bool    // new state for toggles
}

type EventHandler func(Event)

// EventBus fans world events out to frontends (sound, camera shake).
// Handlers run synchronously inside Step and must not mutate the world.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventBallSpawned; t <= EventPauseToggled; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
