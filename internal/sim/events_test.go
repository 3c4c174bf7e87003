package sim

import "testing"

func TestEventBusDispatch(t *testing.T) {
	eb := NewEventBus()
	var popped, all []EventType
	eb.Subscribe(EventBallPopped, func(e Event) { popped = append(popped, e.Type) })
	eb.SubscribeAll(func(e Event) { all = append(all, e.Type) })

	eb.Emit(Event{Type: EventBallPopped})
	eb.Emit(Event{Type: EventBulletFired})

	if len(popped) != 1 {
		t.Fatalf("popped handler ran %d times", len(popped))
	}
	if len(all) != 2 || all[0] != EventBallPopped || all[1] != EventBulletFired {
		t.Fatalf("catch-all saw %v", all)
	}
}

func TestEventBusNilEmit(t *testing.T) {
	var eb *EventBus
	eb.Emit(Event{Type: EventPauseToggled})
}

func TestEventTypeString(t *testing.T) {
	if got := EventSpawnRejected.String(); got != "spawn_rejected" {
		t.Fatalf("String() = %q", got)
	}
	if got := EventType(99).String(); got != "unknown" {
		t.Fatalf("String() = %q", got)
	}
}
