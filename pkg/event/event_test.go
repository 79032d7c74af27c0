// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

// TestNewEventBus tests the creation of a new event bus
func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}

	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}

	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

// TestBaseEvent tests the BaseEvent functionality
func TestBaseEvent_GetType_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{
			name:      "EntitySpawned event",
			eventType: EntitySpawned,
			source:    "test_source",
		},
		{
			name:      "EntityCollision event",
			eventType: EntityCollision,
			source:    123,
		},
		{
			name:      "Empty source",
			eventType: GameStarted,
			source:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &BaseEvent{
				EventType: tt.eventType,
				Source:    tt.source,
			}

			if event.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", event.GetType(), tt.eventType)
			}

			if event.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", event.GetSource(), tt.source)
			}
		})
	}
}

func TestBus_SubscribePublish_DeliversInOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int

	bus.Subscribe(EntitySpawned, func(e Event) { order = append(order, 1) })
	bus.Subscribe(EntitySpawned, func(e Event) { order = append(order, 2) })
	bus.Subscribe(EntityDespawned, func(e Event) { order = append(order, 99) })

	bus.Publish(NewEntityEvent(EntitySpawned, nil, 7, "enemy"))

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handlers ran as %v, want [1 2]", order)
	}
}

func TestBus_Unsubscribe_RemovesOnlyThatHandler(t *testing.T) {
	bus := NewEventBus()
	calls := map[string]int{}

	first := bus.Subscribe(FrameCompleted, func(e Event) { calls["first"]++ })
	bus.Subscribe(FrameCompleted, func(e Event) { calls["second"]++ })

	bus.Unsubscribe(first)
	bus.Unsubscribe(first)
	bus.Unsubscribe(nil)
	bus.Publish(NewFrameEvent(nil, 1, 0, 0))

	if calls["first"] != 0 {
		t.Errorf("unsubscribed handler ran %d times", calls["first"])
	}
	if calls["second"] != 1 {
		t.Errorf("remaining handler ran %d times, want 1", calls["second"])
	}
}

func TestBus_HasSubscribers(t *testing.T) {
	bus := NewEventBus()
	if bus.HasSubscribers(EntityCollision) {
		t.Error("new bus should have no subscribers")
	}

	sub := bus.Subscribe(EntityCollision, func(Event) {})
	if !bus.HasSubscribers(EntityCollision) {
		t.Error("expected subscriber after Subscribe")
	}

	bus.Unsubscribe(sub)
	if bus.HasSubscribers(EntityCollision) {
		t.Error("expected no subscriber after Unsubscribe")
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(&BaseEvent{EventType: GameStopped})
}

func TestEventConstructors(t *testing.T) {
	t.Run("entity", func(t *testing.T) {
		e := NewEntityEvent(EntityDespawned, "src", 3, "projectile")
		if e.GetType() != EntityDespawned || e.EntityID != 3 || e.Kind != "projectile" || e.GetSource() != "src" {
			t.Errorf("unexpected entity event %+v", e)
		}
	})

	t.Run("collision", func(t *testing.T) {
		e := NewCollisionEvent(nil, 1, 2)
		if e.GetType() != EntityCollision || e.EntityA != 1 || e.EntityB != 2 {
			t.Errorf("unexpected collision event %+v", e)
		}
	})

	t.Run("frame", func(t *testing.T) {
		e := NewFrameEvent(nil, 10, 33, 2)
		if e.GetType() != FrameCompleted || e.Frame != 10 || e.Live != 33 || e.Destroyed != 2 {
			t.Errorf("unexpected frame event %+v", e)
		}
	})
}

func TestBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := bus.Subscribe(GameStarted, func(Event) {})
			bus.Unsubscribe(sub)
		}()
		go func() {
			defer wg.Done()
			bus.Publish(&BaseEvent{EventType: GameStarted})
		}()
	}

	wg.Wait()
}
