// pkg/engine/registry.go
package engine

import (
	"slices"

	"github.com/opd-ai/go-invaders/pkg/entity"
	"github.com/opd-ai/go-invaders/pkg/event"
)

// Registry is the ordered live set of entities. It is the entity.World handed
// to every entity, so spawns and self-despawns land here directly. It is only
// touched from the loop goroutine and is not locked.
type Registry struct {
	entities []entity.Entity
	bus      *event.Bus

	// recent collects spawns since the last BeginPass
	recent []entity.Entity

	spawned   uint64
	despawned uint64
}

// NewRegistry creates an empty registry. bus may be nil.
func NewRegistry(bus *event.Bus) *Registry {
	return &Registry{
		entities: make([]entity.Entity, 0, 64),
		bus:      bus,
	}
}

// Spawn appends e to the live set
func (r *Registry) Spawn(e entity.Entity) {
	r.entities = append(r.entities, e)
	r.recent = append(r.recent, e)
	r.spawned++
	r.publish(event.EntitySpawned, e)
}

// Despawn removes e by identity. Removing an entity that is not live is a
// no-op.
func (r *Registry) Despawn(e entity.Entity) {
	i := r.indexOf(e)
	if i < 0 {
		return
	}
	r.entities = slices.Delete(r.entities, i, i+1)
	r.despawned++
	r.publish(event.EntityDespawned, e)
}

// BeginPass forgets earlier spawns so Recent reports only new ones
func (r *Registry) BeginPass() {
	clear(r.recent)
	r.recent = r.recent[:0]
}

// Recent returns the i-th entity spawned since BeginPass
func (r *Registry) Recent(i int) (entity.Entity, bool) {
	if i < 0 || i >= len(r.recent) {
		return nil, false
	}
	return r.recent[i], true
}

// Contains reports whether e is in the live set
func (r *Registry) Contains(e entity.Entity) bool {
	return r.indexOf(e) >= 0
}

// Filter keeps the entities for which keep returns true, preserving order,
// and returns the removed ones in their former order.
func (r *Registry) Filter(keep func(entity.Entity) bool) []entity.Entity {
	var removed []entity.Entity
	kept := r.entities[:0]
	for _, e := range r.entities {
		if keep(e) {
			kept = append(kept, e)
		} else {
			removed = append(removed, e)
		}
	}
	clear(r.entities[len(kept):])
	r.entities = kept

	for _, e := range removed {
		r.despawned++
		r.publish(event.EntityDespawned, e)
	}
	return removed
}

// Snapshot returns a copy of the live set. Later spawns and despawns do not
// affect it.
func (r *Registry) Snapshot() []entity.Entity {
	return slices.Clone(r.entities)
}

// Len returns the number of live entities
func (r *Registry) Len() int {
	return len(r.entities)
}

// Count returns the number of live entities of the given kind
func (r *Registry) Count(kind entity.Kind) int {
	n := 0
	for _, e := range r.entities {
		if e.GetKind() == kind {
			n++
		}
	}
	return n
}

func (r *Registry) indexOf(e entity.Entity) int {
	for i, live := range r.entities {
		if live == e {
			return i
		}
	}
	return -1
}

func (r *Registry) publish(eventType event.Type, e entity.Entity) {
	if r.bus == nil || !r.bus.HasSubscribers(eventType) {
		return
	}
	r.bus.Publish(event.NewEntityEvent(eventType, r, uint64(e.GetID()), e.GetKind().String()))
}
