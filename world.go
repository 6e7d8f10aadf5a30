// Package sekai implements a small entity/component/system engine for
// simulation loops: dynamically-shaped entities built from independently
// attachable typed components, stateless systems ticked once per frame, and
// a synchronous type-indexed event bus shared by lifecycle notifications and
// user events.
//
// Features:
// - Per-entity component maps keyed by a stable process-wide TypeIndex.
// - Generic, type-safe access (Assign, Get, Has, With) without reflection on
//   the hot path.
// - Lazy position-indexed Views that stay correct while the entity sequence
//   mutates, with deferred destruction for destroy-during-iteration.
// - Insertion-ordered subscriber buckets with synchronous emission.
// - Single-threaded by design: no internal locking, no background work.
package sekai

// World creates, destroys and manages entities, owns the system lists and
// the event bus, and drives the per-frame tick. The entity sequence keeps
// creation order and is compacted only at cleanup boundaries, never
// mid-scan.
//
// Event subscribers registered by external owners are not managed by the
// World: their lifetime is the owner's responsibility.
type World struct {
	entities        []*Entity
	systems         []System
	disabledSystems []System
	events          eventBus
	resources       Resources
	lastEntityID    uint64
	cleanupOnTick   bool
}

// Option configures a World at construction time.
type Option func(*World)

// WithManualCleanup disables the automatic Cleanup call at the start of each
// Tick. The application must then call Cleanup itself or pending-destroy
// entities will accumulate.
func WithManualCleanup() Option {
	return func(w *World) {
		w.cleanupOnTick = false
	}
}

// WithCapacity pre-sizes the entity sequence for roughly n live entities,
// avoiding slice growth during bursts of creation.
func WithCapacity(n int) Option {
	return func(w *World) {
		w.entities = make([]*Entity, 0, n)
	}
}

// NewWorld creates an empty world. By default every Tick begins with a
// Cleanup pass; see WithManualCleanup.
func NewWorld(opts ...Option) *World {
	w := &World{
		events:        newEventBus(),
		cleanupOnTick: true,
	}
	w.resources.init()
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Create allocates a new entity with the next id, appends it to the entity
// sequence and emits OnEntityCreated. Ids start at 1 and are never reused
// within a reset epoch.
func (w *World) Create() *Entity {
	w.lastEntityID++
	e := newEntity(w, w.lastEntityID)
	w.entities = append(w.entities, e)
	Emit(w, OnEntityCreated{Entity: e})
	return e
}

// Destroy destroys an entity, emitting OnEntityDestroyed while the entity is
// still structurally intact. A nil entity is a no-op.
//
// With immediate false (recommended) the entity is only flagged
// pending-destroy and physically dropped at the next Cleanup or Tick;
// destroying it again non-immediately is then a no-op, while destroying it
// again with immediate true drops it right away without a second
// OnEntityDestroyed.
//
// Do not pass immediate while iterating: physical removal shifts positions
// and the scan will skip or revisit entities. Defer instead and let the next
// cleanup boundary compact the sequence.
func (w *World) Destroy(e *Entity, immediate bool) {
	if e == nil {
		return
	}
	if e.pendingDestroy {
		if immediate {
			w.dropEntity(e)
		}
		return
	}
	e.pendingDestroy = true
	Emit(w, OnEntityDestroyed{Entity: e})
	if immediate {
		w.dropEntity(e)
	}
}

// dropEntity physically removes e from the sequence and detaches its
// components, firing their removal hooks.
func (w *World) dropEntity(e *Entity) {
	for i, cur := range w.entities {
		if cur == e {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
	e.RemoveAll()
}

// Cleanup physically drops every pending-destroy entity still in the
// sequence and reports whether any were dropped. It runs automatically at
// the start of Tick unless the world was built with WithManualCleanup.
func (w *World) Cleanup() bool {
	dropped := 0
	kept := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if e.pendingDestroy {
			e.RemoveAll()
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	w.entities = kept
	return dropped > 0
}

// Reset destroys every entity unconditionally, emitting OnEntityDestroyed
// for each entity not already pending destroy, clears the sequence and
// restarts id numbering: the next Create returns id 1. Systems and
// subscribers are left registered.
func (w *World) Reset() {
	for _, e := range w.entities {
		if !e.pendingDestroy {
			e.pendingDestroy = true
			Emit(w, OnEntityDestroyed{Entity: e})
		}
		e.RemoveAll()
	}
	w.entities = w.entities[:0]
	w.lastEntityID = 0
}

// RegisterSystem appends s to the active system list and calls its Configure
// hook. It returns s for convenience chaining.
func (w *World) RegisterSystem(s System) System {
	w.systems = append(w.systems, s)
	s.Configure(w)
	return s
}

// UnregisterSystem removes s from whichever list currently holds it and
// calls its Unconfigure hook. The system is never ticked again unless it is
// re-registered, which runs Configure anew.
func (w *World) UnregisterSystem(s System) {
	w.systems = removeSystem(w.systems, s)
	w.disabledSystems = removeSystem(w.disabledSystems, s)
	s.Unconfigure(w)
}

// EnableSystem moves s from the disabled list back into the active list
// without re-running Configure. A no-op if s is not currently disabled.
func (w *World) EnableSystem(s System) {
	for i, cur := range w.disabledSystems {
		if cur == s {
			w.disabledSystems = append(w.disabledSystems[:i], w.disabledSystems[i+1:]...)
			w.systems = append(w.systems, s)
			return
		}
	}
}

// DisableSystem moves s from the active list to the disabled list without
// running Unconfigure. A no-op if s is not currently active.
func (w *World) DisableSystem(s System) {
	for i, cur := range w.systems {
		if cur == s {
			w.systems = append(w.systems[:i], w.systems[i+1:]...)
			w.disabledSystems = append(w.disabledSystems, s)
			return
		}
	}
}

// Tick advances the world one step: a Cleanup pass (unless disabled by
// WithManualCleanup) followed by every active system's Tick, in registration
// order, each receiving data unchanged.
func (w *World) Tick(data TickData) {
	if w.cleanupOnTick {
		w.Cleanup()
	}
	for i := 0; i < len(w.systems); i++ {
		w.systems[i].Tick(w, data)
	}
}

// Count returns the number of entities currently in the sequence, including
// those pending destroy.
func (w *World) Count() int {
	return len(w.entities)
}

// ByIndex returns the entity at position idx in creation order, or nil if
// idx is out of range.
func (w *World) ByIndex(idx int) *Entity {
	if idx < 0 || idx >= len(w.entities) {
		return nil
	}
	return w.entities[idx]
}

// ByID returns the entity with the given id, or nil if no such entity is
// live. This is a linear scan.
//
// TODO: keep an id -> entity index so this stops being O(n).
func (w *World) ByID(id uint64) *Entity {
	if id == InvalidID || id > w.lastEntityID {
		return nil
	}
	for _, e := range w.entities {
		if e.id == id {
			return e
		}
	}
	return nil
}

// All returns a view over the whole entity sequence with no component
// filter.
func (w *World) All(includePendingDestroy bool) *EntityView {
	return &EntityView{world: w, curIdx: -1, includePending: includePendingDestroy}
}

// AllEach runs fn once per entity in creation order.
func (w *World) AllEach(fn func(*Entity), includePendingDestroy bool) {
	v := w.All(includePendingDestroy)
	for v.Next() {
		fn(v.Entity())
	}
}

// UnsubscribeAll removes sub from every subscriber bucket regardless of
// event type. Call it when a subscriber is going away so no bucket keeps
// invoking it.
func (w *World) UnsubscribeAll(sub any) {
	w.events.removeAll(sub)
}

// Resources returns the world's resource store: one value per type for
// frame-global collaborators that are not per-entity data.
func (w *World) Resources() *Resources {
	return &w.resources
}

// Teardown shuts the world down: every remaining system (active or
// disabled) is unconfigured, OnEntityDestroyed is emitted for every entity
// not already pending destroy, and all entities are dropped with their
// component removal hooks fired. Externally owned event subscribers are not
// touched. The world must not be used afterwards.
func (w *World) Teardown() {
	for _, s := range w.systems {
		s.Unconfigure(w)
	}
	for _, s := range w.disabledSystems {
		s.Unconfigure(w)
	}
	for _, e := range w.entities {
		if !e.pendingDestroy {
			e.pendingDestroy = true
			Emit(w, OnEntityDestroyed{Entity: e})
		}
		e.RemoveAll()
	}
	w.entities = nil
	w.systems = nil
	w.disabledSystems = nil
}

func removeSystem(list []System, s System) []System {
	for i, cur := range list {
		if cur == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
