package sekai

// Handle is a possibly-invalid reference to a component's live storage slot.
// Whenever you get a component from an entity it is wrapped in a Handle.
//
// A Handle is invalid exactly when the wrapped slot is unset; call IsValid
// before dereferencing. Dereferencing an invalid handle is a programming
// error, not a recoverable condition.
type Handle[T any] struct {
	value *T
}

// IsValid reports whether the handle references a live component slot.
func (h Handle[T]) IsValid() bool {
	return h.value != nil
}

// Get returns a pointer to the live component value, or nil if the handle is
// invalid. The pointer stays valid for as long as the component remains
// attached to its entity; replacing the component via Assign writes through
// the same slot.
func (h Handle[T]) Get() *T {
	return h.value
}

// componentContainer is the closed capability interface every typed container
// implements: notify-on-removal and release. Only the owning entity and the
// world call these.
type componentContainer interface {
	// removed fires the OnComponentRemoved event for the container's value.
	// Called exactly once, before release, whenever the container is detached
	// from its entity.
	removed(e *Entity)
	// release drops the container's storage. After release the container must
	// not be touched again.
	release()
}

// container owns exactly one value of type T on behalf of an entity.
type container[T any] struct {
	data T
}

func (c *container[T]) removed(e *Entity) {
	Emit(e.world, OnComponentRemoved[T]{Entity: e, Component: Handle[T]{&c.data}})
}

func (c *container[T]) release() {
	// Storage is reclaimed by the GC once the map entry is erased.
}
