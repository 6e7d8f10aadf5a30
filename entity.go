package sekai

// InvalidID is the zero entity id. No live entity ever carries it.
const InvalidID uint64 = 0

// Entity is an identity plus its attached component set. Entities hold no
// logic of their own beyond managing components: any value type may be used
// as a component, though at most one value of each type may be attached to a
// single entity at a time.
//
// Do not construct entities yourself, use World.Create; do not drop them
// yourself, use World.Destroy.
type Entity struct {
	world          *World
	components     map[TypeIndex]componentContainer
	id             uint64
	pendingDestroy bool
}

func newEntity(w *World, id uint64) *Entity {
	return &Entity{
		world:      w,
		components: make(map[TypeIndex]componentContainer),
		id:         id,
	}
}

// ID returns the entity's id. Ids are positive, assigned in creation order
// and never reused within a reset epoch.
func (e *Entity) ID() uint64 {
	return e.id
}

// World returns the world that created this entity. Entities never migrate
// between worlds.
func (e *Entity) World() *World {
	return e.world
}

// IsPendingDestroy reports whether the entity has been flagged for removal
// but not yet physically dropped from the world.
func (e *Entity) IsPendingDestroy() bool {
	return e.pendingDestroy
}

// RemoveAll detaches every component from the entity. Each container's
// removal hook fires before its storage is released. The world calls this
// automatically when the entity is physically dropped.
func (e *Entity) RemoveAll() {
	for _, c := range e.components {
		c.removed(e)
		c.release()
	}
	clear(e.components)
}

// Has reports whether the entity has a component of type T.
func Has[T any](e *Entity) bool {
	_, ok := e.components[TypeIndexOf[T]()]
	return ok
}

// Has2 reports whether the entity has components of both listed types. The
// order of types does not matter.
func Has2[T1, T2 any](e *Entity) bool {
	return Has[T1](e) && Has[T2](e)
}

// Has3 reports whether the entity has components of all three listed types.
func Has3[T1, T2, T3 any](e *Entity) bool {
	return Has[T1](e) && Has[T2](e) && Has[T3](e)
}

// Has4 reports whether the entity has components of all four listed types.
func Has4[T1, T2, T3, T4 any](e *Entity) bool {
	return Has[T1](e) && Has[T2](e) && Has[T3](e) && Has[T4](e)
}

// Assign attaches a component of type T built from value, or replaces the
// existing one in place. Either way exactly one OnComponentAssigned[T] event
// is emitted and the returned handle references the live storage slot.
//
// Components are best kept simple value types; wrap pointers or references
// in a struct if you must store them.
func Assign[T any](e *Entity, value T) Handle[T] {
	idx := TypeIndexOf[T]()
	if existing, ok := e.components[idx]; ok {
		c := existing.(*container[T])
		c.data = value
		h := Handle[T]{&c.data}
		Emit(e.world, OnComponentAssigned[T]{Entity: e, Component: h})
		return h
	}
	c := &container[T]{data: value}
	e.components[idx] = c
	h := Handle[T]{&c.data}
	Emit(e.world, OnComponentAssigned[T]{Entity: e, Component: h})
	return h
}

// Remove detaches the component of type T, firing OnComponentRemoved[T]
// before the storage is released. It reports whether a removal happened;
// removing an absent component is a no-op.
func Remove[T any](e *Entity) bool {
	idx := TypeIndexOf[T]()
	c, ok := e.components[idx]
	if !ok {
		return false
	}
	c.removed(e)
	c.release()
	delete(e.components, idx)
	return true
}

// Get returns a handle to the entity's component of type T, or an invalid
// handle if the entity does not have one.
func Get[T any](e *Entity) Handle[T] {
	if c, ok := e.components[TypeIndexOf[T]()]; ok {
		return Handle[T]{&c.(*container[T]).data}
	}
	return Handle[T]{}
}

// With calls fn with a handle to the entity's T component only if the entity
// has one, and reports whether fn ran.
func With[T any](e *Entity, fn func(Handle[T])) bool {
	if !Has[T](e) {
		return false
	}
	fn(Get[T](e))
	return true
}

// With2 calls fn with handles to both components only if the entity has both.
func With2[T1, T2 any](e *Entity, fn func(Handle[T1], Handle[T2])) bool {
	if !Has2[T1, T2](e) {
		return false
	}
	fn(Get[T1](e), Get[T2](e))
	return true
}

// With3 calls fn with handles to all three components only if the entity has
// all of them.
func With3[T1, T2, T3 any](e *Entity, fn func(Handle[T1], Handle[T2], Handle[T3])) bool {
	if !Has3[T1, T2, T3](e) {
		return false
	}
	fn(Get[T1](e), Get[T2](e), Get[T3](e))
	return true
}
