package sekai

// Built-in lifecycle events. They travel over the same bus as user events:
// subscribe to them like any other event type.

// OnEntityCreated is emitted by World.Create after the new entity has been
// appended to the world.
type OnEntityCreated struct {
	Entity *Entity
}

// OnEntityDestroyed is emitted when an entity is destroyed, while the entity
// is still structurally intact. It fires once per entity regardless of how
// many times Destroy is called.
type OnEntityDestroyed struct {
	Entity *Entity
}

// OnComponentAssigned is emitted on every Assign call for T, whether the
// component was freshly attached or replaced in place.
type OnComponentAssigned[T any] struct {
	Entity    *Entity
	Component Handle[T]
}

// OnComponentRemoved is emitted exactly once before a component's storage is
// released: on explicit Remove, on RemoveAll, and when the owning entity is
// physically dropped. The handle is still valid for the duration of the
// emission.
type OnComponentRemoved[T any] struct {
	Entity    *Entity
	Component Handle[T]
}
