package sekai

// Resources holds at most one value per type: frame-global collaborators
// such as configuration, RNG state or score counters that belong to the
// world as a whole rather than to any entity. Single-owner, no locking,
// like the rest of the world.
type Resources struct {
	items map[TypeIndex]any
}

func (r *Resources) init() {
	r.items = make(map[TypeIndex]any)
}

// Clear removes every resource from the store.
func (r *Resources) Clear() {
	clear(r.items)
}

// AddResource stores res as the resource of type T. Panics if a resource of
// the same type is already present; remove it first to replace it.
func AddResource[T any](r *Resources, res *T) {
	if res == nil {
		panic("sekai: cannot add nil resource")
	}
	idx := TypeIndexOf[T]()
	if _, ok := r.items[idx]; ok {
		panic("sekai: resource of the same type already exists")
	}
	r.items[idx] = res
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](r *Resources) bool {
	_, ok := r.items[TypeIndexOf[T]()]
	return ok
}

// GetResource returns the resource of type T, or nil if none is present.
func GetResource[T any](r *Resources) *T {
	if res, ok := r.items[TypeIndexOf[T]()]; ok {
		return res.(*T)
	}
	return nil
}

// RemoveResource removes the resource of type T and reports whether one was
// present.
func RemoveResource[T any](r *Resources) bool {
	idx := TypeIndexOf[T]()
	if _, ok := r.items[idx]; !ok {
		return false
	}
	delete(r.items, idx)
	return true
}
