package sekai

// View is a lazy iterator over every entity that has a component of type T.
// It walks the world's entity sequence by position, in creation order, and
// re-checks the filter against live state on every advance: entities mutated
// after the view was created, at positions not yet visited, are judged by
// their current component set. Entities pending destroy are skipped unless
// the view was created with includePendingDestroy.
//
// Views for more component types (View2, View3, View4) follow the same
// pattern.
//
// Example:
//
//	view := sekai.NewView[Position](world, false)
//	for view.Next() {
//	    pos := view.Get().Get()
//	    // ... process view.Entity()
//	}
type View[T any] struct {
	world          *World
	curIdx         int
	includePending bool
}

// NewView creates a view over all entities with a component of type T.
func NewView[T any](w *World, includePendingDestroy bool) *View[T] {
	return &View[T]{world: w, curIdx: -1, includePending: includePendingDestroy}
}

// Reset rewinds the view so the next Next call begins a fresh scan from the
// start of the entity sequence.
func (v *View[T]) Reset() {
	v.curIdx = -1
}

// Next advances to the next matching entity. It returns true if one was
// found and false once the scan is complete. Call it before Entity or Get.
func (v *View[T]) Next() bool {
	v.curIdx++
	for v.curIdx < v.world.Count() {
		e := v.world.ByIndex(v.curIdx)
		if e != nil && Has[T](e) && (v.includePending || !e.pendingDestroy) {
			return true
		}
		v.curIdx++
	}
	return false
}

// Entity returns the current entity. Only valid after Next returned true.
func (v *View[T]) Entity() *Entity {
	return v.world.ByIndex(v.curIdx)
}

// Get returns a handle to the current entity's T component, resolved against
// the entity's live state.
func (v *View[T]) Get() Handle[T] {
	return Get[T](v.world.ByIndex(v.curIdx))
}

// View2 iterates entities that have both listed component types.
type View2[T1, T2 any] struct {
	world          *World
	curIdx         int
	includePending bool
}

// NewView2 creates a view over all entities with components T1 and T2.
func NewView2[T1, T2 any](w *World, includePendingDestroy bool) *View2[T1, T2] {
	return &View2[T1, T2]{world: w, curIdx: -1, includePending: includePendingDestroy}
}

// Reset rewinds the view for a fresh scan.
func (v *View2[T1, T2]) Reset() {
	v.curIdx = -1
}

// Next advances to the next matching entity.
func (v *View2[T1, T2]) Next() bool {
	v.curIdx++
	for v.curIdx < v.world.Count() {
		e := v.world.ByIndex(v.curIdx)
		if e != nil && Has2[T1, T2](e) && (v.includePending || !e.pendingDestroy) {
			return true
		}
		v.curIdx++
	}
	return false
}

// Entity returns the current entity.
func (v *View2[T1, T2]) Entity() *Entity {
	return v.world.ByIndex(v.curIdx)
}

// Get returns handles to the current entity's T1 and T2 components.
func (v *View2[T1, T2]) Get() (Handle[T1], Handle[T2]) {
	e := v.world.ByIndex(v.curIdx)
	return Get[T1](e), Get[T2](e)
}

// View3 iterates entities that have all three listed component types.
type View3[T1, T2, T3 any] struct {
	world          *World
	curIdx         int
	includePending bool
}

// NewView3 creates a view over all entities with components T1, T2 and T3.
func NewView3[T1, T2, T3 any](w *World, includePendingDestroy bool) *View3[T1, T2, T3] {
	return &View3[T1, T2, T3]{world: w, curIdx: -1, includePending: includePendingDestroy}
}

func (v *View3[T1, T2, T3]) Reset() {
	v.curIdx = -1
}

func (v *View3[T1, T2, T3]) Next() bool {
	v.curIdx++
	for v.curIdx < v.world.Count() {
		e := v.world.ByIndex(v.curIdx)
		if e != nil && Has3[T1, T2, T3](e) && (v.includePending || !e.pendingDestroy) {
			return true
		}
		v.curIdx++
	}
	return false
}

func (v *View3[T1, T2, T3]) Entity() *Entity {
	return v.world.ByIndex(v.curIdx)
}

func (v *View3[T1, T2, T3]) Get() (Handle[T1], Handle[T2], Handle[T3]) {
	e := v.world.ByIndex(v.curIdx)
	return Get[T1](e), Get[T2](e), Get[T3](e)
}

// View4 iterates entities that have all four listed component types.
type View4[T1, T2, T3, T4 any] struct {
	world          *World
	curIdx         int
	includePending bool
}

// NewView4 creates a view over all entities with components T1..T4.
func NewView4[T1, T2, T3, T4 any](w *World, includePendingDestroy bool) *View4[T1, T2, T3, T4] {
	return &View4[T1, T2, T3, T4]{world: w, curIdx: -1, includePending: includePendingDestroy}
}

func (v *View4[T1, T2, T3, T4]) Reset() {
	v.curIdx = -1
}

func (v *View4[T1, T2, T3, T4]) Next() bool {
	v.curIdx++
	for v.curIdx < v.world.Count() {
		e := v.world.ByIndex(v.curIdx)
		if e != nil && Has4[T1, T2, T3, T4](e) && (v.includePending || !e.pendingDestroy) {
			return true
		}
		v.curIdx++
	}
	return false
}

func (v *View4[T1, T2, T3, T4]) Entity() *Entity {
	return v.world.ByIndex(v.curIdx)
}

func (v *View4[T1, T2, T3, T4]) Get() (Handle[T1], Handle[T2], Handle[T3], Handle[T4]) {
	e := v.world.ByIndex(v.curIdx)
	return Get[T1](e), Get[T2](e), Get[T3](e), Get[T4](e)
}

// EntityView iterates the whole entity sequence with no component filter.
// Create one with World.All.
type EntityView struct {
	world          *World
	curIdx         int
	includePending bool
}

// Reset rewinds the view for a fresh scan.
func (v *EntityView) Reset() {
	v.curIdx = -1
}

// Next advances to the next live entity.
func (v *EntityView) Next() bool {
	v.curIdx++
	for v.curIdx < v.world.Count() {
		e := v.world.ByIndex(v.curIdx)
		if e != nil && (v.includePending || !e.pendingDestroy) {
			return true
		}
		v.curIdx++
	}
	return false
}

// Entity returns the current entity.
func (v *EntityView) Entity() *Entity {
	return v.world.ByIndex(v.curIdx)
}

// Each runs fn once per entity that has a T component, passing the component
// handle already resolved. Convenience wrapper over NewView.
func Each[T any](w *World, fn func(*Entity, Handle[T]), includePendingDestroy bool) {
	v := NewView[T](w, includePendingDestroy)
	for v.Next() {
		fn(v.Entity(), v.Get())
	}
}

// Each2 runs fn once per entity that has both T1 and T2 components.
func Each2[T1, T2 any](w *World, fn func(*Entity, Handle[T1], Handle[T2]), includePendingDestroy bool) {
	v := NewView2[T1, T2](w, includePendingDestroy)
	for v.Next() {
		h1, h2 := v.Get()
		fn(v.Entity(), h1, h2)
	}
}

// Each3 runs fn once per entity that has all of T1, T2 and T3.
func Each3[T1, T2, T3 any](w *World, fn func(*Entity, Handle[T1], Handle[T2], Handle[T3]), includePendingDestroy bool) {
	v := NewView3[T1, T2, T3](w, includePendingDestroy)
	for v.Next() {
		h1, h2, h3 := v.Get()
		fn(v.Entity(), h1, h2, h3)
	}
}
