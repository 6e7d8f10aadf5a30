package sekai

// subscription pairs a type-erased handler with the reference that owns it.
// The owner is what Unsubscribe and UnsubscribeAll compare against, so one
// owner (typically a system) can subscribe to any number of event types and
// be detached from all of them at once.
type subscription struct {
	owner   any
	handler any // func(*World, T) for the bucket's event type
}

// eventBus maps a TypeIndex to the ordered subscription list for that event
// type. Insertion order is notification order. A bucket with zero
// subscriptions is erased, never left empty.
type eventBus struct {
	buckets map[TypeIndex][]subscription
}

func newEventBus() eventBus {
	return eventBus{buckets: make(map[TypeIndex][]subscription)}
}

func (b *eventBus) add(idx TypeIndex, owner, handler any) {
	b.buckets[idx] = append(b.buckets[idx], subscription{owner: owner, handler: handler})
}

func (b *eventBus) remove(idx TypeIndex, owner any) {
	bucket, ok := b.buckets[idx]
	if !ok {
		return
	}
	kept := bucket[:0]
	for _, s := range bucket {
		if s.owner != owner {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(b.buckets, idx)
	} else {
		b.buckets[idx] = kept
	}
}

func (b *eventBus) removeAll(owner any) {
	for idx := range b.buckets {
		b.remove(idx, owner)
	}
}

// Subscribe registers handler for events of type T on behalf of owner.
// Within one event type, handlers run in subscription order. The owner is
// the reference used to unsubscribe later; owners must be comparable
// (pointer types are the usual case). A system subscribing with itself as
// owner can drop every subscription in its Unconfigure with a single
// World.UnsubscribeAll call.
func Subscribe[T any](w *World, owner any, handler func(w *World, event T)) {
	w.events.add(TypeIndexOf[T](), owner, handler)
}

// Unsubscribe removes owner's handlers from the bucket for T. Unsubscribing
// an owner that was never registered is a no-op.
func Unsubscribe[T any](w *World, owner any) {
	w.events.remove(TypeIndexOf[T](), owner)
}

// Emit synchronously delivers event to every handler subscribed for T, in
// subscription order, and returns once all of them have run. Emitting an
// event type with no subscribers is a no-op.
//
// Delivery is never queued or deferred: a handler that itself emits events,
// subscribes, or mutates entities takes effect immediately, and such changes
// may be observed by the remainder of the current emission.
func Emit[T any](w *World, event T) {
	idx := TypeIndexOf[T]()
	for i := 0; i < len(w.events.buckets[idx]); i++ {
		w.events.buckets[idx][i].handler.(func(*World, T))(w, event)
	}
}
