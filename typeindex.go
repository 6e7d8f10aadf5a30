package sekai

import (
	"reflect"
	"sync"
)

// TypeIndex is a stable, process-unique key for a component or event type. It
// is assigned by a monotonic counter the first time a type is seen and never
// changes afterwards, which makes it usable as a map key for component storage
// and event subscriber buckets.
type TypeIndex uint32

// typeRegistry is process-scoped state: it starts empty, is populated lazily
// on first use per type, and lives for the process lifetime. The mutex only
// guards first-use registration so that worlds owned by different goroutines
// may instantiate types independently; everything else in this package is
// single-threaded by contract.
var typeRegistry = struct {
	mu      sync.Mutex
	indices map[reflect.Type]TypeIndex
	next    TypeIndex
}{
	indices: make(map[reflect.Type]TypeIndex, 64),
}

// TypeIndexOf returns the TypeIndex for T. For a fixed T every call returns
// the same value; distinct types always map to distinct indices.
func TypeIndexOf[T any]() TypeIndex {
	return typeIndexFor(reflect.TypeFor[T]())
}

// typeIndexFor registers or fetches the index for t.
func typeIndexFor(t reflect.Type) TypeIndex {
	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()
	if idx, ok := typeRegistry.indices[t]; ok {
		return idx
	}
	typeRegistry.next++
	idx := typeRegistry.next
	typeRegistry.indices[t] = idx
	return idx
}
