package sekai

import (
	"sync"
	"testing"
)

type alphaType struct{}
type betaType struct{}

func TestTypeIndexStability(t *testing.T) {
	first := TypeIndexOf[alphaType]()
	for range 100 {
		if TypeIndexOf[alphaType]() != first {
			t.Fatal("TypeIndexOf must return the same index for the same type")
		}
	}
}

func TestTypeIndexUniqueness(t *testing.T) {
	if TypeIndexOf[alphaType]() == TypeIndexOf[betaType]() {
		t.Error("distinct types must map to distinct indices")
	}
	// Generic instantiations are distinct types too.
	if TypeIndexOf[Handle[alphaType]]() == TypeIndexOf[Handle[betaType]]() {
		t.Error("distinct instantiations must map to distinct indices")
	}
	if TypeIndexOf[alphaType]() == 0 {
		t.Error("indices start at 1")
	}
}

func TestTypeIndexConcurrentFirstUse(t *testing.T) {
	type concurrentType struct{}
	const goroutines = 16
	results := make([]TypeIndex, goroutines)
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = TypeIndexOf[concurrentType]()
		}()
	}
	wg.Wait()
	for _, idx := range results[1:] {
		if idx != results[0] {
			t.Fatal("first-use registration must be race free")
		}
	}
}
