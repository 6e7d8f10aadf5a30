package sekai

import (
	"testing"
)

func TestResources(t *testing.T) {
	type gravity struct{ G float64 }
	type frameCount struct{ N int }

	t.Run("Add and Get", func(t *testing.T) {
		w := NewWorld()
		r := w.Resources()
		AddResource(r, &gravity{G: 9.8})
		got := GetResource[gravity](r)
		if got == nil || got.G != 9.8 {
			t.Errorf("expected gravity 9.8, got %v", got)
		}
	})

	t.Run("Get missing returns nil", func(t *testing.T) {
		w := NewWorld()
		if GetResource[gravity](w.Resources()) != nil {
			t.Error("expected nil for an absent resource")
		}
	})

	t.Run("Has", func(t *testing.T) {
		w := NewWorld()
		r := w.Resources()
		AddResource(r, &gravity{})
		if !HasResource[gravity](r) {
			t.Error("expected true")
		}
		if HasResource[frameCount](r) {
			t.Error("expected false")
		}
	})

	t.Run("Add same type panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on duplicate resource type")
			}
		}()
		w := NewWorld()
		r := w.Resources()
		AddResource(r, &gravity{})
		AddResource(r, &gravity{})
	})

	t.Run("Add nil panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on nil resource")
			}
		}()
		w := NewWorld()
		AddResource[gravity](w.Resources(), nil)
	})

	t.Run("Remove", func(t *testing.T) {
		w := NewWorld()
		r := w.Resources()
		AddResource(r, &gravity{})
		if !RemoveResource[gravity](r) {
			t.Error("expected removal")
		}
		if RemoveResource[gravity](r) {
			t.Error("second removal must report false")
		}
		// Removed type can be added again.
		AddResource(r, &gravity{G: 1})
	})

	t.Run("Clear", func(t *testing.T) {
		w := NewWorld()
		r := w.Resources()
		AddResource(r, &gravity{})
		AddResource(r, &frameCount{})
		r.Clear()
		if HasResource[gravity](r) || HasResource[frameCount](r) {
			t.Error("expected empty store after Clear")
		}
	})

	t.Run("Mutable through pointer", func(t *testing.T) {
		w := NewWorld()
		r := w.Resources()
		AddResource(r, &frameCount{})
		GetResource[frameCount](r).N++
		GetResource[frameCount](r).N++
		if GetResource[frameCount](r).N != 2 {
			t.Error("resource must be shared, not copied")
		}
	})
}
