package sekai

// TickData is what World.Tick hands to every active system. Applications
// decide what the value means (seconds, frame delta, a fixed step); a
// payload-free configuration simply passes 0.
type TickData = float64

// System is a logic unit that acts on entities, generally on a subset
// selected with a View. Systems are registered into a World and ticked once
// per frame in registration order.
//
// Systems often respond to events: use Configure to subscribe, and remember
// to unsubscribe in Unconfigure.
type System interface {
	// Configure is called exactly once, when the system is registered,
	// before any tick.
	Configure(w *World)
	// Unconfigure is called exactly once, when the system is unregistered or
	// at world teardown. The system is never ticked afterwards.
	Unconfigure(w *World)
	// Tick is called once per World.Tick while the system is enabled.
	Tick(w *World, data TickData)
}

// BaseSystem provides no-op Configure and Unconfigure so systems that need
// neither can embed it and implement only Tick.
type BaseSystem struct{}

// Configure implements System.
func (BaseSystem) Configure(*World) {}

// Unconfigure implements System.
func (BaseSystem) Unconfigure(*World) {}
