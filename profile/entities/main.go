// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/sekai"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := sekai.NewWorld(sekai.WithCapacity(numEntities))
		for range iters {
			for range numEntities {
				e := w.Create()
				sekai.Assign(e, comp1{V: 1, W: 1})
				sekai.Assign(e, comp2{V: 2, W: 2})
			}
			w.AllEach(func(e *sekai.Entity) {
				w.Destroy(e, false)
			}, false)
			w.Cleanup()
		}
	}
}
