// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.pprof

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
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := sekai.NewWorld(sekai.WithCapacity(numEntities))
		for range numEntities {
			e := w.Create()
			sekai.Assign(e, comp1{V: 1, W: 1})
			sekai.Assign(e, comp2{V: 2, W: 2})
		}
		query := sekai.NewView2[comp1, comp2](w, false)
		for range iters {
			query.Reset()
			for query.Next() {
				c1, c2 := query.Get()
				c1.Get().V += c2.Get().V
				c1.Get().W += c2.Get().W
			}
		}
	}
}
