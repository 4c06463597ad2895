// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/bento"
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

// run spawns and destroys a full population every tick, which is the
// pattern the pools are meant to make allocation-free once warmed up.
func run(rounds, iters, numEntities int) {
	for range rounds {
		w := bento.NewWorld(bento.WithInitialCapacity(numEntities))
		w.AddSystem(func(c *bento.Commands, q *bento.Queryer) {
			for _, e := range bento.Query2[comp1, comp2](q) {
				c1 := bento.Get[comp1](q, e)
				c2 := bento.Get[comp2](q, e)
				c1.V += c2.V
				c1.W += c2.W
				c.Destroy(e)
			}
			for range numEntities {
				c.Spawn(bento.With(comp1{}), bento.With(comp2{V: 1, W: 1}))
			}
		})
		for range iters {
			w.Update()
		}
		w.Shutdown()
	}
}
