// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	count := 10
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

// run builds a world where a quarter of the entities hold all four
// components and queries the intersection every tick.
func run(rounds, iters, numEntities int) {
	for range rounds {
		w := bento.NewWorld(bento.WithInitialCapacity(numEntities))
		w.AddStartUpSystem(func(c *bento.Commands, _ *bento.Queryer) {
			for i := range numEntities {
				switch i % 4 {
				case 0:
					c.Spawn(bento.With(comp1{}), bento.With(comp2{V: 1}), bento.With(comp3{}), bento.With(comp4{}))
				case 1:
					c.Spawn(bento.With(comp1{}), bento.With(comp2{V: 1}))
				case 2:
					c.Spawn(bento.With(comp1{}), bento.With(comp3{}))
				default:
					c.Spawn(bento.With(comp4{}))
				}
			}
		})
		w.AddSystem(func(_ *bento.Commands, q *bento.Queryer) {
			for _, e := range bento.Query4[comp1, comp2, comp3, comp4](q) {
				c1 := bento.Get[comp1](q, e)
				c2 := bento.Get[comp2](q, e)
				c1.V += c2.V
				c1.W += c2.W
			}
		})
		w.StartUp()
		for range iters {
			w.Update()
		}
		w.Shutdown()
	}
}
