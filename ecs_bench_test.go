package bento_test

import (
	"fmt"
	"testing"

	"github.com/edwinsyarief/bento"
)

var benchSizes = []int{1000, 10000, 100000}

func sizeName(n int) string {
	return fmt.Sprintf("%dK", n/1000)
}

func populated(b *testing.B, n int) *bento.World {
	b.Helper()
	w := bento.NewWorld(bento.WithInitialCapacity(n))
	w.AddStartUpSystem(func(c *bento.Commands, _ *bento.Queryer) {
		for i := range n {
			if i%2 == 0 {
				c.Spawn(bento.With(Position{}), bento.With(Velocity{1, 1}))
			} else {
				c.Spawn(bento.With(Position{}))
			}
		}
	})
	w.StartUp()
	return w
}

// Spawn Benchmarks
func BenchmarkSpawn(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := bento.NewWorld(bento.WithInitialCapacity(size))
				w.AddStartUpSystem(func(c *bento.Commands, _ *bento.Queryer) {
					for range size {
						c.Spawn(bento.With(Position{}), bento.With(Velocity{}))
					}
				})
				b.StartTimer()
				w.StartUp()
			}
			b.ReportAllocs()
		})
	}
}

// Churn Benchmarks: every tick destroys and respawns the whole population,
// so the pools serve from their caches after the first tick.
func BenchmarkChurn(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := populated(b, size)
			w.AddSystem(func(c *bento.Commands, q *bento.Queryer) {
				for _, e := range bento.Query[Position](q) {
					c.Destroy(e)
					c.Spawn(bento.With(Position{}))
				}
			})
			for b.Loop() {
				w.Update()
			}
			b.ReportAllocs()
		})
	}
}

// Query Benchmarks
func BenchmarkQuery2(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := populated(b, size)
			q := w.Queryer()
			for b.Loop() {
				for _, e := range bento.Query2[Velocity, Position](q) {
					p := bento.Get[Position](q, e)
					v := bento.Get[Velocity](q, e)
					p.X += v.VX
					p.Y += v.VY
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkGet(b *testing.B) {
	w := populated(b, 10000)
	q := w.Queryer()
	es := bento.Query[Position](q)
	for b.Loop() {
		for _, e := range es {
			_ = bento.Get[Position](q, e)
		}
	}
	b.ReportAllocs()
}
