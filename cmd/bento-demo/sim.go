package main

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/edwinsyarief/bento"
	"github.com/edwinsyarief/bento/internal/config"
)

// Components.
type (
	Position struct{ P mgl64.Vec2 }
	Velocity struct{ V mgl64.Vec2 }
	Lifetime struct{ Remaining int }
)

// Resources.
type (
	Bounds struct{ Min, Max mgl64.Vec2 }
	Census struct{ Spawned, Despawned int }
)

const step = 1.0 / 60.0

type simulation struct {
	rng *rand.Rand
	cfg config.DemoConfig
}

func newSimulation(cfg config.DemoConfig, seed int64) *simulation {
	return &simulation{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)),
	}
}

func (s *simulation) install(w *bento.World) {
	w.AddStartUpSystem(s.setup)
	w.AddSystem(s.move)
	w.AddSystem(s.expire)
}

func (s *simulation) setup(c *bento.Commands, _ *bento.Queryer) {
	bento.SetResource(c, Bounds{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{100, 100}})
	census := bento.SetResource(c, Census{})
	for range s.cfg.Entities {
		s.spawn(c)
	}
	census.Spawned = s.cfg.Entities
}

func (s *simulation) spawn(c *bento.Commands) bento.Entity {
	return c.SpawnAndReturn(
		bento.With(Position{P: mgl64.Vec2{s.rng.Float64() * 100, s.rng.Float64() * 100}}),
		bento.With(Velocity{V: mgl64.Vec2{s.rng.Float64()*20 - 10, s.rng.Float64()*20 - 10}}),
		bento.With(Lifetime{Remaining: 1 + s.rng.IntN(max(s.cfg.Lifetime, 1))}),
	)
}

// move integrates positions and bounces entities off the bounds.
func (s *simulation) move(_ *bento.Commands, q *bento.Queryer) {
	b := bento.GetResource[Bounds](q)
	for _, e := range bento.Query2[Position, Velocity](q) {
		p := bento.Get[Position](q, e)
		v := bento.Get[Velocity](q, e)
		p.P = p.P.Add(v.V.Mul(step))
		for axis := range 2 {
			if p.P[axis] < b.Min[axis] || p.P[axis] > b.Max[axis] {
				v.V[axis] = -v.V[axis]
				p.P[axis] = mgl64.Clamp(p.P[axis], b.Min[axis], b.Max[axis])
			}
		}
	}
}

// expire counts lifetimes down and replaces every entity that runs out, so
// the population stays constant while pools churn.
func (s *simulation) expire(c *bento.Commands, q *bento.Queryer) {
	census := bento.GetResource[Census](q)
	for _, e := range bento.Query[Lifetime](q) {
		l := bento.Get[Lifetime](q, e)
		l.Remaining--
		if l.Remaining > 0 {
			continue
		}
		c.Destroy(e)
		s.spawn(c)
		census.Despawned++
		census.Spawned++
	}
}
